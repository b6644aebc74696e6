// SPDX-License-Identifier: MIT

package codegen

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ManuGH/medialive-go/internal/log"
	"github.com/ManuGH/medialive-go/internal/schema"
	"github.com/ManuGH/medialive-go/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinySchema = `
service: {name: things, apiVersion: "1"}
operations:
  - {name: GetThing, method: GET, path: "/things/{thingId}", input: GetThingRequest, output: Thing}
shapes:
  - name: GetThingRequest
    file: things
    members:
      - {name: thingId, type: string, location: uri, required: true, minLength: 1}
  - name: Thing
    file: things
    doc: A thing.
    members:
      - {name: name, type: string}
      - {name: count, type: integer, min: 2}
      - {name: color, type: enum, ref: Color}
      - {name: parts, type: list, items: {type: structure, ref: Part}}
  - name: Part
    file: parts
    members:
      - {name: weight, type: double, required: true}
enums:
  - name: Color
    values: [DARK_RED, BLUE]
`

func loadTiny(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Parse([]byte(tinySchema))
	require.NoError(t, err)
	return s
}

func renderTiny(t *testing.T) map[string]string {
	t.Helper()
	files, err := Render(context.Background(), loadTiny(t), Options{Package: "things", Workers: 2})
	require.NoError(t, err)
	out := map[string]string{}
	for _, f := range files {
		out[f.Name] = string(f.Content)
	}
	return out
}

func TestRender_FileOrder(t *testing.T) {
	files, err := Render(context.Background(), loadTiny(t), Options{})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
		assert.True(t, strings.HasPrefix(string(f.Content), Header), f.Name)
		assert.Contains(t, string(f.Content), "\npackage medialive\n", f.Name)
	}
	want := []string{"enums_gen.go", "shapes_things_gen.go", "shapes_parts_gen.go", "operations_gen.go"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("file order mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Shapes(t *testing.T) {
	src := renderTiny(t)["shapes_things_gen.go"]

	for _, want := range []string{
		"\t\"fmt\"\n",
		"ThingId *string `json:\"-\" location:\"uri\" locationName:\"thingId\"`",
		"Count *int64 `json:\"count,omitempty\"`",
		"Color Color `json:\"color,omitempty\"`",
		"Parts []*Part `json:\"parts,omitempty\"`",
		"// A thing.\ntype Thing struct {",
		"func (s *Thing) SetCount(v int64) *Thing {\n\ts.Count = &v\n\treturn s\n}",
		"func (s *Thing) SetColor(v Color) *Thing {\n\ts.Color = v\n\treturn s\n}",
		"func (s *Thing) GetColor() Color {\n\tif s == nil {\n\t\treturn \"\"\n\t}\n\treturn s.Color\n}",
		"func (s *Thing) GetCount() int64 {\n\tif s == nil {\n\t\treturn 0\n\t}\n\treturn aws.Int64Value(s.Count)\n}",
		"if s.Count != nil && *s.Count < 2 {",
		"invalidParams.AddNested(fmt.Sprintf(\"%s[%v]\", \"Parts\", i), err.(request.ErrInvalidParams))",
		"if s.ThingId != nil && len(*s.ThingId) < 1 {",
	} {
		assert.Contains(t, src, want)
	}
}

func TestRender_EnumsAndOperations(t *testing.T) {
	src := renderTiny(t)

	enums := src["enums_gen.go"]
	assert.Contains(t, enums, "ColorDarkRed Color = \"DARK_RED\"")
	assert.Contains(t, enums, "case ColorDarkRed, ColorBlue:")

	ops := src["operations_gen.go"]
	assert.Contains(t, ops, "var GetThingOperation = &Operation{")
	assert.Contains(t, ops, "HTTPPath:   \"/things/{thingId}\",")
	assert.Contains(t, ops, "func DecodeGetThingResponse(resp *http.Response) (*Thing, error) {")

	parts := src["shapes_parts_gen.go"]
	assert.NotContains(t, parts, "\"fmt\"")
	assert.Contains(t, parts, "invalidParams.Add(request.NewErrParamRequired(\"Weight\"))")
}

func TestRender_Deterministic(t *testing.T) {
	assert.Equal(t, renderTiny(t), renderTiny(t))
}

func TestRender_RejectsBrokenSchema(t *testing.T) {
	s, err := schema.Parse([]byte(`
service: {name: x, apiVersion: "1"}
shapes:
  - {name: A, file: a, members: [{name: b, type: structure, ref: Nope}]}
`))
	require.NoError(t, err)

	_, err = Render(context.Background(), s, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check schema")
}

func TestRender_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Render(ctx, loadTiny(t), Options{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

// The committed medialive package must match what the generator produces
// from api/medialive.yaml.
func TestRender_CommittedSourcesUpToDate(t *testing.T) {
	s, err := schema.Load(testutil.SchemaPath(t))
	require.NoError(t, err)

	files, err := Render(context.Background(), s, Options{Package: "medialive", Workers: 4})
	require.NoError(t, err)

	changed, err := Diff(testutil.Path(t, "medialive"), files)
	require.NoError(t, err)
	assert.Empty(t, changed, "run medialivegen generate")
}

func TestWrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	handWritten := filepath.Join(dir, "request.go")
	foreignGen := filepath.Join(dir, "other_gen.go")
	staleGen := filepath.Join(dir, "shapes_old_gen.go")
	require.NoError(t, os.WriteFile(handWritten, []byte("package things\n"), 0o600))
	require.NoError(t, os.WriteFile(foreignGen, []byte("// Code generated by stringer. DO NOT EDIT.\n"), 0o600))
	require.NoError(t, os.WriteFile(staleGen, []byte(Header+"\n\npackage things\n"), 0o600))

	files, err := Render(ctx, loadTiny(t), Options{Package: "things"})
	require.NoError(t, err)

	res, err := Write(ctx, dir, files)
	require.NoError(t, err)
	assert.Len(t, res.Written, len(files))
	assert.Equal(t, []string{"shapes_old_gen.go"}, res.Removed)
	assert.True(t, res.Changed())

	assert.FileExists(t, handWritten)
	assert.FileExists(t, foreignGen)
	assert.NoFileExists(t, staleGen)

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err)
		assert.Equal(t, string(f.Content), string(got))
	}

	res, err = Write(ctx, dir, files)
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Len(t, res.Unchanged, len(files))

	changed, err := Diff(dir, files)
	require.NoError(t, err)
	assert.Empty(t, changed)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "enums_gen.go"), []byte("package things\n"), 0o600))
	changed, err = Diff(dir, files)
	require.NoError(t, err)
	assert.Equal(t, []string{"enums_gen.go"}, changed)
}

func TestWrite_LogsFileFields(t *testing.T) {
	var buf bytes.Buffer
	log.Reset()
	log.Configure(log.Config{Output: &buf, Level: "info"})
	t.Cleanup(log.Reset)

	ctx := log.ContextWithRunID(context.Background(), "run-9")
	dir := t.TempDir()
	files, err := Render(ctx, loadTiny(t), Options{Package: "things"})
	require.NoError(t, err)
	_, err = Write(ctx, dir, files)
	require.NoError(t, err)

	var wrote []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "wrote file" {
			wrote = append(wrote, entry)
		}
	}
	require.Len(t, wrote, len(files))
	for i, entry := range wrote {
		assert.Equal(t, "codegen", entry[log.FieldComponent])
		assert.Equal(t, "run-9", entry[log.FieldRunID])
		assert.Equal(t, filepath.Join(dir, files[i].Name), entry[log.FieldFile])
		assert.EqualValues(t, len(files[i].Content), entry[log.FieldBytes])
	}
}
