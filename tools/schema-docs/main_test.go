// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"

	"github.com/ManuGH/medialive-go/internal/schema"
	"github.com/ManuGH/medialive-go/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docsSchema = `
service: {name: things, title: Things Service, apiVersion: "1"}
operations:
  - {name: GetThing, method: GET, path: "/things/{thingId}", input: GetThingRequest, output: Thing}
shapes:
  - name: GetThingRequest
    file: things
    members:
      - {name: thingId, type: string, location: uri, required: true, minLength: 1}
  - name: Thing
    file: things
    doc: A thing | with a pipe.
    members:
      - {name: count, type: integer, min: 2, max: 9}
      - {name: color, type: enum, ref: Color}
      - {name: parts, type: list, items: {type: structure, ref: Part}}
  - name: Part
    file: parts
enums:
  - name: Color
    doc: Paint colour.
    values: [DARK_RED, BLUE]
`

func TestRender(t *testing.T) {
	s, err := schema.Parse([]byte(docsSchema))
	require.NoError(t, err)
	require.NoError(t, s.Check())

	got := string(render(s, "api/things.yaml"))

	for _, want := range []string{
		"# Things Service reference\n",
		"> Source: `api/things.yaml` (API version 1)\n",
		"| `GetThing` | GET | `/things/{thingId}` | [GetThingRequest](#getthingrequest) | [Thing](#thing) |\n",
		"## Shapes: things\n",
		"| `ThingId` | `thingId` (uri) | `*string` | ✓ | Minimum length of 1. |  |\n",
		"A thing \\| with a pipe.\n",
		"| `Count` | `count` | `*int64` |  | Valid range: 2 to 9. |  |\n",
		"| `Color` | `color` | [`Color`](#color) |",
		"| `Parts` | `parts` | [`[]*Part`](#part) |",
		"## Shapes: parts\n\n### Part\n\n_No members._\n",
		"### Color\n\nPaint colour.\n\n**Values:** `DARK_RED`, `BLUE`\n",
	} {
		assert.Contains(t, got, want)
	}
	assert.Less(t, strings.Index(got, "## Shapes: things"), strings.Index(got, "## Shapes: parts"))
}

func TestRender_RepositorySchema(t *testing.T) {
	s, err := schema.Load(testutil.SchemaPath(t))
	require.NoError(t, err)

	got := string(render(s, "api/medialive.yaml"))
	for _, sh := range s.Shapes {
		assert.Contains(t, got, "### "+sh.Name+"\n")
	}
	for _, e := range s.Enums {
		assert.Contains(t, got, "### "+e.Name+"\n")
	}
}
