// SPDX-License-Identifier: MIT

package medialive

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/ManuGH/medialive-go/internal/schema"
	"github.com/ManuGH/medialive-go/internal/testutil"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allShapes() []any {
	return []any{
		&OutputLocationRef{}, &InputLocation{}, &CaptionLanguageMapping{},
		&KeyProviderSettings{}, &StaticKeySettings{},
		&H264Settings{}, &H264ColorSpaceSettings{}, &H264FilterSettings{},
		&TemporalFilterSettings{}, &ColorSpacePassthroughSettings{},
		&Rec601Settings{}, &Rec709Settings{},
		&H265Settings{}, &H265ColorSpaceSettings{}, &Hdr10Settings{},
		&HlsGroupSettings{}, &HlsCdnSettings{}, &HlsAkamaiSettings{},
		&HlsBasicPutSettings{}, &HlsMediaStoreSettings{}, &HlsWebdavSettings{},
		&MsSmoothGroupSettings{},
		&M2tsSettings{}, &DvbNitSettings{}, &DvbSdtSettings{}, &DvbTdtSettings{},
		&Eac3Settings{},
		&BurnInDestinationSettings{},
		&ReservationResourceSpecification{},
		&DescribeInputDeviceRequest{}, &DescribeInputDeviceResponse{},
		&InputDeviceHdSettings{}, &InputDeviceNetworkSettings{},
	}
}

var plainString = reflect.TypeOf("")

// sample builds a non-zero value of t. Enums use their first known value.
func sample(t reflect.Type, salt string) reflect.Value {
	switch t.Kind() {
	case reflect.String:
		if t == plainString {
			return reflect.ValueOf("v-" + salt)
		}
		values := reflect.Zero(t).MethodByName("Values").Call(nil)[0]
		return values.Index(0)
	case reflect.Int64:
		return reflect.ValueOf(int64(7))
	case reflect.Float64:
		return reflect.ValueOf(2.5)
	case reflect.Bool:
		return reflect.ValueOf(true)
	case reflect.Ptr:
		if t.Elem() == plainString {
			s := "v-" + salt
			return reflect.ValueOf(&s)
		}
		return reflect.New(t.Elem())
	case reflect.Slice:
		s := reflect.MakeSlice(t, 1, 1)
		s.Index(0).Set(sample(t.Elem(), salt))
		return s
	}
	panic("no sample for " + t.String())
}

func call(v reflect.Value, method string, args ...reflect.Value) reflect.Value {
	m := v.MethodByName(method)
	if !m.IsValid() {
		panic(fmt.Sprintf("%s has no method %s", v.Type(), method))
	}
	return m.Call(args)[0]
}

// populate sets every member of a fresh shape through its setters.
func populate(rt reflect.Type) reflect.Value {
	ptr := reflect.New(rt)
	for i := 0; i < rt.NumField(); i++ {
		name := rt.Field(i).Name
		set := ptr.MethodByName("Set" + name)
		set.Call([]reflect.Value{sample(set.Type().In(0), name)})
	}
	return ptr
}

func TestShapes_MatchSchema(t *testing.T) {
	s, err := schema.Load(testutil.SchemaPath(t))
	require.NoError(t, err)

	var want, got []string
	for _, sh := range s.Shapes {
		want = append(want, sh.Name)
	}
	for _, v := range allShapes() {
		got = append(got, reflect.TypeOf(v).Elem().Name())
	}
	sort.Strings(want)
	sort.Strings(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shape list mismatch (-schema +test):\n%s", diff)
	}
}

func TestShapes_SetGetRoundTrip(t *testing.T) {
	for _, v := range allShapes() {
		rt := reflect.TypeOf(v).Elem()
		t.Run(rt.Name(), func(t *testing.T) {
			for i := 0; i < rt.NumField(); i++ {
				name := rt.Field(i).Name
				ptr := reflect.New(rt)

				set := ptr.MethodByName("Set" + name)
				require.True(t, set.IsValid(), "missing Set%s", name)
				in := sample(set.Type().In(0), name)
				ret := set.Call([]reflect.Value{in})[0]
				assert.Equal(t, ptr.Pointer(), ret.Pointer(), "Set%s must return its receiver", name)

				got := call(ptr, "Get"+name)
				assert.Equal(t, in.Interface(), got.Interface(), "Get%s", name)

				nilGet := call(reflect.Zero(ptr.Type()), "Get"+name)
				assert.True(t, nilGet.IsZero(), "Get%s on nil receiver", name)

				empty := reflect.New(rt)
				assert.False(t, call(ptr, "Equal", empty).Bool(), "%s set must differ from empty", name)

				str := ptr.Interface().(fmt.Stringer).String()
				assert.True(t, strings.HasPrefix(str, "{"+name+": "), "String() = %s", str)
				assert.Equal(t, str, ptr.Interface().(fmt.GoStringer).GoString())
			}
		})
	}
}

func TestShapes_EqualAndHash(t *testing.T) {
	for _, v := range allShapes() {
		rt := reflect.TypeOf(v).Elem()
		t.Run(rt.Name(), func(t *testing.T) {
			a, b := populate(rt), populate(rt)
			require.True(t, call(a, "Equal", b).Bool())
			assert.Equal(t, call(a, "Hash").Uint(), call(b, "Hash").Uint())

			for i := 0; i < rt.NumField(); i++ {
				c := populate(rt)
				field := c.Elem().Field(i)
				field.Set(reflect.Zero(field.Type()))
				assert.False(t, call(a, "Equal", c).Bool(), "differs only in %s", rt.Field(i).Name)
			}
		})
	}
}

func TestEqual_NilReceivers(t *testing.T) {
	var a, b *H265Settings
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(&H265Settings{}))
	assert.False(t, (&H265Settings{}).Equal(nil))
	assert.True(t, (&H265Settings{}).Equal(&H265Settings{}))
}

func TestString_DeclaredOrderOmitsUnset(t *testing.T) {
	s := (&H265Settings{}).
		SetProfile(H265ProfileMain).
		SetGopSize(2).
		SetBitrate(5000000)
	assert.Equal(t, "{Bitrate: 5000000, GopSize: 2, Profile: MAIN}", s.String())

	hls := (&HlsGroupSettings{}).
		SetDestination((&OutputLocationRef{}).SetDestinationRefId("dest-1")).
		SetBaseUrlContent("https://cdn.example.com/")
	assert.Equal(t, `{BaseUrlContent: "https://cdn.example.com/", Destination: {DestinationRefId: "dest-1"}}`, hls.String())

	assert.Equal(t, "{}", (&Rec601Settings{}).String())
}

func TestEnum_TypedAndRawAssignmentAgree(t *testing.T) {
	typed := (&H265Settings{}).SetProfile(H265ProfileMain10bit)
	raw := (&H265Settings{}).SetProfile(H265Profile("MAIN_10BIT"))

	assert.True(t, typed.Equal(raw))
	assert.Equal(t, typed.Hash(), raw.Hash())
	assert.Equal(t, typed.String(), raw.String())
}

func TestEnum_ValuesAndIsValid(t *testing.T) {
	assert.Equal(t, []H265Tier{H265TierHigh, H265TierMain}, H265Tier("").Values())
	for _, v := range H265Tier("").Values() {
		assert.True(t, v.IsValid(), v)
	}
	assert.False(t, H265Tier("ULTRA").IsValid())
	assert.False(t, H265Tier("").IsValid())
	assert.Equal(t, "HIGH", H265TierHigh.String())
}

func TestJSON_PreservesUnknownEnums(t *testing.T) {
	in := (&DescribeInputDeviceResponse{}).
		SetId("hd-123").
		SetConnectionState(InputDeviceConnectionState("HIBERNATING")).
		SetHdDeviceSettings((&InputDeviceHdSettings{}).SetFramerate(29.97).SetHeight(1080))

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"hd-123","connectionState":"HIBERNATING","hdDeviceSettings":{"framerate":29.97,"height":1080}}`, string(data))

	out := &DescribeInputDeviceResponse{}
	require.NoError(t, json.Unmarshal(data, out))
	assert.True(t, in.Equal(out), "got %s", out)
	assert.False(t, out.GetConnectionState().IsValid())
}

func TestJSON_URIMembersStayOutOfBody(t *testing.T) {
	data, err := json.Marshal((&DescribeInputDeviceRequest{}).SetInputDeviceId("hd-1"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func invalidFields(t *testing.T, err error) []string {
	t.Helper()
	var ip request.ErrInvalidParams
	require.True(t, errors.As(err, &ip), "got %T: %v", err, err)
	var fields []string
	for _, e := range ip.OrigErrs() {
		p, ok := e.(request.ErrInvalidParam)
		require.True(t, ok, "got %T", e)
		fields = append(fields, p.Field())
	}
	return fields
}

func TestValidate(t *testing.T) {
	t.Run("required members", func(t *testing.T) {
		err := (&H265Settings{}).Validate()
		assert.ElementsMatch(t, []string{"H265Settings.FramerateDenominator", "H265Settings.FramerateNumerator"}, invalidFields(t, err))
	})

	t.Run("valid", func(t *testing.T) {
		s := (&H265Settings{}).SetFramerateNumerator(30000).SetFramerateDenominator(1001)
		assert.NoError(t, s.Validate())
	})

	t.Run("minimum value", func(t *testing.T) {
		s := (&H265Settings{}).SetFramerateNumerator(30000).SetFramerateDenominator(1001).SetBitrate(10)
		assert.Equal(t, []string{"H265Settings.Bitrate"}, invalidFields(t, s.Validate()))
	})

	t.Run("nested list and struct", func(t *testing.T) {
		s := (&HlsGroupSettings{}).
			SetDestination(&OutputLocationRef{}).
			SetCaptionLanguageMappings([]*CaptionLanguageMapping{
				nil,
				(&CaptionLanguageMapping{}).SetCaptionChannel(0).SetLanguageCode("eng").SetLanguageDescription("English"),
			})
		assert.Equal(t, []string{"HlsGroupSettings.CaptionLanguageMappings[1].CaptionChannel"}, invalidFields(t, s.Validate()))
	})

	t.Run("missing nested struct", func(t *testing.T) {
		assert.Contains(t, invalidFields(t, (&HlsGroupSettings{}).Validate()), "HlsGroupSettings.Destination")
	})
}
