// SPDX-License-Identifier: MIT

// Package shape holds the reflection helpers shared by every generated
// MediaLive shape: the structural string form, equality and hashing.
package shape

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/cespare/xxhash/v2"
)

var stringType = reflect.TypeOf("")

// Stringify renders v as {Name: value, Name: value} in declared field
// order. Unset members (nil pointers, slices and maps, empty enum strings)
// are omitted. Plain strings are quoted, enum values are not.
func Stringify(v any) string {
	var b strings.Builder
	write(&b, reflect.ValueOf(v))
	return b.String()
}

// Equal reports whether a and b hold the same member values. Two nil
// pointers of the same type are equal; nil and non-nil never are.
func Equal(a, b any) bool {
	return awsutil.DeepEqual(a, b)
}

// Hash returns a 64-bit structural hash of v. Values that are Equal hash
// to the same result.
func Hash(v any) uint64 {
	d := xxhash.New()
	if v != nil {
		_, _ = d.WriteString(reflect.TypeOf(v).String())
	}
	_, _ = d.WriteString(Stringify(v))
	return d.Sum64()
}

// unset reports whether a struct member counts as not provided.
func unset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	}
	return false
}

func write(b *strings.Builder, v reflect.Value) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			b.WriteString("<nil>")
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Invalid:
		b.WriteString("<nil>")
	case reflect.Struct:
		writeStruct(b, v)
	case reflect.Slice, reflect.Array:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, v.Index(i))
		}
		b.WriteByte(']')
	case reflect.Map:
		writeMap(b, v)
	case reflect.String:
		if v.Type() == stringType {
			b.WriteString(strconv.Quote(v.String()))
		} else {
			b.WriteString(v.String())
		}
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f == 0 {
			f = 0 // -0 and 0 compare equal, render them the same
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	default:
		b.WriteString("<" + v.Type().String() + ">")
	}
}

func writeStruct(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	b.WriteByte('{')
	first := true
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if unset(fv) {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(f.Name)
		b.WriteString(": ")
		write(b, fv)
	}
	b.WriteByte('}')
}

func writeMap(b *strings.Builder, v reflect.Value) {
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var kb strings.Builder
		write(&kb, iter.Key())
		entries = append(entries, entry{key: kb.String(), val: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key)
		b.WriteString(": ")
		write(b, e.val)
	}
	b.WriteByte('}')
}
