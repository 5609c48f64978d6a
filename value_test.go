// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolPropertyAbsentRoundTrip(t *testing.T) {
	typ := PropertyType{Name: "BoolProperty"}

	v, err := readPropertyValue(newReader(nil), typ, 0x10, 0, &anomalySink{})
	require.NoError(t, err)
	require.True(t, v.BoolAbsent)
	require.NotNil(t, v.Bool)
	require.True(t, *v.Bool)
	require.Equal(t, 0, valueSize(typ, v))

	w := newWriter()
	writePropertyValue(w, typ, 0x10, v)
	require.Equal(t, 0, w.size())
}

func TestBoolPropertyPresentRoundTrip(t *testing.T) {
	typ := PropertyType{Name: "BoolProperty"}
	r := newReader([]byte{0x01})
	v, err := readPropertyValue(r, typ, 0, 1, &anomalySink{})
	require.NoError(t, err)
	require.False(t, v.BoolAbsent)
	require.True(t, *v.Bool)
	require.Equal(t, 1, valueSize(typ, v))

	w := newWriter()
	writePropertyValue(w, typ, 0, v)
	require.Equal(t, []byte{0x01}, w.bytesOut())
}

func TestBytePropertyRawByteForm(t *testing.T) {
	typ := PropertyType{Name: "ByteProperty"}
	r := newReader([]byte{0x07})
	v, err := readPropertyValue(r, typ, 0, 1, &anomalySink{})
	require.NoError(t, err)
	require.Equal(t, KindByte, v.Kind)
	require.Equal(t, uint8(0x07), v.Byte)
}

func TestBytePropertyEnumFallback(t *testing.T) {
	typ := PropertyType{Name: "ByteProperty", Tags: []TypeTag{{Value: "Noce_ItemQuality"}}}
	w := newWriter()
	writeFString(w, "Noce_ItemQuality_Rare")
	data := w.bytesOut()

	r := newReader(data)
	v, err := readPropertyValue(r, typ, 0, uint32(len(data)), &anomalySink{})
	require.NoError(t, err)
	require.Equal(t, KindEnum, v.Kind)
	require.Equal(t, "Noce_ItemQuality_Rare", v.Str)
}

func TestBytePropertyFallsBackToRawOnMismatch(t *testing.T) {
	typ := PropertyType{Name: "ByteProperty", Tags: []TypeTag{{Value: "Noce_ItemQuality"}}}
	// Declares a length prefix that doesn't match the buffer, so the
	// FString parse won't land exactly on dataSize and must rewind.
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x01, 0x02}
	sink := &anomalySink{}
	r := newReader(data)
	v, err := readPropertyValue(r, typ, 0, uint32(len(data)), sink)
	require.NoError(t, err)
	require.Equal(t, KindUnknown, v.Kind)
	require.Equal(t, data, v.Unknown)
	require.Len(t, sink.messages, 1)
}

func TestArrayByteSpecializationRoundTrip(t *testing.T) {
	elemType := PropertyType{Name: "ArrayProperty", Tags: []TypeTag{{Value: "ByteProperty"}}}
	payload := []byte{0xAA, 0xBB, 0xCC}

	w := newWriter()
	w.putU32(uint32(len(payload)))
	w.putBytes(payload)

	r := newReader(w.bytesOut())
	v, err := readArrayPropertyValue(r, elemType, 0, w.size(), &anomalySink{})
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind)
	require.Len(t, v.Array, 1)
	require.Equal(t, KindUnknown, v.Array[0].Kind)
	require.Equal(t, payload, v.Array[0].Unknown)

	out := newWriter()
	writeArrayValue(out, elemType, 0, v)
	require.Equal(t, w.bytesOut(), out.bytesOut())
	require.Equal(t, w.size(), valueSize(elemType, v))
}

func TestArrayOfIntRoundTrip(t *testing.T) {
	elemType := PropertyType{Name: "ArrayProperty", Tags: []TypeTag{{Value: "IntProperty"}}}

	w := newWriter()
	w.putU32(3)
	w.putI32(1)
	w.putI32(2)
	w.putI32(3)

	r := newReader(w.bytesOut())
	v, err := readArrayPropertyValue(r, elemType, 0, w.size(), &anomalySink{})
	require.NoError(t, err)
	require.Len(t, v.Array, 3)
	require.Equal(t, int32(2), v.Array[1].Int)

	out := newWriter()
	writeArrayValue(out, elemType, 0, v)
	require.Equal(t, w.bytesOut(), out.bytesOut())
}

func TestMapPropertyRoundTrip(t *testing.T) {
	typ := PropertyType{
		Name:       "MapProperty",
		Tags:       []TypeTag{{Value: "StrProperty"}, {Value: "IntProperty"}},
		InnerTypes: []PropertyType{{Name: "IntProperty"}},
	}

	w := newWriter()
	w.putU32(0) // removed count
	w.putU32(1) // entry count
	writeFString(w, "Key")
	w.putI32(42)

	r := newReader(w.bytesOut())
	v, err := readMapPropertyValue(r, typ, 0, w.size(), &anomalySink{})
	require.NoError(t, err)
	require.Len(t, v.Map, 1)
	require.Equal(t, "Key", v.Map[0].Key.Str)
	require.Equal(t, int32(42), v.Map[0].Value.Int)

	out := newWriter()
	writeMapValue(out, typ, 0, v)
	require.Equal(t, w.bytesOut(), out.bytesOut())
}

func TestStructPropertyNestedStreamFlagsZero(t *testing.T) {
	typ := PropertyType{Name: "StructProperty", Tags: []TypeTag{{Value: "NoceInventorySlot"}}}

	inner := newWriter()
	writeProperty(inner, Property{
		Name: "Count",
		Body: &PropertyBody{Type: PropertyType{Name: "IntProperty"}, Value: PropertyValue{Kind: KindInt, Int: 5}},
	})
	writeFString(inner, "None")

	r := newReader(inner.bytesOut())
	v, err := readStructPropertyValue(r, typ, 0, uint32(inner.size()), 0, inner.size(), &anomalySink{})
	require.NoError(t, err)
	require.Equal(t, KindStruct, v.Kind)
	require.Len(t, v.Struct, 2)
	require.Equal(t, "Count", v.Struct[0].Name)
	require.True(t, v.Struct[1].isSentinel())
}

func TestStructPropertyGameplayTagContainer(t *testing.T) {
	typ := PropertyType{
		Name: "StructProperty",
		Tags: []TypeTag{{Value: "GameplayTagContainer"}, {Value: "/Script/GameplayTags"}},
	}

	w := newWriter()
	w.putU32(2)
	writeFString(w, "Tag.A")
	writeFString(w, "Tag.B")

	r := newReader(w.bytesOut())
	v, err := readStructPropertyValue(r, typ, 0x1, uint32(w.size()), 0, w.size(), &anomalySink{})
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind)
	require.Len(t, v.Array, 2)
	require.Equal(t, "Tag.A", v.Array[0].Str)

	out := newWriter()
	writePropertyValue(out, typ, 0x1, v)
	require.Equal(t, w.bytesOut(), out.bytesOut())
}

func TestStructPropertyCoreUObjectVector(t *testing.T) {
	typ := PropertyType{
		Name: "StructProperty",
		Tags: []TypeTag{{Value: "Vector"}, {Value: "/Script/CoreUObject"}},
	}

	w := newWriter()
	w.putF64(1.5)
	w.putF64(-2.5)
	w.putF64(3.0)

	r := newReader(w.bytesOut())
	v, err := readStructPropertyValue(r, typ, 0x1, uint32(w.size()), 0, w.size(), &anomalySink{})
	require.NoError(t, err)
	require.Equal(t, KindCoreUObject, v.Kind)
	require.Equal(t, 1.5, v.CoreObject.X)
	require.Equal(t, -2.5, v.CoreObject.Y)
	require.Equal(t, 3.0, v.CoreObject.Z)
	require.Equal(t, w.size(), valueSize(typ, v))
}
