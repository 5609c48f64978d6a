// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates the closed PropertyValue union described in spec.md
// §4.3. Go has no sum type, so the union is a single struct tagged by
// Kind with one payload field populated per case.
type Kind uint8

const (
	KindStr Kind = iota
	KindBool
	KindByte
	KindInt
	KindFloat
	KindDouble
	KindText
	KindEnum
	KindName
	KindObject
	KindStruct
	KindCustomStruct
	KindCoreUObject
	KindArray
	KindMap
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindStr:
		return "Str"
	case KindBool:
		return "Bool"
	case KindByte:
		return "Byte"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindText:
		return "Text"
	case KindEnum:
		return "Enum"
	case KindName:
		return "Name"
	case KindObject:
		return "Object"
	case KindStruct:
		return "Struct"
	case KindCustomStruct:
		return "CustomStruct"
	case KindCoreUObject:
		return "CoreUObject"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// MapEntry is one key/value pair of a MapProperty.
type MapEntry struct {
	Key   PropertyValue
	Value PropertyValue
}

// PropertyValue is the tagged union of spec.md §4.3. Exactly one payload
// field is meaningful, selected by Kind.
type PropertyValue struct {
	Kind Kind

	Str string // Str, Enum, Name, Object

	Bool       *bool // non-nil whenever Kind == KindBool
	BoolAbsent bool  // true if this bool was the zero-dataSize, flag-carried form

	Byte uint8

	Int int32

	Float float32

	Double float64

	TextFlags TextFlags
	Text      TextData

	Struct []Property // StructProperty, flags == 0: nested property stream

	CustomStruct *CustomStruct

	CoreObject *CoreUObject

	Array []PropertyValue

	MapRemovedCount uint32
	Map             []MapEntry

	Unknown []byte // raw retained bytes: ByteProperty fallback, unrecognized struct/property
}

// stringLike reports whether v carries a single textual payload in Str,
// used to recover a Class record's object-path name during custom-struct
// recognition.
func (v PropertyValue) stringLike() (string, bool) {
	switch v.Kind {
	case KindStr, KindEnum, KindName, KindObject:
		return v.Str, true
	default:
		return "", false
	}
}

// readPropertyValue dispatches on t.Name per spec.md §4.3. dataSize is the
// declared byte bound for this value; flags is the owning PropertyBody's
// flag byte (or, for values read as container elements, the flags of the
// enclosing array/map property, propagated down as original_source's
// read_with_arg does).
func readPropertyValue(r *reader, t PropertyType, flags uint8, dataSize uint32, sink *anomalySink) (PropertyValue, error) {
	start := r.pos
	end := start + int(dataSize)

	switch t.Name {
	case "StrProperty", "NameProperty", "ObjectProperty":
		s, err := readFString(r)
		if err != nil {
			return PropertyValue{}, err
		}
		kind := map[string]Kind{"StrProperty": KindStr, "NameProperty": KindName, "ObjectProperty": KindObject}[t.Name]
		return PropertyValue{Kind: kind, Str: s}, nil

	case "EnumProperty":
		s, err := readFString(r)
		if err != nil {
			return PropertyValue{}, err
		}
		return PropertyValue{Kind: KindEnum, Str: s}, nil

	case "BoolProperty":
		if dataSize == 0 {
			b := flags&0x10 != 0
			return PropertyValue{Kind: KindBool, Bool: &b, BoolAbsent: true}, nil
		}
		v, err := r.u8()
		if err != nil {
			return PropertyValue{}, err
		}
		b := v != 0
		return PropertyValue{Kind: KindBool, Bool: &b}, nil

	case "ByteProperty":
		if dataSize == 1 {
			b, err := r.u8()
			if err != nil {
				return PropertyValue{}, err
			}
			return PropertyValue{Kind: KindByte, Byte: b}, nil
		}
		snapshot := r.pos
		if len(t.Tags) > 0 {
			if s, err := readFString(r); err == nil && r.pos == end {
				return PropertyValue{Kind: KindEnum, Str: s}, nil
			}
			r.pos = snapshot
		}
		b, err := r.bytes(int(dataSize))
		if err != nil {
			return PropertyValue{}, err
		}
		sink.add(fmt.Sprintf("ByteProperty at offset 0x%X did not parse as an enum string, retained as raw bytes", start))
		return PropertyValue{Kind: KindUnknown, Unknown: append([]byte(nil), b...)}, nil

	case "IntProperty":
		v, err := r.i32()
		if err != nil {
			return PropertyValue{}, err
		}
		return PropertyValue{Kind: KindInt, Int: v}, nil

	case "FloatProperty":
		v, err := r.f32()
		if err != nil {
			return PropertyValue{}, err
		}
		return PropertyValue{Kind: KindFloat, Float: v}, nil

	case "DoubleProperty":
		v, err := r.f64()
		if err != nil {
			return PropertyValue{}, err
		}
		return PropertyValue{Kind: KindDouble, Double: v}, nil

	case "TextProperty":
		rawFlags, err := r.u32()
		if err != nil {
			return PropertyValue{}, err
		}
		td, err := readTextData(r)
		if errors.Is(err, ErrUnknownTag) {
			r.pos = start
			b, err := r.bytes(int(dataSize))
			if err != nil {
				return PropertyValue{}, err
			}
			sink.add(fmt.Sprintf("TextProperty at offset 0x%X has an unrecognized TextData kind, retained as raw bytes", start))
			return PropertyValue{Kind: KindUnknown, Unknown: append([]byte(nil), b...)}, nil
		}
		if err != nil {
			return PropertyValue{}, err
		}
		return PropertyValue{Kind: KindText, TextFlags: TextFlags(rawFlags), Text: td}, nil

	case "StructProperty":
		return readStructPropertyValue(r, t, flags, dataSize, start, end, sink)

	case "ArrayProperty":
		return readArrayPropertyValue(r, t, flags, end, sink)

	case "MapProperty":
		return readMapPropertyValue(r, t, flags, end, sink)

	default:
		b, err := r.bytes(int(dataSize))
		if err != nil {
			return PropertyValue{}, err
		}
		sink.add(fmt.Sprintf("unrecognized property type %q at offset 0x%X, retained as raw bytes", t.Name, start))
		return PropertyValue{Kind: KindUnknown, Unknown: append([]byte(nil), b...)}, nil
	}
}

// readStructPropertyValue implements the three-way StructProperty branch
// of spec.md §4.3.
func readStructPropertyValue(r *reader, t PropertyType, flags uint8, dataSize uint32, start, end int, sink *anomalySink) (PropertyValue, error) {
	if flags != 0 {
		desc := t.describe()

		if desc == "StructProperty</Script/GameplayTags.GameplayTagContainer>" {
			count, err := r.u32()
			if err != nil {
				return PropertyValue{}, err
			}
			names := make([]PropertyValue, 0, count)
			for i := uint32(0); i < count; i++ {
				s, err := readFString(r)
				if err != nil {
					return PropertyValue{}, err
				}
				names = append(names, PropertyValue{Kind: KindName, Str: s})
			}
			return PropertyValue{Kind: KindArray, Array: names}, nil
		}

		if strings.HasPrefix(desc, "StructProperty</Script/CoreUObject.") && len(t.Tags) > 0 {
			typeName := t.Tags[0].Value
			if _, ok := coreUObjectNameFor(typeName); ok {
				o, err := readCoreUObject(r, typeName)
				if err == nil {
					return PropertyValue{Kind: KindCoreUObject, CoreObject: &o}, nil
				}
			}
			sink.add(fmt.Sprintf("struct %s at offset 0x%X did not match its CoreUObject layout, retained as raw bytes", typeName, start))
			r.pos = start
		}

		b, err := r.bytes(int(dataSize))
		if err != nil {
			return PropertyValue{}, err
		}
		return PropertyValue{Kind: KindUnknown, Unknown: append([]byte(nil), b...)}, nil
	}

	props, err := readPropertyStream(r, end, sink)
	if err != nil {
		return PropertyValue{}, err
	}
	if r.pos > end {
		return PropertyValue{}, wrapErr(ErrOverflowingValue, r.offset(), "StructProperty")
	}
	return PropertyValue{Kind: KindStruct, Struct: props}, nil
}

// readArrayPropertyValue implements ArrayProperty, including the
// byte-array specialization of spec.md's Invariant 5.
func readArrayPropertyValue(r *reader, t PropertyType, flags uint8, end int, sink *anomalySink) (PropertyValue, error) {
	elemType := t.elementType()

	n, err := r.u32()
	if err != nil {
		return PropertyValue{}, err
	}

	if elemType.Name == "ByteProperty" {
		b, err := r.bytes(int(n))
		if err != nil {
			return PropertyValue{}, err
		}
		return PropertyValue{
			Kind:  KindArray,
			Array: []PropertyValue{{Kind: KindUnknown, Unknown: append([]byte(nil), b...)}},
		}, nil
	}

	elems := make([]PropertyValue, 0, n)
	for i := uint32(0); i < n; i++ {
		if r.pos > end {
			return PropertyValue{}, wrapErr(ErrOverflowingValue, r.offset(), "ArrayProperty")
		}
		remaining := uint32(end - r.pos)
		v, err := readPropertyValue(r, elemType, flags, remaining, sink)
		if err != nil {
			return PropertyValue{}, err
		}
		elems = append(elems, v)
	}
	return PropertyValue{Kind: KindArray, Array: elems}, nil
}

// readMapPropertyValue implements MapProperty: a removed-element count,
// an entry count, then that many key/value pairs.
func readMapPropertyValue(r *reader, t PropertyType, flags uint8, end int, sink *anomalySink) (PropertyValue, error) {
	removedCount, err := r.u32()
	if err != nil {
		return PropertyValue{}, err
	}
	n, err := r.u32()
	if err != nil {
		return PropertyValue{}, err
	}

	keyType := t.elementType()
	valType := t.valueType()

	entries := make([]MapEntry, 0, n)
	for i := uint32(0); i < n; i++ {
		if r.pos > end {
			return PropertyValue{}, wrapErr(ErrOverflowingValue, r.offset(), "MapProperty")
		}
		k, err := readPropertyValue(r, keyType, flags, uint32(end-r.pos), sink)
		if err != nil {
			return PropertyValue{}, err
		}
		v, err := readPropertyValue(r, valType, flags, uint32(end-r.pos), sink)
		if err != nil {
			return PropertyValue{}, err
		}
		entries = append(entries, MapEntry{Key: k, Value: v})
	}
	return PropertyValue{Kind: KindMap, MapRemovedCount: removedCount, Map: entries}, nil
}

// writePropertyValue is the exact inverse of readPropertyValue.
func writePropertyValue(w *writer, t PropertyType, flags uint8, v PropertyValue) {
	switch v.Kind {
	case KindStr, KindEnum, KindName, KindObject:
		writeFString(w, v.Str)

	case KindBool:
		if v.BoolAbsent {
			return
		}
		val := uint8(0)
		if v.Bool != nil && *v.Bool {
			val = 1
		}
		w.putU8(val)

	case KindByte:
		w.putU8(v.Byte)

	case KindInt:
		w.putI32(v.Int)

	case KindFloat:
		w.putF32(v.Float)

	case KindDouble:
		w.putF64(v.Double)

	case KindText:
		w.putU32(uint32(v.TextFlags))
		writeTextData(w, v.Text)

	case KindStruct:
		writePropertyStream(w, v.Struct)

	case KindCustomStruct:
		writeCustomStruct(w, *v.CustomStruct)

	case KindCoreUObject:
		writeCoreUObject(w, *v.CoreObject)

	case KindArray:
		if t.Name == "StructProperty" {
			w.putU32(uint32(len(v.Array)))
			for _, el := range v.Array {
				writeFString(w, el.Str)
			}
			return
		}
		writeArrayValue(w, t, flags, v)

	case KindMap:
		writeMapValue(w, t, flags, v)

	case KindUnknown:
		w.putBytes(v.Unknown)
	}
}

func writeArrayValue(w *writer, t PropertyType, flags uint8, v PropertyValue) {
	elemType := t.elementType()

	if elemType.Name == "ByteProperty" && len(v.Array) == 1 {
		el := v.Array[0]
		if el.Kind == KindCustomStruct {
			tmp := newWriter()
			writeCustomStruct(tmp, *el.CustomStruct)
			w.putU32(uint32(tmp.size()))
			w.putBytes(tmp.bytesOut())
			return
		}
		w.putU32(uint32(len(el.Unknown)))
		w.putBytes(el.Unknown)
		return
	}

	w.putU32(uint32(len(v.Array)))
	for _, el := range v.Array {
		writePropertyValue(w, elemType, flags, el)
	}
}

func writeMapValue(w *writer, t PropertyType, flags uint8, v PropertyValue) {
	keyType := t.elementType()
	valType := t.valueType()

	w.putU32(v.MapRemovedCount)
	w.putU32(uint32(len(v.Map)))
	for _, e := range v.Map {
		writePropertyValue(w, keyType, flags, e.Key)
		writePropertyValue(w, valType, flags, e.Value)
	}
}

// valueSize computes the exact wire size of v as the value of a property
// declared with type t, per the size table in spec.md §4.4.
func valueSize(t PropertyType, v PropertyValue) int {
	switch v.Kind {
	case KindStr, KindEnum, KindName, KindObject:
		return fstringByteSize(v.Str)

	case KindBool:
		if v.BoolAbsent {
			return 0
		}
		return 1

	case KindByte:
		return 1

	case KindInt:
		return 4

	case KindFloat:
		return 4

	case KindDouble:
		return 8

	case KindText:
		return 4 + v.Text.size()

	case KindStruct:
		n := 0
		for _, p := range v.Struct {
			n += p.size()
		}
		return n

	case KindCustomStruct:
		return v.CustomStruct.size()

	case KindCoreUObject:
		return v.CoreObject.size()

	case KindArray:
		if t.Name == "StructProperty" {
			n := 4
			for _, el := range v.Array {
				n += fstringByteSize(el.Str)
			}
			return n
		}
		elemType := t.elementType()
		if elemType.Name == "ByteProperty" {
			if len(v.Array) == 1 {
				el := v.Array[0]
				if el.Kind == KindCustomStruct {
					return 4 + el.CustomStruct.size()
				}
				return 4 + len(el.Unknown)
			}
			return 4
		}
		n := 4
		for _, el := range v.Array {
			n += valueSize(elemType, el)
		}
		return n

	case KindMap:
		keyType := t.elementType()
		valType := t.valueType()
		n := 8
		for _, e := range v.Map {
			n += valueSize(keyType, e.Key) + valueSize(valType, e.Value)
		}
		return n

	case KindUnknown:
		return len(v.Unknown)

	default:
		return 0
	}
}
