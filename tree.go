// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import "strings"

// GetByName resolves a child of v by property/key name. It applies to
// StructProperty bodies (search the child list), CustomStruct (search
// its property list), and MapProperty (match a string- or name-keyed
// entry). Any other Kind reports ok=false.
func (v *PropertyValue) GetByName(name string) (*PropertyValue, bool) {
	switch v.Kind {
	case KindStruct:
		for i := range v.Struct {
			p := &v.Struct[i]
			if p.Body != nil && p.Name == name {
				return &p.Body.Value, true
			}
		}
	case KindCustomStruct:
		if v.CustomStruct == nil {
			return nil, false
		}
		for i := range v.CustomStruct.Properties {
			p := &v.CustomStruct.Properties[i]
			if p.Body != nil && p.Name == name {
				return &p.Body.Value, true
			}
		}
	case KindMap:
		for i := range v.Map {
			if s, ok := v.Map[i].Key.stringLike(); ok && s == name {
				return &v.Map[i].Value, true
			}
		}
	}
	return nil, false
}

// GetByIndex resolves a child of v positionally: an ArrayProperty
// element, a MapProperty entry's value, or the i-th child of a
// StructProperty/CustomStruct property list.
func (v *PropertyValue) GetByIndex(i int) (*PropertyValue, bool) {
	if i < 0 {
		return nil, false
	}
	switch v.Kind {
	case KindArray:
		if i >= len(v.Array) {
			return nil, false
		}
		return &v.Array[i], true
	case KindMap:
		if i >= len(v.Map) {
			return nil, false
		}
		return &v.Map[i].Value, true
	case KindStruct:
		if i >= len(v.Struct) || v.Struct[i].Body == nil {
			return nil, false
		}
		return &v.Struct[i].Body.Value, true
	case KindCustomStruct:
		if v.CustomStruct == nil || i >= len(v.CustomStruct.Properties) || v.CustomStruct.Properties[i].Body == nil {
			return nil, false
		}
		return &v.CustomStruct.Properties[i].Body.Value, true
	}
	return nil, false
}

// EqualString reports structural equality against an external string,
// matching only the single-FString-shaped kinds (Str, Enum, Name,
// Object).
func (v PropertyValue) EqualString(s string) bool {
	got, ok := v.stringLike()
	return ok && got == s
}

// EqualInt reports structural equality against an external integer.
// ByteProperty is unsigned on the wire, so a negative n never matches
// one, per the codec's "unsigned compare rejects negative" rule.
func (v PropertyValue) EqualInt(n int64) bool {
	switch v.Kind {
	case KindInt:
		return int64(v.Int) == n
	case KindByte:
		return n >= 0 && int64(v.Byte) == n
	default:
		return false
	}
}

// InsertAt inserts elem at index in an ArrayProperty value, shifting
// subsequent elements right. index == len(v.Array) appends.
func (v *PropertyValue) InsertAt(index int, elem PropertyValue) error {
	if v.Kind != KindArray {
		return ErrOutOfRange
	}
	if index < 0 || index > len(v.Array) {
		return ErrOutOfRange
	}
	v.Array = append(v.Array, PropertyValue{})
	copy(v.Array[index+1:], v.Array[index:])
	v.Array[index] = elem
	return nil
}

// RemoveAt removes the element at index from an ArrayProperty value.
func (v *PropertyValue) RemoveAt(index int) error {
	if v.Kind != KindArray {
		return ErrOutOfRange
	}
	if index < 0 || index >= len(v.Array) {
		return ErrOutOfRange
	}
	v.Array = append(v.Array[:index], v.Array[index+1:]...)
	return nil
}

// DefaultForType returns the zero PropertyValue for a bare type name,
// used when a caller wants to add a new property without a full
// PropertyType descriptor (e.g. primitives, or a StructProperty/
// ArrayProperty/MapProperty whose contents will be filled in
// separately).
func DefaultForType(typeName string) PropertyValue {
	switch typeName {
	case "StrProperty":
		return PropertyValue{Kind: KindStr}
	case "BoolProperty":
		b := false
		return PropertyValue{Kind: KindBool, Bool: &b, BoolAbsent: true}
	case "ByteProperty":
		return PropertyValue{Kind: KindByte}
	case "IntProperty":
		return PropertyValue{Kind: KindInt}
	case "FloatProperty":
		return PropertyValue{Kind: KindFloat}
	case "DoubleProperty":
		return PropertyValue{Kind: KindDouble}
	case "NameProperty":
		return PropertyValue{Kind: KindName}
	case "EnumProperty":
		return PropertyValue{Kind: KindEnum}
	case "ObjectProperty":
		return PropertyValue{Kind: KindObject}
	case "TextProperty":
		return PropertyValue{Kind: KindText, Text: TextData{Kind: textDataKindNone}}
	case "StructProperty":
		return PropertyValue{Kind: KindStruct, Struct: []Property{{Name: "None"}}}
	case "ArrayProperty":
		return PropertyValue{Kind: KindArray}
	case "MapProperty":
		return PropertyValue{Kind: KindMap}
	default:
		return PropertyValue{Kind: KindUnknown}
	}
}

// MakeDefaultValue is DefaultForType's type-aware counterpart: given a
// full PropertyType and the flag byte a new property would carry, it
// picks the correct StructProperty interpretation (GameplayTagContainer,
// a zero-valued CoreUObject, or a plain nested stream) instead of always
// defaulting to the flags==0 shape.
func MakeDefaultValue(t PropertyType, flags uint8) PropertyValue {
	if t.Name != "StructProperty" || flags == 0 {
		return DefaultForType(t.Name)
	}

	desc := t.describe()
	if desc == "StructProperty</Script/GameplayTags.GameplayTagContainer>" {
		return PropertyValue{Kind: KindArray}
	}
	if strings.HasPrefix(desc, "StructProperty</Script/CoreUObject.") && len(t.Tags) > 0 {
		typeName := t.Tags[0].Value
		if _, ok := coreUObjectNameFor(typeName); ok {
			return PropertyValue{Kind: KindCoreUObject, CoreObject: &CoreUObject{TypeName: typeName}}
		}
	}
	return PropertyValue{Kind: KindUnknown}
}
