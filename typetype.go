// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import "strings"

// TypeTag is a single {kind, value} entry in a PropertyType's tag list.
// A tag list on the wire is a sequence of these terminated by a u32 0,
// which is not itself a tag (spec.md §3).
type TypeTag struct {
	Kind  uint32
	Value string
}

func (t TypeTag) size() int {
	return 4 + fstringByteSize(t.Value)
}

func readTags(r *reader) ([]TypeTag, error) {
	var tags []TypeTag
	for {
		kind, err := r.u32()
		if err != nil {
			return nil, err
		}
		if kind == 0 {
			return tags, nil
		}
		value, err := readFString(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, TypeTag{Kind: kind, Value: value})
	}
}

func writeTags(w *writer, tags []TypeTag) {
	for _, t := range tags {
		w.putU32(t.Kind)
		writeFString(w, t.Value)
	}
	w.putU32(0)
}

// PropertyType is the {name, tags, innerTypes} type descriptor described
// in spec.md §3-4.2. innerTypes is not read at every position a
// PropertyType appears; it is populated only for the names/tag shapes
// enumerated by innerArity, and its slots are addressed positionally (see
// MapProperty's value type, which SPEC_FULL.md keeps as the last element
// rather than a fixed index, matching original_source's
// `property_type.inner_types.last()`).
type PropertyType struct {
	Name       string
	Tags       []TypeTag
	InnerTypes []PropertyType
}

// innerArity returns how many inner PropertyTypes follow a type's tag
// list, per spec.md §4.2.
func innerArity(name string, tags []TypeTag) int {
	switch name {
	case "EnumProperty":
		return 1
	case "MapProperty":
		if len(tags) > 0 && tags[0].Value == "EnumProperty" {
			return 2
		}
		return 1
	case "ArrayProperty":
		if len(tags) == 0 {
			return 0
		}
		switch tags[0].Value {
		case "EnumProperty":
			return 1
		case "MapProperty":
			if len(tags) > 1 && tags[1].Value == "EnumProperty" {
				return 2
			}
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}

func readPropertyType(r *reader) (PropertyType, error) {
	name, err := readFString(r)
	if err != nil {
		return PropertyType{}, err
	}
	tags, err := readTags(r)
	if err != nil {
		return PropertyType{}, err
	}
	arity := innerArity(name, tags)
	var inner []PropertyType
	for i := 0; i < arity; i++ {
		it, err := readPropertyType(r)
		if err != nil {
			return PropertyType{}, err
		}
		inner = append(inner, it)
	}
	return PropertyType{Name: name, Tags: tags, InnerTypes: inner}, nil
}

func writePropertyType(w *writer, t PropertyType) {
	writeFString(w, t.Name)
	writeTags(w, t.Tags)
	for _, it := range t.InnerTypes {
		writePropertyType(w, it)
	}
}

// size is PropertyType.size per spec.md §4.4:
// name.byte_size + Σ tag_size + 4 (terminator) + Σ innerType.size.
func (t PropertyType) size() int {
	n := fstringByteSize(t.Name) + 4
	for _, tag := range t.Tags {
		n += tag.size()
	}
	for _, it := range t.InnerTypes {
		n += it.size()
	}
	return n
}

// elementType projects the PropertyType used to parse/write the elements
// of a container (spec.md §4.2's "Element type projection").
func (t PropertyType) elementType() PropertyType {
	switch t.Name {
	case "ArrayProperty", "MapProperty":
		if len(t.Tags) == 0 {
			return t
		}
		name := t.Tags[0].Value
		tags := t.Tags[1:]
		var inner []PropertyType
		if name == "EnumProperty" && len(t.InnerTypes) > 0 {
			inner = []PropertyType{t.InnerTypes[0]}
		}
		return PropertyType{Name: name, Tags: tags, InnerTypes: inner}
	case "StructProperty":
		if t.describe() == "StructProperty</Script/GameplayTags.GameplayTagContainer>" {
			return PropertyType{Name: "NameProperty"}
		}
		return t
	default:
		return t
	}
}

// valueType returns the projected value type for a MapProperty: the last
// entry of InnerTypes, mirroring original_source's
// `property_type.inner_types.last()`.
func (t PropertyType) valueType() PropertyType {
	if len(t.InnerTypes) == 0 {
		return PropertyType{Name: "UnknownProperty"}
	}
	return t.InnerTypes[len(t.InnerTypes)-1]
}

// describe renders the canonical textual description used for dispatch
// and matching, per spec.md §3:
//
//	ArrayProperty[ElementType...], StructProperty<Namespace.TagValue>,
//	EnumProperty<Namespace.TagValue>, MapProperty<KeyType, ValueType>
func (t PropertyType) describe() string {
	var b strings.Builder
	t.describeInto(&b)
	return b.String()
}

func (t PropertyType) describeInto(b *strings.Builder) {
	b.WriteString(t.Name)

	switch t.Name {
	case "StructProperty", "EnumProperty":
		if len(t.Tags) > 0 {
			b.WriteByte('<')
			if len(t.Tags) > 1 {
				b.WriteString(t.Tags[1].Value)
				b.WriteByte('.')
			}
			b.WriteString(t.Tags[0].Value)
			b.WriteByte('>')
		}
	case "ArrayProperty":
		if len(t.Tags) > 0 {
			b.WriteByte('[')
			inner := PropertyType{Name: t.Tags[0].Value, Tags: t.Tags[1:]}
			inner.describeInto(b)
			b.WriteByte(']')
		}
	case "MapProperty":
		if len(t.Tags) > 0 {
			b.WriteByte('<')
			key := PropertyType{Name: t.Tags[0].Value, Tags: t.Tags[1:]}
			key.describeInto(b)
			b.WriteString(", ")
			b.WriteString(t.valueType().describe())
			b.WriteByte('>')
		}
	}
}
