// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

// CoreUObject holds one of the fixed-layout CoreUObject payloads spec.md §3
// names for a StructProperty whose canonical description begins
// "StructProperty</Script/CoreUObject.". Grounded on
// _examples/original_source/src/uobject.rs's CoreUObject trait and its
// FDateTime/FTimespan/Vector/Quat/LinearColor implementations, collapsed
// here into one struct with a discriminant rather than an interface, since
// none of these payloads carry behavior beyond their own byte layout.
type CoreUObject struct {
	TypeName string // the registry key, e.g. "DateTime"

	Ticks uint64 // DateTime, Timespan

	X, Y, Z, W float64 // Vector (X,Y,Z), Quat (X,Y,Z,W)

	R, G, B, A float32 // LinearColor
}

// coreUObjectSizes gives the fixed wire size of each recognized payload.
var coreUObjectSizes = map[string]int{
	"DateTime":    8,
	"Timespan":    8,
	"Vector":      24,
	"Quat":        32,
	"LinearColor": 16,
}

// coreUObjectNameFor looks up a StructProperty</Script/CoreUObject.X> tag
// value in the registry, returning its fixed wire size and whether it is
// registered.
func coreUObjectNameFor(typeName string) (int, bool) {
	n, ok := coreUObjectSizes[typeName]
	return n, ok
}

func readCoreUObject(r *reader, typeName string) (CoreUObject, error) {
	o := CoreUObject{TypeName: typeName}
	var err error
	switch typeName {
	case "DateTime", "Timespan":
		o.Ticks, err = r.u64()
	case "Vector":
		o.X, err = r.f64()
		if err == nil {
			o.Y, err = r.f64()
		}
		if err == nil {
			o.Z, err = r.f64()
		}
	case "Quat":
		o.X, err = r.f64()
		if err == nil {
			o.Y, err = r.f64()
		}
		if err == nil {
			o.Z, err = r.f64()
		}
		if err == nil {
			o.W, err = r.f64()
		}
	case "LinearColor":
		var r32 float32
		r32, err = r.f32()
		o.R = r32
		if err == nil {
			o.G, err = r.f32()
		}
		if err == nil {
			o.B, err = r.f32()
		}
		if err == nil {
			o.A, err = r.f32()
		}
	default:
		return CoreUObject{}, wrapErr(ErrUnknownTag, r.offset(), typeName)
	}
	if err != nil {
		return CoreUObject{}, err
	}
	return o, nil
}

func writeCoreUObject(w *writer, o CoreUObject) {
	switch o.TypeName {
	case "DateTime", "Timespan":
		w.putU64(o.Ticks)
	case "Vector":
		w.putF64(o.X)
		w.putF64(o.Y)
		w.putF64(o.Z)
	case "Quat":
		w.putF64(o.X)
		w.putF64(o.Y)
		w.putF64(o.Z)
		w.putF64(o.W)
	case "LinearColor":
		w.putF32(o.R)
		w.putF32(o.G)
		w.putF32(o.B)
		w.putF32(o.A)
	}
}

func (o CoreUObject) size() int {
	n, ok := coreUObjectSizes[o.TypeName]
	if !ok {
		return 0
	}
	return n
}
