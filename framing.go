// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import "fmt"

// readPropertyStream reads Property records until either a sentinel
// ("None") record is seen or the cursor reaches end, whichever happens
// first (spec.md §4.7). Both termination modes are represented the same
// way: the sentinel, when seen, is appended to the returned slice like
// any other Property, so writePropertyStream reproduces it automatically
// and a stream that ended purely by reaching its size bound simply has
// no trailing "None" entry to reproduce.
//
// While walking the stream this also runs the custom-struct recognizer
// described in spec.md §4.5: a "Class" record whose value names a known
// class primes classFooterSizeFor for every subsequent "Data" sibling
// until a new "Class" record supersedes it, and each such "Data"
// sibling's ArrayProperty[ByteProperty] payload is re-parsed in place
// as a CustomStruct.
func readPropertyStream(r *reader, end int, sink *anomalySink) ([]Property, error) {
	var props []Property
	var pendingClass string
	haveClass := false

	for r.pos < end {
		p, err := readProperty(r, sink)
		if err != nil {
			return nil, err
		}

		if p.Body != nil {
			switch p.Name {
			case "Class":
				if s, ok := p.Body.Value.stringLike(); ok {
					pendingClass = s
					haveClass = true
				}
			case "Data":
				if haveClass {
					if footerSize, ok := classFooterSizeFor(pendingClass); ok {
						converted, ok2, err := tryRecognizeCustomStruct(p.Body.Value, footerSize, sink)
						if err != nil {
							return nil, err
						}
						if ok2 {
							p.Body.Value = converted
						} else {
							sink.add(fmt.Sprintf("Data sibling of class %q did not match the expected custom-struct layout", pendingClass))
						}
					}
				}
			}
		}

		props = append(props, p)
		if p.isSentinel() {
			break
		}
	}
	return props, nil
}

// writePropertyStream is the exact inverse of readPropertyStream: it
// simply re-emits every Property in order, sentinel included if one was
// captured.
func writePropertyStream(w *writer, props []Property) {
	for _, p := range props {
		writeProperty(w, p)
	}
}

// tryRecognizeCustomStruct attempts to reinterpret the ArrayProperty[Byte]
// payload v as a CustomStruct bounded by footerSize trailing bytes. It
// returns ok=false, leaving v untouched, when v isn't shaped like a
// byte-array-specialized ArrayProperty, and returns the error when the
// reparse of a correctly shaped payload fails.
func tryRecognizeCustomStruct(v PropertyValue, footerSize int, sink *anomalySink) (PropertyValue, bool, error) {
	if v.Kind != KindArray || len(v.Array) != 1 {
		return v, false, nil
	}
	el := v.Array[0]
	if el.Kind != KindUnknown {
		return v, false, nil
	}
	cs, err := readCustomStruct(el.Unknown, footerSize, sink)
	if err != nil {
		return v, false, err
	}
	return PropertyValue{Kind: KindArray, Array: []PropertyValue{{Kind: KindCustomStruct, CustomStruct: &cs}}}, true, nil
}
