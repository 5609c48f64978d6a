// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nocesave/nocesave"
)

// navigate walks a dotted, optionally index-suffixed path (e.g.
// "Inventory.Items[2].Quantity") over a save's top-level property list
// using gvas's tree accessors.
func navigate(props []gvas.Property, path string) (*gvas.PropertyValue, error) {
	root := &gvas.PropertyValue{Kind: gvas.KindStruct, Struct: props}
	cur := root

	path = strings.TrimSpace(path)
	if path == "" {
		return cur, nil
	}

	for _, tok := range strings.Split(path, ".") {
		if tok == "" {
			continue
		}
		name := tok
		idx := -1
		if i := strings.IndexByte(tok, '['); i >= 0 {
			if !strings.HasSuffix(tok, "]") {
				return nil, fmt.Errorf("malformed path segment %q", tok)
			}
			name = tok[:i]
			n, err := strconv.Atoi(tok[i+1 : len(tok)-1])
			if err != nil {
				return nil, fmt.Errorf("malformed index in %q: %w", tok, err)
			}
			idx = n
		}

		if name != "" {
			next, ok := cur.GetByName(name)
			if !ok {
				return nil, fmt.Errorf("no property named %q", name)
			}
			cur = next
		}
		if idx >= 0 {
			next, ok := cur.GetByIndex(idx)
			if !ok {
				return nil, fmt.Errorf("index %d out of range at %q", idx, tok)
			}
			cur = next
		}
	}
	return cur, nil
}
