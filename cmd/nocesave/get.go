// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nocesave/nocesave"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <save.sav> <path>",
		Short: "Print the value at a dotted property path",
		Long:  "Path segments are property names; array/map entries take a [N] index suffix, e.g. Inventory.Items[2].Quantity.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sg, err := gvas.Open(args[0], &gvas.Options{})
			if err != nil {
				return err
			}
			v, err := navigate(sg.Properties, args[1])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	return cmd
}
