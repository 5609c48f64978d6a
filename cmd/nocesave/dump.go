// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nocesave/nocesave"
)

func newDumpCmd() *cobra.Command {
	var pretty bool
	var showAnomalies bool
	var showFingerprint bool

	cmd := &cobra.Command{
		Use:   "dump <save.sav>",
		Short: "Parse a save file and print its property tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sg, err := gvas.Open(args[0], &gvas.Options{})
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("pretty") {
				cfg.Pretty = pretty
			}

			var out []byte
			if cfg.Pretty {
				out, err = json.MarshalIndent(sg, "", "  ")
			} else {
				out, err = json.Marshal(sg)
			}
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			if showFingerprint {
				fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %016x\n", sg.Fingerprint())
			}

			if showAnomalies && len(sg.Anomalies) > 0 {
				info, err := os.Stat(args[0])
				if err != nil {
					return err
				}
				warn := color.New(color.FgYellow)
				warn.Fprintf(cmd.ErrOrStderr(), "%d anomalies while parsing %s (%s on disk):\n",
					len(sg.Anomalies), args[0], humanize.Bytes(uint64(info.Size())))
				for _, a := range sg.Anomalies {
					warn.Fprintf(cmd.ErrOrStderr(), "  - %s\n", a)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", true, "indent JSON output")
	cmd.Flags().BoolVar(&showAnomalies, "anomalies", true, "print recoverable parse anomalies to stderr")
	cmd.Flags().BoolVar(&showFingerprint, "fingerprint", false, "print the save's content fingerprint")
	return cmd
}
