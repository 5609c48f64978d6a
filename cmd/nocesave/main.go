// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command nocesave inspects and edits GVAS save files: a Cobra root
// command with a handful of narrow subcommands rather than one
// do-everything flag set.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nocesave/nocesave/internal/ncvconfig"
)

var (
	verbose    bool
	configPath string
	cfg        ncvconfig.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nocesave",
		Short: "Inspect and edit GVAS save files",
		Long:  "nocesave reads, edits, and rewrites GVAS-format .sav save files.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				p, err := ncvconfig.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			loaded, err := ncvconfig.Load(path)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (no subcommand reads this flag; it has no effect)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to nocesave config YAML (default ~/.nocesaverc.yaml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newBackupCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("nocesave 0.1.0")
		},
	}
}
