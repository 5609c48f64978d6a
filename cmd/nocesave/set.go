// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nocesave/nocesave"
)

func newSetCmd() *cobra.Command {
	var strVal, intVal, floatVal, boolVal string
	var yes bool

	cmd := &cobra.Command{
		Use:   "set <save.sav> <path>",
		Short: "Overwrite the value at a dotted property path and rewrite the save in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			savePath, path := args[0], args[1]

			sg, err := gvas.Open(savePath, &gvas.Options{})
			if err != nil {
				return err
			}

			v, err := navigate(sg.Properties, path)
			if err != nil {
				return err
			}
			if err := applyScalar(v, strVal, intVal, floatVal, boolVal); err != nil {
				return err
			}

			if !yes && !confirm(cmd, fmt.Sprintf("rewrite %s in place", savePath)) {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}

			if cfg.BackupBeforeWrite {
				if _, err := writeBackup(savePath); err != nil {
					return fmt.Errorf("backup before write: %w", err)
				}
			}

			return os.WriteFile(savePath, sg.Write(), 0o644)
		},
	}
	cmd.Flags().StringVar(&strVal, "string", "", "new string value (Str/Name/Enum/Object)")
	cmd.Flags().StringVar(&intVal, "int", "", "new integer value")
	cmd.Flags().StringVar(&floatVal, "float", "", "new float/double value")
	cmd.Flags().StringVar(&boolVal, "bool", "", "new bool value (true/false)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// applyScalar writes whichever of the --string/--int/--float/--bool
// flags was set into v's matching field, leaving v's Kind unchanged.
func applyScalar(v *gvas.PropertyValue, strVal, intVal, floatVal, boolVal string) error {
	switch {
	case strVal != "":
		switch v.Kind {
		case gvas.KindStr, gvas.KindEnum, gvas.KindName, gvas.KindObject:
			v.Str = strVal
		default:
			return fmt.Errorf("--string does not apply to a %s value", v.Kind)
		}
	case intVal != "":
		n, err := strconv.ParseInt(intVal, 10, 64)
		if err != nil {
			return err
		}
		switch v.Kind {
		case gvas.KindInt:
			v.Int = int32(n)
		case gvas.KindByte:
			v.Byte = uint8(n)
		default:
			return fmt.Errorf("--int does not apply to a %s value", v.Kind)
		}
	case floatVal != "":
		f, err := strconv.ParseFloat(floatVal, 64)
		if err != nil {
			return err
		}
		switch v.Kind {
		case gvas.KindFloat:
			v.Float = float32(f)
		case gvas.KindDouble:
			v.Double = f
		default:
			return fmt.Errorf("--float does not apply to a %s value", v.Kind)
		}
	case boolVal != "":
		b, err := strconv.ParseBool(boolVal)
		if err != nil {
			return err
		}
		if v.Kind != gvas.KindBool {
			return fmt.Errorf("--bool does not apply to a %s value", v.Kind)
		}
		v.Bool = &b
		v.BoolAbsent = false
	default:
		return fmt.Errorf("one of --string, --int, --float, --bool is required")
	}
	return nil
}

// confirm prompts for a y/n answer on stdin, skipping the prompt (and
// answering yes) when stdin isn't an interactive terminal, so scripted
// invocations of "set" don't hang waiting on input they can't supply.
func confirm(cmd *cobra.Command, action string) bool {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return true
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s? [y/N] ", action)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}
