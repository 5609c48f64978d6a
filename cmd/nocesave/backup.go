// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pierrec/lz4/v4"
	"github.com/spf13/cobra"
)

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup <save.sav>",
		Short: "Write an LZ4-compressed copy of a save next to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := writeBackup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	return cmd
}

// writeBackup compresses savePath's current contents with LZ4 and
// writes them to savePath+".bak.lz4", returning the backup's path.
func writeBackup(savePath string) (string, error) {
	data, err := os.ReadFile(savePath)
	if err != nil {
		return "", err
	}

	var compressed bytes.Buffer
	zw := lz4.NewWriter(&compressed)
	if _, err := zw.Write(data); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}

	backupPath := savePath + ".bak.lz4"
	if err := os.WriteFile(backupPath, compressed.Bytes(), 0o644); err != nil {
		return "", err
	}
	return backupPath, nil
}
