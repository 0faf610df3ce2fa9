package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <文件名>",
		Short: "从 <文件名>.bak 还原文件",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opRestore, args[0])
		},
	}
}

// restore 用备份覆盖原文件, 原文件不存在时新建
func (w *workspace) restore(filename string) (string, error) {
	bakName := backupName(filename)
	bak, err := w.resolve(bakName)
	if err != nil {
		return "", err
	}
	if err := statRegularFile(bak, errBackupNotFound); err != nil {
		return "", err
	}

	dst, err := w.resolve(filename)
	if err != nil {
		return "", err
	}

	if err := copyFile(bak, dst, w.quiet); err != nil {
		return "", fmt.Errorf("还原文件失败 (%s ← %s): %w", filename, bakName, err)
	}

	w.activity.record(fmt.Sprintf("restore %s <- %s", filename, bakName))
	return dst, nil
}
