package main

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

var (
	errSourceNotFound = fmt.Errorf("源文件不存在: %w", fs.ErrNotExist)
	errBackupNotFound = fmt.Errorf("备份文件不存在: %w", fs.ErrNotExist)
)

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <文件名>",
		Short: "备份文件到 <文件名>.bak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opBackup, args[0])
		},
	}
}

// backup 将文件复制为 <filename>.bak, 覆盖已有备份
func (w *workspace) backup(filename string) (string, error) {
	src, err := w.resolve(filename)
	if err != nil {
		return "", err
	}
	if err := statRegularFile(src, errSourceNotFound); err != nil {
		return "", err
	}

	bakName := backupName(filename)
	dst, err := w.resolve(bakName)
	if err != nil {
		return "", err
	}

	if err := copyFile(src, dst, w.quiet); err != nil {
		return "", fmt.Errorf("复制文件失败 (%s → %s): %w", filename, bakName, err)
	}

	w.activity.record(fmt.Sprintf("backup %s -> %s", filename, bakName))
	return dst, nil
}
