package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

var errFileNotFound = fmt.Errorf("文件不存在: %w", fs.ErrNotExist)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <文件名>",
		Short: "删除文件 (不可恢复)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opDelete, args[0])
		},
	}
}

// delete 永久删除文件, 不经过备份
func (w *workspace) delete(filename string) error {
	path, err := w.resolve(filename)
	if err != nil {
		return err
	}
	if err := statRegularFile(path, errFileNotFound); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("删除文件失败 (%s): %w", filename, err)
	}

	w.activity.record(fmt.Sprintf("delete %s", filename))
	return nil
}
