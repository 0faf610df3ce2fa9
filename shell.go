package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

type operation int

const (
	opBackup operation = iota + 1
	opRestore
	opDelete
)

var (
	errInvalidCommand = errors.New("无效的命令")
	errUnsafeFilename = errors.New("检测到不安全的文件名")
)

// parseOperation 命令区分大小写
func parseOperation(s string) (operation, error) {
	switch s {
	case "backup":
		return opBackup, nil
	case "restore":
		return opRestore, nil
	case "delete":
		return opDelete, nil
	}
	return 0, fmt.Errorf("%w: %q", errInvalidCommand, s)
}

func (op operation) String() string {
	switch op {
	case opBackup:
		return "backup"
	case opRestore:
		return "restore"
	case opDelete:
		return "delete"
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// checkFilename 拒绝不安全的文件名并写入日志
func (w *workspace) checkFilename(filename string) error {
	if isSafePathComponent(filename) {
		return nil
	}
	w.activity.record("rejected unsafe filename input: " + filename)
	return fmt.Errorf("%w: %s", errUnsafeFilename, filename)
}

// apply 执行操作, 返回给用户的确认信息
func (w *workspace) apply(op operation, filename string) (string, error) {
	switch op {
	case opBackup:
		dst, err := w.backup(filename)
		if err != nil {
			return "", fmt.Errorf("创建备份失败: %w", err)
		}
		return fmt.Sprintf("备份已创建: %s", filepath.Base(dst)), nil
	case opRestore:
		if _, err := w.restore(filename); err != nil {
			return "", fmt.Errorf("还原失败: %w", err)
		}
		return fmt.Sprintf("文件已还原: %s", filename), nil
	case opDelete:
		if err := w.delete(filename); err != nil {
			return "", fmt.Errorf("删除失败: %w", err)
		}
		return fmt.Sprintf("文件已删除: %s", filename), nil
	}
	return "", fmt.Errorf("%w: %v", errInvalidCommand, op)
}

// shell 交互式读取文件名和命令, 不负责退出码和暂停
type shell struct {
	ws  *workspace
	in  *bufio.Reader
	out io.Writer
}

func (s *shell) run() error {
	fmt.Fprintln(s.out, "=== SafeBackup ===")

	filename, err := s.prompt("请输入文件名: ")
	if err != nil {
		return err
	}
	if err := s.ws.checkFilename(filename); err != nil {
		return err
	}

	command, err := s.prompt("请输入命令 (backup, restore, delete): ")
	if err != nil {
		return err
	}
	op, err := parseOperation(command)
	if err != nil {
		return err
	}

	msg, err := s.ws.apply(op, filename)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, msg)
	return nil
}

// prompt 读取一行并去掉首尾空白, 输入结束时返回已读内容
func (s *shell) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("读取输入失败: %w", err)
	}
	return strings.TrimSpace(line), nil
}
