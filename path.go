package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const backupSuffix = ".bak"

var errInvalidInput = errors.New("不安全的路径")

// isSafePathComponent 拒绝可能逃出工作目录的文件名
func isSafePathComponent(name string) bool {
	if strings.Contains(name, "..") {
		return false
	}
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	// 盘符开头, 如 C:\ 或 c:/
	if len(name) > 2 && isASCIILetter(name[0]) && name[1] == ':' && (name[2] == '/' || name[2] == '\\') {
		return false
	}
	return true
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// resolvePathInBase 将文件名拼接到 base 下, 文件名只能是单个路径段
func resolvePathInBase(base, name string) (string, error) {
	if !isSafePathComponent(name) {
		return "", fmt.Errorf("%w: %q", errInvalidInput, name)
	}
	if name == "" {
		return "", fmt.Errorf("%w: 文件名不能为空", errInvalidInput)
	}

	// 除开头的 ./ 外, Clean 不能改变文件名, 如 a/ a//b a/.
	normalized := strings.ReplaceAll(name, `\`, "/")
	cleaned := filepath.Clean(normalized)
	if cleaned == "." || cleaned != filepath.Base(cleaned) || cleaned != strings.TrimPrefix(normalized, "./") {
		return "", fmt.Errorf("%w: %q 不是单个文件名", errInvalidInput, name)
	}
	return filepath.Join(base, cleaned), nil
}

// backupName 返回备份文件名
func backupName(filename string) string {
	return filename + backupSuffix
}

// workspace 所有文件操作和日志都以 base 为根目录
type workspace struct {
	base     string
	activity activityLog
	quiet    bool
}

func (w *workspace) resolve(name string) (string, error) {
	return resolvePathInBase(w.base, name)
}

// statRegularFile 文件不存在时返回 notFound, 是目录时返回 errInvalidInput
func statRegularFile(path string, notFound error) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return notFound
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s 是目录", errInvalidInput, filepath.Base(path))
	}
	return nil
}
