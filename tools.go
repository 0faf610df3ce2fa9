package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// copyFile 复制文件内容, 目标已存在时覆盖
func copyFile(src, dst string, quiet bool) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	bar := newCopyProgressBar(info.Size(), quiet)
	if _, err := io.Copy(io.MultiWriter(dstFile, bar), srcFile); err != nil {
		dstFile.Close()
		return err
	}
	bar.Finish()

	if err := dstFile.Close(); err != nil {
		return err
	}
	// 目标文件原先存在时 OpenFile 不会修改权限
	return os.Chmod(dst, info.Mode().Perm())
}

func newCopyProgressBar(size int64, quiet bool) *progressbar.ProgressBar {
	if quiet {
		return progressbar.DefaultBytesSilent(size, "正在复制")
	}
	return progressbar.DefaultBytes(size, "正在复制")
}

// waitForKey 保持控制台窗口, 终端下按任意键, 否则读取一行
func waitForKey(in *bufio.Reader, tty *os.File, out io.Writer) {
	if tty != nil && term.IsTerminal(int(tty.Fd())) {
		fmt.Fprint(out, "按任意键退出...")
		if state, err := term.MakeRaw(int(tty.Fd())); err == nil {
			in.ReadByte()
			term.Restore(int(tty.Fd()), state)
			fmt.Fprintln(out)
			return
		}
	}

	fmt.Fprint(out, "按回车键退出...")
	in.ReadString('\n')
}
