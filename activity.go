package main

import (
	"fmt"
	"log"
	"os"
	"time"
)

const defaultActivityLogName = "logfile.txt"

// activityLog 记录每一次完成或被拒绝的操作
type activityLog interface {
	record(message string)
}

type fileActivityLog struct {
	path string
	now  func() time.Time
}

func newFileActivityLog(path string) *fileActivityLog {
	return &fileActivityLog{path: path, now: time.Now}
}

// record 追加一行 "<unix秒> - <消息>", 写入失败只打印警告
func (l *fileActivityLog) record(message string) {
	if err := l.append(formatActivityLine(l.now(), message)); err != nil {
		log.Printf("警告: 写入日志文件失败 (%s): %v", l.path, err)
	}
}

func (l *fileActivityLog) append(line string) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatActivityLine(t time.Time, message string) string {
	return fmt.Sprintf("%d - %s\n", unixSeconds(t), message)
}

// unixSeconds 时钟早于纪元时返回 0
func unixSeconds(t time.Time) int64 {
	if s := t.Unix(); s > 0 {
		return s
	}
	return 0
}
