package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config 可选配置, 仅在指定 --config 时读取, 只影响界面行为
type Config struct {
	Quiet   bool `yaml:"quiet,omitempty"`
	NoPause bool `yaml:"no_pause,omitempty"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败 (%s): %w", path, err)
	}

	// 不认识的字段直接报错, 日志文件位置不可配置
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("解析YAML配置失败 (%s): %w", path, err)
	}
	return cfg, nil
}

// configFromFlags 读取配置文件, 命令行显式指定的参数优先
func configFromFlags(cmd *cobra.Command) (*Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("quiet"); f != nil && f.Changed {
		cfg.Quiet, _ = cmd.Flags().GetBool("quiet")
	}
	if f := cmd.Flags().Lookup("no-pause"); f != nil && f.Changed {
		cfg.NoPause, _ = cmd.Flags().GetBool("no-pause")
	}
	return cfg, nil
}

// newWorkspace 以当前工作目录为根创建 workspace
func newWorkspace(cfg *Config) (*workspace, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("获取当前目录失败: %w", err)
	}
	return newWorkspaceAt(base, cfg), nil
}

func newWorkspaceAt(base string, cfg *Config) *workspace {
	return &workspace{
		base:     base,
		activity: newFileActivityLog(filepath.Join(base, defaultActivityLogName)),
		quiet:    cfg.Quiet,
	}
}
