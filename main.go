package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var version string
	if debugInfo, ok := debug.ReadBuildInfo(); ok {
		version = debugInfo.Main.Version
	}

	rootCmd := &cobra.Command{
		Use:     "safebackup",
		Short:   "单文件备份、还原和删除工具",
		Version: version,
		Args:    cobra.NoArgs,
		RunE:    runInteractive,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "配置文件路径 (可选)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "不显示进度条")
	rootCmd.PersistentFlags().Bool("no-pause", false, "退出前不等待按键")

	rootCmd.AddCommand(newBackupCmd(), newRestoreCmd(), newDeleteCmd(), newLogCmd())

	return rootCmd
}

// runInteractive 运行交互式 shell, 由这里决定暂停和返回的错误
func runInteractive(cmd *cobra.Command, args []string) error {
	// 错误统一在这里输出
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	in := bufio.NewReader(cmd.InOrStdin())

	// 配置读取失败时仍按命令行参数决定是否暂停
	noPause, _ := cmd.Flags().GetBool("no-pause")
	cfg, err := configFromFlags(cmd)
	if err == nil {
		noPause = cfg.NoPause
		err = startShell(cmd, cfg, in)
	}

	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "错误:", err)
	}
	if !noPause {
		tty, _ := cmd.InOrStdin().(*os.File)
		waitForKey(in, tty, cmd.OutOrStdout())
	}
	return err
}

func startShell(cmd *cobra.Command, cfg *Config, in *bufio.Reader) error {
	ws, err := newWorkspace(cfg)
	if err != nil {
		return err
	}
	sh := &shell{ws: ws, in: in, out: cmd.OutOrStdout()}
	return sh.run()
}

// runOperation 非交互地执行单个操作
func runOperation(cmd *cobra.Command, op operation, filename string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	ws, err := newWorkspace(cfg)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true
	if err := ws.checkFilename(filename); err != nil {
		return err
	}

	msg, err := ws.apply(op, filename)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
