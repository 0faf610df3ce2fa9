package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "查看操作日志",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")

			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			ws, err := newWorkspace(cfg)
			if err != nil {
				return err
			}

			content, err := readActivityLog(filepath.Join(ws.base, defaultActivityLogName))
			if err != nil {
				return err
			}

			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			p := tea.NewProgram(
				newLogModel(defaultActivityLogName, content),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			if _, err := p.Run(); err != nil {
				cmd.SilenceUsage = true
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolP("raw", "r", false, "直接输出日志内容")
	return cmd
}

// readActivityLog 日志文件不存在时视为空
func readActivityLog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("读取日志文件失败 (%s): %w", path, err)
	}
	return string(data), nil
}

var (
	barStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	hintStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// logModel 只读的日志分页查看器
type logModel struct {
	title    string
	content  string
	entries  int
	ready    bool
	viewport viewport.Model
}

func newLogModel(title, content string) logModel {
	entries := strings.Count(content, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		entries++
	}
	if content == "" {
		content = "(暂无记录)"
	}
	return logModel{title: title, content: content, entries: entries}
}

func (m logModel) Init() tea.Cmd {
	return nil
}

func (m logModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if k := msg.String(); k == "ctrl+c" || k == "q" || k == "esc" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// 页眉和页脚各占一行
		height := max(1, msg.Height-2)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.YPosition = 1
			m.viewport.SetContent(m.content)
			// 最新的记录在末尾
			m.viewport.GotoBottom()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m logModel) View() string {
	if !m.ready {
		return "\n  加载中..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m logModel) headerView() string {
	return barStyle.Render(fmt.Sprintf("%s · %d 条记录", m.title, m.entries))
}

func (m logModel) footerView() string {
	hint := hintStyle.Render("↑/↓ 滚动  q 退出")
	percent := barStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	gap := strings.Repeat(" ", max(0, m.viewport.Width-lipgloss.Width(hint)-lipgloss.Width(percent)))
	return hint + gap + percent
}
