package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hacsa-board/hacsa-cli/internal/ui"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
)

// terminal implements ui.Navigator and ui.Notifier over stdin/stdout.
type terminal struct {
	in         *bufio.Reader
	view       ui.View
	onNavigate func(view ui.View, postID int64)
}

func newTerminal() *terminal {
	return &terminal{
		in:   bufio.NewReader(os.Stdin),
		view: ui.ViewHome,
	}
}

func (t *terminal) Current() ui.View {
	return t.view
}

func (t *terminal) ToLogin() {
	t.navigate(ui.ViewLogin, 0)
}

func (t *terminal) ToBoard() {
	t.navigate(ui.ViewBoard, 0)
}

func (t *terminal) ToPost(id int64) {
	t.navigate(ui.ViewPostDetail, id)
}

func (t *terminal) navigate(view ui.View, postID int64) {
	t.view = view
	if t.onNavigate != nil {
		t.onNavigate(view, postID)
	}
}

func (t *terminal) Notify(msg string) {
	fmt.Println(noticeStyle.Render("! " + msg))
}

func (t *terminal) Confirm(msg string) bool {
	fmt.Print(errorStyle.Render(msg) + " (y/n) ")
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// readLine prompts and returns one trimmed input line.
func (t *terminal) readLine(prompt string) string {
	fmt.Print(promptStyle.Render(prompt + " "))
	line, err := t.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// readMultiline reads lines until a lone "." terminator.
func (t *terminal) readMultiline(prompt string) string {
	fmt.Println(promptStyle.Render(prompt) + mutedStyle.Render(" (끝내려면 한 줄에 . 입력)"))
	var lines []string
	for {
		line, err := t.in.ReadString('\n')
		if err != nil {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "." {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
