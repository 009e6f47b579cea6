package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Diagnosing key handling inside the alternate screen is painful (stderr is
// invisible), so an append-only log file can be requested via
// LEADMAN_TUI_DEBUG_LOG. Off unless the user names a path.

func debugLogPath() string {
	return strings.TrimSpace(os.Getenv("LEADMAN_TUI_DEBUG_LOG"))
}

func debugLogf(format string, args ...any) {
	path := debugLogPath()
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s "+format+"\n", append([]any{time.Now().Format("15:04:05.000")}, args...)...)
}

func (m appModel) debugKeyMsg(k tea.KeyMsg) {
	if debugLogPath() == "" {
		return
	}
	debugLogf("key view=%d modal=%d str=%q type=%v runes=%q", int(m.view), int(m.modal), k.String(), k.Type, string(k.Runes))
}
