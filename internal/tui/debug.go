package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rocin/internal/todotxt"
)

// DebugLogger logs TUI state, keystrokes, and events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "rocin-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	// Create log file in current directory with fixed name (easy to find)
	logPath := DebugLogPath
	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": logPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"type": fmt.Sprintf("%T", msg.Type),
	})
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("MODE_CHANGE", map[string]any{
		"from":   modeString(from),
		"to":     modeString(to),
		"reason": reason,
	})
}

// LogCursorMove logs cursor movement.
func LogCursorMove(cursor, total int) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("CURSOR_MOVE", map[string]any{
		"cursor": cursor,
		"total":  total,
	})
}

// LogListState logs the current task list state.
func LogListState(list *todotxt.List, action string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	if list == nil {
		debugLog.log("LIST_STATE", map[string]any{
			"action": action,
			"status": "nil",
		})
		return
	}

	tasks := list.All()
	lines := make([]map[string]any, 0, len(tasks))
	done := 0
	for i, t := range tasks {
		if t.Done() {
			done++
		}
		lines = append(lines, map[string]any{
			"n":    i + 1,
			"line": truncateStr(t.Line(), 40),
			"done": t.Done(),
		})
	}

	debugLog.log("LIST_STATE", map[string]any{
		"action":  action,
		"total":   len(tasks),
		"pending": len(tasks) - done,
		"done":    done,
		"tasks":   lines,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// modeString returns a string representation of a Mode.
func modeString(m Mode) string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeInput:
		return "Input"
	case ModeFilter:
		return "Filter"
	case ModeConfirm:
		return "Confirm"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// truncateStr truncates a string to max length.
func truncateStr(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
