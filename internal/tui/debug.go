package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/timetable"
)

// DebugLogger logs keystrokes and timetable events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "horario-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	return initDebugLoggerAt(enabled, DebugLogPath)
}

func initDebugLoggerAt(enabled bool, logPath string) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

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
		debugLog.file = nil
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

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg, mode Mode) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"mode": modeString(mode),
	})
}

// LogLookup logs the outcome of a candidate lookup.
func LogLookup(coord timetable.Coordinate, count int, err error) {
	if !debugEnabled() {
		return
	}
	data := map[string]any{
		"block": coord.String(),
		"count": count,
	}
	if err != nil {
		data["error"] = err.Error()
	}
	debugLog.log("LOOKUP", data)
}

// LogPlacement logs a committed placement.
func LogPlacement(res timetable.PlacementResult) {
	if !debugEnabled() || res.Section == nil {
		return
	}
	blocks := make([]string, 0, len(res.Cells))
	for _, c := range res.Cells {
		blocks = append(blocks, c.String())
	}
	debugLog.log("PLACEMENT", map[string]any{
		"section_id": res.Section.ID,
		"name":       truncateStr(res.Section.ShortName(), 30),
		"color":      res.Color,
		"blocks":     blocks,
	})
}

// LogRejection logs a refused open or choose.
func LogRejection(action string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("REJECTION", map[string]any{
		"action": action,
		"error":  err.Error(),
	})
}

// LogReset logs a timetable reset.
func LogReset(sections int) {
	if !debugEnabled() {
		return
	}
	debugLog.log("RESET", map[string]any{
		"sections": sections,
	})
}

// LogProjection logs a sink notification applied to the display grid.
func LogProjection(kind string, cells int) {
	if !debugEnabled() {
		return
	}
	debugLog.log("PROJECTION", map[string]any{
		"kind":  kind,
		"cells": cells,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
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
	case ModePrompt:
		return "Prompt"
	case ModeModal:
		return "Modal"
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
