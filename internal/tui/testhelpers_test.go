package tui

import (
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chorin/internal/app"
	"github.com/thenoetrevino/chorin/internal/config"
)

// setupTestModel builds a model over the seeded store with a fixed greeting
// and an 80x24 terminal.
func setupTestModel(t *testing.T) Model {
	t.Helper()

	a := app.NewSeeded(app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	m := InitialModel(a, config.Default(), WithGreetingPicker(func(int) int { return 0 }))
	t.Cleanup(func() {
		m.Close()
		_ = a.Close()
	})

	return updateModel(m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// updateModel sends one message and unwraps the returned model
func updateModel(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// sendKeys sends each message in order
func sendKeys(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m = updateModel(m, msg)
	}
	return m
}

// cmdTimeout bounds each command run by drive; ticks and blinks are dropped
const cmdTimeout = 100 * time.Millisecond

// drive sends each message in order and keeps feeding the messages that
// returned commands produce back through Update, like the program loop does.
func drive(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()

	queue := append([]tea.Msg(nil), msgs...)
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatalf("message loop did not settle")
		}
		msg := queue[0]
		queue = queue[1:]

		updated, cmd := m.Update(msg)
		m = updated.(Model)
		queue = append(queue, runCmd(cmd)...)
	}
	return m
}

// runCmd runs cmd and flattens batch and sequence messages into their results
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(cmdTimeout):
		return nil
	}
	if msg == nil {
		return nil
	}

	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Slice && v.Type().Elem() == reflect.TypeOf(tea.Cmd(nil)) {
		var out []tea.Msg
		for i := range v.Len() {
			out = append(out, runCmd(v.Index(i).Interface().(tea.Cmd))...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyRune(r rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func keyCode(code rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}
