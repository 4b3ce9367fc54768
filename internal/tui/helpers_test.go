package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// runCmd executes cmd and returns its message, nil for a nil command.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	return cmd()
}

// findMsg runs cmd, unfolding batches, and returns the first message of
// type T.
func findMsg[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	msg, ok := searchMsg[T](cmd)
	require.True(t, ok, "no %T produced", *new(T))
	return msg
}

func searchMsg[T any](cmd tea.Cmd) (T, bool) {
	var zero T
	if cmd == nil {
		return zero, false
	}
	switch msg := cmd().(type) {
	case T:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if found, ok := searchMsg[T](c); ok {
				return found, true
			}
		}
	}
	return zero, false
}
