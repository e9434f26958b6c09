package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetrus/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func typedKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: t})
}

func TestMapKeyGameActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{typedKey(tea.KeyLeft), core.ActionMoveLeft},
		{runeKey('h'), core.ActionMoveLeft},
		{typedKey(tea.KeyRight), core.ActionMoveRight},
		{runeKey('l'), core.ActionMoveRight},
		{typedKey(tea.KeyUp), core.ActionRotateCW},
		{runeKey('x'), core.ActionRotateCW},
		{runeKey('w'), core.ActionRotateCW},
		{runeKey('z'), core.ActionRotateCCW},
		{runeKey('a'), core.ActionRotateCCW},
		{typedKey(tea.KeyDown), core.ActionSoftDrop},
		{runeKey('j'), core.ActionSoftDrop},
		{typedKey(tea.KeySpace), core.ActionHardDrop},
		{runeKey('c'), core.ActionHold},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('q'), core.ActionQuit},
		{typedKey(tea.KeyEsc), core.ActionQuit},
		{typedKey(tea.KeyCtrlC), core.ActionQuit},
		{runeKey('?'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{typedKey(tea.KeyUp), MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{typedKey(tea.KeyDown), MenuActionDown},
		{runeKey('s'), MenuActionDown},
		{typedKey(tea.KeyEnter), MenuActionSelect},
		{typedKey(tea.KeySpace), MenuActionSelect},
		{typedKey(tea.KeyEsc), MenuActionBack},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{typedKey(tea.KeyCtrlC), MenuActionQuit},
		{runeKey('?'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
