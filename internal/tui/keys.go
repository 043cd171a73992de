package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines keybindings for the wizard
type KeyMap struct {
	mode string
}

// NewKeyMap creates a new keymap for the given mode ("vim" or "standard")
func NewKeyMap(mode string) *KeyMap {
	if mode == "" {
		mode = "vim"
	}
	return &KeyMap{mode: mode}
}

// Mode returns the current keybinding mode
func (k *KeyMap) Mode() string {
	return k.mode
}

// IsUp returns true if the key is an "up" navigation key
func (k *KeyMap) IsUp(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyUp {
		return true
	}
	return k.mode == "vim" && msg.String() == "k"
}

// IsDown returns true if the key is a "down" navigation key
func (k *KeyMap) IsDown(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyDown {
		return true
	}
	return k.mode == "vim" && msg.String() == "j"
}

// IsNextTab returns true if the key moves to the next wizard tab
func (k *KeyMap) IsNextTab(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyTab {
		return true
	}
	return msg.String() == "]"
}

// IsPrevTab returns true if the key moves to the previous wizard tab
func (k *KeyMap) IsPrevTab(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyShiftTab {
		return true
	}
	return msg.String() == "["
}

// IsQuit returns true if the key quits the wizard
func (k *KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return msg.String() == "q" || msg.Type == tea.KeyCtrlC
}
