package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	refresh key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
}

var keys = keyMap{
	refresh: key.NewBinding(key.WithKeys("r")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
