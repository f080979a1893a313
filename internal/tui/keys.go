package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	forceQuit key.Binding
	refresh   key.Binding
	copy      key.Binding
	submit    key.Binding
	next      key.Binding
	prev      key.Binding
	buildInfo key.Binding
	back      key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	submit:    key.NewBinding(key.WithKeys("enter")),
	next:      key.NewBinding(key.WithKeys("tab", "down")),
	prev:      key.NewBinding(key.WithKeys("shift+tab", "up")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	back:      key.NewBinding(key.WithKeys("esc")),
}
