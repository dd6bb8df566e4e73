package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	requeue   key.Binding
	discard   key.Binding
	copyID    key.Binding
	buildInfo key.Binding
	refresh   key.Binding
	esc       key.Binding
	quit      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	requeue:   key.NewBinding(key.WithKeys("r")),
	discard:   key.NewBinding(key.WithKeys("d")),
	copyID:    key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	refresh:   key.NewBinding(key.WithKeys("s")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
