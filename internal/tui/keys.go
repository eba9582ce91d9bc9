package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	reveal  key.Binding
	newItem key.Binding
	delete  key.Binding
	copy    key.Binding
	lock    key.Binding
	info    key.Binding
	gen     key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("enter/esc", "закрыть")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q")),
	reveal:  key.NewBinding(key.WithKeys(" ")),
	newItem: key.NewBinding(key.WithKeys("a", "n")),
	delete:  key.NewBinding(key.WithKeys("ctrl+d", "d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	lock:    key.NewBinding(key.WithKeys("l")),
	info:    key.NewBinding(key.WithKeys("ctrl+v")),
	gen:     key.NewBinding(key.WithKeys("ctrl+g")),
	yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "да")),
	no:      key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "нет")),
}
