package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Tab     key.Binding
	Enter   key.Binding
	Add     key.Binding
	Delete  key.Binding
	Edit    key.Binding
	Save    key.Binding
	Sort    key.Binding
	Export  key.Binding
	History key.Binding
	MapView key.Binding
	Home    key.Binding
	Login   key.Binding
	Signup  key.Binding
	Logout  key.Binding
	Quit    key.Binding
	Escape  key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add row")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete row")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit cell")),
	Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Sort:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort by date")),
	Export:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export xlsx")),
	History: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "history")),
	MapView: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "map")),
	Home:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back to upload")),
	Login:   key.NewBinding(key.WithKeys("l", "enter"), key.WithHelp("l", "login")),
	Signup:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sign up")),
	Logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
