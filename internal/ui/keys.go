package ui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeyMap defines keybindings available in all views.
type GlobalKeyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Back      key.Binding
	ForceQuit key.Binding
}

var GlobalKeys = GlobalKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle this help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "go back"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "force quit"),
	),
}

// FilmsKeyMap defines keybindings for the films view.
type FilmsKeyMap struct {
	Focus    key.Binding
	Next     key.Binding
	Previous key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Open     key.Binding
}

var FilmsKeys = FilmsKeyMap{
	Focus: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search titles"),
	),
	Next: key.NewBinding(
		key.WithKeys("n", "right", "l"),
		key.WithHelp("n/→", "next page"),
	),
	Previous: key.NewBinding(
		key.WithKeys("p", "left", "h"),
		key.WithHelp("p/←", "previous page"),
	),
	Grow: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "larger pages"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "smaller pages"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "film details"),
	),
}

// DetailKeyMap defines keybindings for the film detail view.
type DetailKeyMap struct {
	Scroll key.Binding
}

var DetailKeys = DetailKeyMap{
	Scroll: key.NewBinding(
		key.WithKeys("j", "k", "up", "down"),
		key.WithHelp("j/k", "scroll"),
	),
}
