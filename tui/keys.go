package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// keyMap holds the bindings the model reacts to. Anything else goes to
// the text input.
type keyMap struct {
	Quit     key.Binding
	Submit   key.Binding
	Prev     key.Binding
	Next     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		Prev:     key.NewBinding(key.WithKeys("up"), key.WithHelp("up", "previous command")),
		Next:     key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "next command")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "scroll down")),
	}
}

// helpLine describes the bindings for /help.
func (k keyMap) helpLine() string {
	line := "Keys:"
	for _, b := range []key.Binding{k.Submit, k.Prev, k.Next, k.PageUp, k.PageDown, k.Quit} {
		h := b.Help()
		line += " " + h.Key + " " + h.Desc + ","
	}
	return line[:len(line)-1]
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled; those
// keys browse the command history.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
