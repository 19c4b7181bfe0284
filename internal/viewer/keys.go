package viewer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Border  key.Binding
	Axes    key.Binding
	Scatter key.Binding
	Glyphs  key.Binding
	Legend  key.Binding
	Stats   key.Binding
	Sidebar key.Binding
	Open    key.Binding
	Paste   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Border:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "border")),
		Axes:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "axes")),
		Scatter: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scatter")),
		Glyphs:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "glyphs")),
		Legend:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "legend")),
		Stats:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "stats")),
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "files")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Paste:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Help:    key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Border, k.Axes, k.Scatter, k.Stats, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Border, k.Axes, k.Scatter, k.Glyphs, k.Legend},
		{k.Stats, k.Sidebar, k.Open, k.Paste},
		{k.Help, k.Quit},
	}
}
