package tui

import "github.com/charmbracelet/bubbles/key"

// InspectorKeyMap defines the key bindings for the inspector.
type InspectorKeyMap struct {
	GearLess       key.Binding
	GearMore       key.Binding
	RackLess       key.Binding
	RackMore       key.Binding
	AngleLess      key.Binding
	AngleMore      key.Binding
	CorrectionLess key.Binding
	CorrectionMore key.Binding
	Epicyclic      key.Binding
	Scroll         key.Binding // Handled by the table; listed for help only
	Play           key.Binding
	Reset          key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k InspectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.GearMore, k.RackMore, k.AngleMore, k.CorrectionMore, k.Scroll, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k InspectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.GearLess, k.GearMore, k.RackLess, k.RackMore},
		{k.AngleLess, k.AngleMore, k.CorrectionLess, k.CorrectionMore},
		{k.Epicyclic, k.Play, k.Reset, k.Scroll, k.Help, k.Quit},
	}
}

// DefaultInspectorKeyMap returns default key bindings.
func DefaultInspectorKeyMap() InspectorKeyMap {
	return InspectorKeyMap{
		GearLess: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "fewer gear teeth"),
		),
		GearMore: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more gear teeth"),
		),
		RackLess: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer rack teeth"),
		),
		RackMore: key.NewBinding(
			key.WithKeys("=", "+"),
			key.WithHelp("=", "more rack teeth"),
		),
		AngleLess: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "turn orbit back"),
		),
		AngleMore: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "turn orbit on"),
		),
		CorrectionLess: key.NewBinding(
			key.WithKeys(",", "<"),
			key.WithHelp(",", "less correction"),
		),
		CorrectionMore: key.NewBinding(
			key.WithKeys(".", ">"),
			key.WithHelp(".", "more correction"),
		),
		Epicyclic: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle epicyclic"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓ pgup/pgdn", "scroll table"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play timeline"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
