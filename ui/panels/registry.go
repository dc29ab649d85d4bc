package panels

import (
	"optics-bench/internal/app"

	"fyne.io/fyne/v2"
)

// Panel is a side panel section selectable from the tab bar.
type Panel interface {
	Title() string
	Container() fyne.CanvasObject
}

// Factory builds a panel bound to the application state.
type Factory func(state *app.State) Panel

var (
	factories = map[string]Factory{}
	order     []string
)

// RegisterPanel registers a panel factory under a name. Re-registering a
// name replaces the factory without changing tab order.
func RegisterPanel(name string, f Factory) {
	if _, ok := factories[name]; !ok {
		order = append(order, name)
	}
	factories[name] = f
}

// ListPanels returns the registered panel names in registration order.
func ListPanels() []string {
	names := make([]string, len(order))
	copy(names, order)
	return names
}

// NewPanel builds the named panel, or returns nil if it is not registered.
func NewPanel(name string, state *app.State) Panel {
	f := factories[name]
	if f == nil {
		return nil
	}
	return f(state)
}

func init() {
	RegisterPanel("Bench", func(s *app.State) Panel { return NewBenchPanel(s) })
	RegisterPanel("HMD", func(s *app.State) Panel { return NewHMDPanel(s) })
	RegisterPanel("Distortion", func(s *app.State) Panel { return NewDistortionPanel() })
}
