package panels

import (
	"optics-bench/internal/app"
	"optics-bench/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel hosts the registered panels in a tab bar.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	benchPanel *BenchPanel
	hmdPanel   *HMDPanel
}

// NewSidePanel builds one tab per registered panel, in registration order.
// The last selected tab is restored from and saved to the preferences.
func NewSidePanel(state *app.State, p *prefs.Prefs) *SidePanel {
	sp := &SidePanel{state: state}

	items := make([]*container.TabItem, 0, len(ListPanels()))
	for _, name := range ListPanels() {
		panel := NewPanel(name, state)
		if panel == nil {
			continue
		}
		// The bench and HMD panels need extra wiring (frame readouts,
		// dialog parent); keep typed references to them.
		switch v := panel.(type) {
		case *BenchPanel:
			sp.benchPanel = v
		case *HMDPanel:
			sp.hmdPanel = v
		}
		items = append(items, container.NewTabItem(panel.Title(), panel.Container()))
	}
	sp.container = container.NewAppTabs(items...)

	if last := p.String(prefs.KeyLastPanel, ""); last != "" {
		for _, item := range sp.container.Items {
			if item.Text == last {
				sp.container.Select(item)
				break
			}
		}
	}
	sp.container.OnSelected = func(item *container.TabItem) {
		p.SetString(prefs.KeyLastPanel, item.Text)
		state.Emit(app.EventPanelChanged, item.Text)
	}

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// Bench returns the bench panel, for frame readout wiring.
func (sp *SidePanel) Bench() *BenchPanel {
	return sp.benchPanel
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.hmdPanel.SetWindow(w)
}
