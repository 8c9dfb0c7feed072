package cli

import "github.com/charmbracelet/bubbles/key"

type dashboardKeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Edit          key.Binding
	Rename        key.Binding
	AddPhase      key.Binding
	AddTask       key.Binding
	Delete        key.Binding
	MoveUp        key.Binding
	MoveDown      key.Binding
	CycleStatus   key.Binding
	CyclePriority key.Binding
	Export        key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "arriba")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "abajo")),
		Edit:          key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "editar")),
		Rename:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "renombrar")),
		AddPhase:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nueva fase")),
		AddTask:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "agregar tarea")),
		Delete:        key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "eliminar")),
		MoveUp:        key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "subir fase")),
		MoveDown:      key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "bajar fase")),
		CycleStatus:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "estado")),
		CyclePriority: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prioridad")),
		Export:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "exportar JSON")),
	}
}

// ShortHelp lists the bindings in status-bar order. Disabled bindings are
// skipped when rendering.
func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Edit, k.Rename, k.AddPhase, k.AddTask, k.Delete,
		k.MoveUp, k.MoveDown, k.CycleStatus, k.CyclePriority, k.Export,
	}
}
