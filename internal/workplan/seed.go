package workplan

import "github.com/alexanderramin/workplan/internal/domain"

// Seed returns the capital-optimization plan the dashboard opens with. Each
// call builds fresh phases.
func Seed() Plan {
	return NewPlan(
		&domain.Phase{
			ID:       "1",
			Name:     "Discovery & Assessment",
			Timeline: "Semana 1-2",
			Budget:   "€15,000",
			Status:   domain.PhaseInProgress,
			Tasks: []*domain.Task{
				{ID: "1-1", Title: "Entrevistas con stakeholders clave", Duration: "3 días", Owner: "Equipo Senior", Priority: domain.PriorityHigh},
				{ID: "1-2", Title: "Análisis de estructura de capital actual", Duration: "4 días", Owner: "Analista", Priority: domain.PriorityHigh},
			},
		},
		&domain.Phase{
			ID:       "2",
			Name:     "Analysis & Modeling",
			Timeline: "Semana 3-6",
			Budget:   "€25,000",
			Status:   domain.PhasePending,
			Tasks: []*domain.Task{
				{ID: "2-1", Title: "Modelado de escenarios de optimización", Duration: "2 semanas", Owner: "Equipo de Modelos", Priority: domain.PriorityHigh},
				{ID: "2-2", Title: "Comparativa con benchmarks internacionales", Duration: "1 semana", Owner: "Investigación", Priority: domain.PriorityMedium},
			},
		},
		&domain.Phase{
			ID:       "3",
			Name:     "Implementation Planning",
			Timeline: "Semana 7-10",
			Budget:   "€20,000",
			Status:   domain.PhasePending,
			Tasks: []*domain.Task{
				{ID: "3-1", Title: "Roadmap de implementación", Duration: "1 semana", Owner: "Project Manager", Priority: domain.PriorityHigh},
			},
		},
		&domain.Phase{
			ID:       "4",
			Name:     "Execution & Monitoring",
			Timeline: "Semana 11-16",
			Budget:   "€30,000",
			Status:   domain.PhasePending,
			Tasks: []*domain.Task{
				{ID: "4-1", Title: "Ejecución de medidas", Duration: "6 semanas", Owner: "Equipo Operativo", Priority: domain.PriorityHigh},
			},
		},
	)
}
