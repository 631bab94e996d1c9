package repositories

import "github.com/mpd-industries/planner/pkg/domain/entities"

// FormulationRepository provides access to the formulation catalog
type FormulationRepository interface {
	GetFormulation(id entities.FormulationID) (*entities.Formulation, error)
	GetAllFormulations() ([]*entities.Formulation, error)
	LoadFormulations(formulations []*entities.Formulation) error
}
