package memory

import (
	"fmt"

	"github.com/mpd-industries/planner/pkg/domain/entities"
	"github.com/mpd-industries/planner/pkg/domain/repositories"
)

// FormulationRepository provides in-memory formulation catalog storage
type FormulationRepository struct {
	formulations    []entities.Formulation
	formulationsMap map[entities.FormulationID]int
}

// NewFormulationRepository creates a new in-memory formulation repository
func NewFormulationRepository(expectedFormulations int) *FormulationRepository {
	return &FormulationRepository{
		formulations:    make([]entities.Formulation, 0, expectedFormulations),
		formulationsMap: make(map[entities.FormulationID]int, expectedFormulations),
	}
}

// Verify interface compliance
var _ repositories.FormulationRepository = (*FormulationRepository)(nil)

// LoadFormulations loads formulations into the repository
func (r *FormulationRepository) LoadFormulations(formulations []*entities.Formulation) error {
	for _, formulation := range formulations {
		r.AddFormulation(*formulation)
	}
	return nil
}

// AddFormulation adds a formulation to the repository. A formulation with the
// same ID replaces the earlier entry.
func (r *FormulationRepository) AddFormulation(formulation entities.Formulation) {
	if index, exists := r.formulationsMap[formulation.ID]; exists {
		r.formulations[index] = formulation
		return
	}
	r.formulationsMap[formulation.ID] = len(r.formulations)
	r.formulations = append(r.formulations, formulation)
}

// GetFormulation returns catalog data for a formulation ID
func (r *FormulationRepository) GetFormulation(id entities.FormulationID) (*entities.Formulation, error) {
	index, exists := r.formulationsMap[id]
	if !exists {
		return nil, fmt.Errorf("formulation not found: %s", id)
	}
	return &r.formulations[index], nil
}

// GetAllFormulations returns all formulations
func (r *FormulationRepository) GetAllFormulations() ([]*entities.Formulation, error) {
	var formulations []*entities.Formulation
	for i := range r.formulations {
		formulations = append(formulations, &r.formulations[i])
	}
	return formulations, nil
}
