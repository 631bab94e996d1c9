package memory

import (
	"fmt"

	"github.com/mpd-industries/planner/pkg/domain/entities"
	"github.com/mpd-industries/planner/pkg/domain/repositories"
)

// MaterialRepository provides in-memory material registry storage
type MaterialRepository struct {
	materials    []entities.Material
	materialsMap map[entities.MaterialCode]int
}

// NewMaterialRepository creates a new in-memory material repository
func NewMaterialRepository(expectedMaterials int) *MaterialRepository {
	return &MaterialRepository{
		materials:    make([]entities.Material, 0, expectedMaterials),
		materialsMap: make(map[entities.MaterialCode]int, expectedMaterials),
	}
}

// Verify interface compliance
var _ repositories.MaterialRepository = (*MaterialRepository)(nil)

// LoadMaterials loads materials into the repository
func (r *MaterialRepository) LoadMaterials(materials []*entities.Material) error {
	for _, material := range materials {
		r.AddMaterial(*material)
	}
	return nil
}

// AddMaterial adds a material to the repository. A material with the same
// code replaces the earlier entry.
func (r *MaterialRepository) AddMaterial(material entities.Material) {
	if index, exists := r.materialsMap[material.Code]; exists {
		r.materials[index] = material
		return
	}
	r.materialsMap[material.Code] = len(r.materials)
	r.materials = append(r.materials, material)
}

// GetMaterial returns registry data for a material code
func (r *MaterialRepository) GetMaterial(code entities.MaterialCode) (*entities.Material, error) {
	index, exists := r.materialsMap[code]
	if !exists {
		return nil, fmt.Errorf("material not found: %s", code)
	}
	return &r.materials[index], nil
}

// GetAllMaterials returns all materials
func (r *MaterialRepository) GetAllMaterials() ([]*entities.Material, error) {
	var materials []*entities.Material
	for i := range r.materials {
		materials = append(materials, &r.materials[i])
	}
	return materials, nil
}
