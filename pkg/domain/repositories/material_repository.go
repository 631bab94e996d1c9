package repositories

import "github.com/mpd-industries/planner/pkg/domain/entities"

// MaterialRepository provides access to the material registry
type MaterialRepository interface {
	GetMaterial(code entities.MaterialCode) (*entities.Material, error)
	GetAllMaterials() ([]*entities.Material, error)
	LoadMaterials(materials []*entities.Material) error
}
