package services

import (
	"fmt"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

// ValidationResult contains the results of catalog consistency validation.
// Errors block a run. OrphanedMaterials are informational: the reorder
// manager synthesizes a fallback profile for them, but a planner usually
// wants to register them instead.
type ValidationResult struct {
	OrphanedMaterials []entities.MaterialCode
	Errors            []string
}

// ValidateCatalogConsistency cross-checks the formulation catalog against the
// material registry: duplicate identifiers and non-positive standard batch
// sizes are errors, ratio or packaging codes without a registry entry are
// reported as orphans.
func ValidateCatalogConsistency(
	formulations []*entities.Formulation,
	materials []*entities.Material,
) *ValidationResult {
	result := &ValidationResult{
		OrphanedMaterials: make([]entities.MaterialCode, 0),
		Errors:            make([]string, 0),
	}

	registered := make(map[entities.MaterialCode]bool, len(materials))
	for _, m := range materials {
		if registered[m.Code] {
			result.Errors = append(result.Errors,
				fmt.Sprintf("duplicate material code '%s' in registry", m.Code))
		}
		registered[m.Code] = true
	}

	seenForms := make(map[entities.FormulationID]bool, len(formulations))
	seenOrphans := make(map[entities.MaterialCode]bool)

	for _, f := range formulations {
		if seenForms[f.ID] {
			result.Errors = append(result.Errors,
				fmt.Sprintf("duplicate formulation id '%s' in catalog", f.ID))
		}
		seenForms[f.ID] = true

		if !f.StandardBatchSize.IsPositive() {
			result.Errors = append(result.Errors,
				fmt.Sprintf("formulation '%s' has non-positive standard batch size %s",
					f.ID, f.StandardBatchSize))
		}

		for _, line := range f.Ratios {
			if !registered[line.MaterialCode] && !seenOrphans[line.MaterialCode] {
				seenOrphans[line.MaterialCode] = true
				result.OrphanedMaterials = append(result.OrphanedMaterials, line.MaterialCode)
			}
		}
		if f.HasPackaging() && !registered[f.PackagingCode] && !seenOrphans[f.PackagingCode] {
			seenOrphans[f.PackagingCode] = true
			result.OrphanedMaterials = append(result.OrphanedMaterials, f.PackagingCode)
		}
	}

	return result
}
