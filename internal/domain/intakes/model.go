package intakes

import (
	"time"

	"foster-intake/internal/domain/dosing"
	"foster-intake/internal/domain/schedule"
)

// Animal es un gatito dentro de un intake.
// Los tags json se usan para persistir la lista completa (JSONB en Postgres).
type Animal struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	WeightGrams float64        `json:"weight_grams"`
	Topical     dosing.Topical `json:"topical"`

	PanacurDays   int `json:"panacur_days"`
	PonazurilDays int `json:"ponazuril_days"`

	Status   map[dosing.Medication]schedule.Status `json:"status"`
	Ringworm schedule.Ringworm                     `json:"ringworm"`

	Notes string `json:"notes,omitempty"`
}

// WeightLb se deriva siempre de WeightGrams.
func (a Animal) WeightLb() float64 {
	return dosing.GramsToPounds(a.WeightGrams)
}

func (a Animal) toSchedule() schedule.Animal {
	status := make(map[dosing.Medication]schedule.Status, len(a.Status))
	for k, v := range a.Status {
		status[k] = v
	}
	return schedule.Animal{
		ID:            a.ID,
		Name:          a.Name,
		WeightGrams:   a.WeightGrams,
		Topical:       a.Topical,
		PanacurDays:   a.PanacurDays,
		PonazurilDays: a.PonazurilDays,
		Status:        status,
		Ringworm:      a.Ringworm,
	}
}

// Intake es el contenedor explícito de una sesión de intake (una camada o
// un grupo de gatitos que va al mismo foster).
type Intake struct {
	ID        string
	Label     string
	CreatedBy string

	Animals []Animal

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (in Intake) animalIndex(animalID string) int {
	for i, a := range in.Animals {
		if a.ID == animalID {
			return i
		}
	}
	return -1
}
