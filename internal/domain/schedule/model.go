package schedule

import (
	"strings"

	"foster-intake/internal/domain/dosing"
)

// Status es el estado de un medicamento en el formulario de intake.
// @Enum todo, delay, done, skip
type Status string

const (
	// StatusTodo: se debe al foster, empieza hoy.
	StatusTodo Status = "todo"
	// StatusDelay: se debe, el tópico antipulgas espera 2 días.
	StatusDelay Status = "delay"
	// StatusDone: administrado en el intake.
	StatusDone Status = "done"
	// StatusSkip: toggle deshabilitado, se excluye de todo.
	StatusSkip Status = "skip"
)

// ParseStatus acepta vacío como todo.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StatusTodo, true
	case StatusTodo, StatusDelay, StatusDone, StatusSkip:
		return st, true
	default:
		return "", false
	}
}

// Ringworm es informativo, no afecta dosis.
// @Enum not_scanned, positive, negative
type Ringworm string

const (
	RingwormNotScanned Ringworm = "not_scanned"
	RingwormPositive   Ringworm = "positive"
	RingwormNegative   Ringworm = "negative"
)

func ParseRingworm(s string) (Ringworm, bool) {
	switch r := Ringworm(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RingwormNotScanned, true
	case RingwormNotScanned, RingwormPositive, RingwormNegative:
		return r, true
	default:
		return "", false
	}
}

const (
	DefaultPanacurDays   = 3
	DefaultPonazurilDays = 3

	// Espera fija del tópico con estado delay.
	fleaDelayDays = 2
)

// Animal es el registro de un gatito tal como lo captura el formulario.
// El peso en libras siempre se deriva de WeightGrams.
type Animal struct {
	ID   string
	Name string

	WeightGrams float64
	Topical     dosing.Topical

	PanacurDays   int
	PonazurilDays int

	Status   map[dosing.Medication]Status
	Ringworm Ringworm
}

func (a Animal) WeightLb() float64 {
	return dosing.GramsToPounds(a.WeightGrams)
}

// StatusOf devuelve el estado del medicamento (todo si no se indicó).
func (a Animal) StatusOf(m dosing.Medication) Status {
	if st, ok := a.Status[m]; ok && st != "" {
		return st
	}
	return StatusTodo
}

// RegimenDays devuelve los días configurados para panacur/ponazuril
// y 1 para los medicamentos de dosis única.
func (a Animal) RegimenDays(m dosing.Medication) int {
	switch m {
	case dosing.MedicationPanacur:
		if a.PanacurDays > 0 {
			return a.PanacurDays
		}
		return DefaultPanacurDays
	case dosing.MedicationPonazuril:
		if a.PonazurilDays > 0 {
			return a.PonazurilDays
		}
		return DefaultPonazurilDays
	default:
		return 1
	}
}

// AnimalDoses es la entrada del Manager: el animal con sus dosis ya calculadas.
type AnimalDoses struct {
	Animal Animal
	Doses  dosing.Doses
}

// WithDoses calcula las dosis del animal con el DoseCalculator.
func WithDoses(a Animal) AnimalDoses {
	return AnimalDoses{
		Animal: a,
		Doses:  dosing.Compute(a.WeightLb(), a.Topical),
	}
}

// Entry es un medicamento programado para un animal.
type Entry struct {
	Medication dosing.Medication `json:"medication"`
	Product    dosing.Product    `json:"product"`
	Dose       dosing.Dose       `json:"dose"`
	Days       []string          `json:"days"`
}

type AnimalSchedule struct {
	AnimalID   string              `json:"animal_id"`
	Name       string              `json:"name"`
	WeightLb   float64             `json:"weight_lb"`
	Ringworm   Ringworm            `json:"ringworm,omitempty"`
	Entries    []Entry             `json:"entries"`
	OutOfRange []dosing.Medication `json:"out_of_range"`
}

// Entry busca el medicamento en el schedule del animal.
func (s AnimalSchedule) Entry(m dosing.Medication) (Entry, bool) {
	for _, e := range s.Entries {
		if e.Medication == m {
			return e, true
		}
	}
	return Entry{}, false
}

// Total es lo que queda por entregar al foster de un producto.
type Total struct {
	Medication dosing.Medication `json:"medication"`
	Product    dosing.Product    `json:"product"`
	Unit       dosing.Unit       `json:"unit"`
	Amount     float64           `json:"amount"`
	Doses      int               `json:"doses"`
}

// Exclusion marca una combinación animal/medicamento sin dosis segura.
// No se suma como cero: se reporta aparte.
type Exclusion struct {
	AnimalID   string            `json:"animal_id"`
	Name       string            `json:"name"`
	Medication dosing.Medication `json:"medication"`
	Product    dosing.Product    `json:"product"`
	WeightLb   float64           `json:"weight_lb"`
	Reason     string            `json:"reason"`
}

type Plan struct {
	GeneratedOn string           `json:"generated_on"`
	Schedules   []AnimalSchedule `json:"schedules"`
	AllDates    []string         `json:"all_dates"`
	Totals      []Total          `json:"totals"`
	Exclusions  []Exclusion      `json:"exclusions"`
}

// Total suma lo pendiente de un medicamento en todos los productos.
func (p Plan) Total(m dosing.Medication) float64 {
	var sum float64
	for _, t := range p.Totals {
		if t.Medication == m {
			sum += t.Amount
		}
	}
	return sum
}
