package dosing

import "strings"

// Medication es la clave de medicamento que usa el formulario de intake.
// @Enum flea, capstar, panacur, ponazuril, drontal
type Medication string

const (
	MedicationFlea      Medication = "flea"
	MedicationCapstar   Medication = "capstar"
	MedicationPanacur   Medication = "panacur"
	MedicationPonazuril Medication = "ponazuril"
	MedicationDrontal   Medication = "drontal"
)

// Medications devuelve las claves en el orden canónico de las tablas impresas.
func Medications() []Medication {
	return []Medication{
		MedicationFlea,
		MedicationCapstar,
		MedicationPanacur,
		MedicationPonazuril,
		MedicationDrontal,
	}
}

func ParseMedication(s string) (Medication, bool) {
	m := Medication(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MedicationFlea, MedicationCapstar, MedicationPanacur, MedicationPonazuril, MedicationDrontal:
		return m, true
	default:
		return "", false
	}
}

// MultiDay indica si el medicamento se administra por varios días (regimen).
func (m Medication) MultiDay() bool {
	return m == MedicationPanacur || m == MedicationPonazuril
}

// Product es el producto físico que se entrega al foster.
// Para flea depende del tópico elegido.
type Product string

const (
	ProductRevolution  Product = "revolution"
	ProductAdvantageII Product = "advantage_ii"
	ProductCapstar     Product = "capstar"
	ProductPanacur     Product = "panacur"
	ProductPonazuril   Product = "ponazuril"
	ProductDrontal     Product = "drontal"
)

// DisplayName es el nombre que aparece en el checklist impreso.
func (p Product) DisplayName() string {
	switch p {
	case ProductRevolution:
		return "Revolution"
	case ProductAdvantageII:
		return "Advantage II"
	case ProductCapstar:
		return "Capstar"
	case ProductPanacur:
		return "Panacur"
	case ProductPonazuril:
		return "Ponazuril"
	case ProductDrontal:
		return "Drontal"
	default:
		return string(p)
	}
}

// Topical es el antipulgas tópico seleccionado (mutuamente excluyentes).
// @Enum revolution, advantage, none
type Topical string

const (
	TopicalRevolution Topical = "revolution"
	TopicalAdvantage  Topical = "advantage"
	TopicalNone       Topical = "none"
)

// ParseTopical acepta vacío como "none".
func ParseTopical(s string) (Topical, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "revolution":
		return TopicalRevolution, true
	case "advantage", "advantage_ii", "advantage ii":
		return TopicalAdvantage, true
	case "none", "":
		return TopicalNone, true
	default:
		return "", false
	}
}

// Product resuelve el producto físico del tópico. ok=false para none.
func (t Topical) Product() (Product, bool) {
	switch t {
	case TopicalRevolution:
		return ProductRevolution, true
	case TopicalAdvantage:
		return ProductAdvantageII, true
	default:
		return "", false
	}
}

// ProductFor resuelve el producto de una clave de medicamento.
func ProductFor(m Medication, topical Topical) (Product, bool) {
	switch m {
	case MedicationFlea:
		return topical.Product()
	case MedicationCapstar:
		return ProductCapstar, true
	case MedicationPanacur:
		return ProductPanacur, true
	case MedicationPonazuril:
		return ProductPonazuril, true
	case MedicationDrontal:
		return ProductDrontal, true
	default:
		return "", false
	}
}
