package dosing

import (
	"encoding/json"
	"math"
	"strconv"
)

type Unit string

const (
	UnitML     Unit = "mL"
	UnitTablet Unit = "tablet"
)

// Dose es una dosis numérica o el centinela OutOfRange, nunca ambos.
// El valor cero (Dose{}) no es una dosis válida.
type Dose struct {
	Amount     float64
	Unit       Unit
	Label      string
	outOfRange bool
}

// OutOfRange indica que no hay dosis segura conocida para el peso.
func OutOfRange() Dose {
	return Dose{outOfRange: true}
}

// ML construye una dosis en mililitros.
func ML(amount float64) Dose {
	return Dose{Amount: amount, Unit: UnitML, Label: formatML(amount)}
}

// Tablets construye una dosis en comprimidos con etiqueta fraccionaria
// (los comprimidos se parten físicamente).
func Tablets(count float64) Dose {
	return Dose{Amount: count, Unit: UnitTablet, Label: formatTablets(count)}
}

func (d Dose) IsOutOfRange() bool { return d.outOfRange }

// Valid es true solo para dosis numéricas positivas.
func (d Dose) Valid() bool { return !d.outOfRange && d.Amount > 0 }

func (d Dose) String() string {
	if d.outOfRange {
		return "out of range"
	}
	return d.Label
}

type doseJSON struct {
	Amount     float64 `json:"amount,omitempty"`
	Unit       Unit    `json:"unit,omitempty"`
	Label      string  `json:"label,omitempty"`
	OutOfRange bool    `json:"out_of_range,omitempty"`
}

func (d Dose) MarshalJSON() ([]byte, error) {
	if d.outOfRange {
		return json.Marshal(doseJSON{OutOfRange: true})
	}
	return json.Marshal(doseJSON{Amount: d.Amount, Unit: d.Unit, Label: d.Label})
}

func (d *Dose) UnmarshalJSON(b []byte) error {
	var raw doseJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.OutOfRange {
		*d = OutOfRange()
		return nil
	}
	switch raw.Unit {
	case UnitTablet:
		*d = Tablets(raw.Amount)
	default:
		*d = ML(raw.Amount)
	}
	return nil
}

func formatML(amount float64) string {
	return strconv.FormatFloat(round2(amount), 'f', -1, 64) + " mL"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var tabletFractions = map[float64]string{
	0:    "",
	0.25: "¼",
	0.5:  "½",
	0.75: "¾",
}

func formatTablets(count float64) string {
	whole := math.Floor(count)
	frac, ok := tabletFractions[count-whole]
	if !ok {
		return strconv.FormatFloat(count, 'f', -1, 64) + " tablets"
	}

	label := frac
	if whole > 0 {
		label = strconv.FormatFloat(whole, 'f', 0, 64) + frac
	}
	if count == 1 || count < 1 {
		return label + " tablet"
	}
	return label + " tablets"
}
