package dosing

// Todas las funciones reciben el peso en libras (positivo y finito).
// Validar el peso es responsabilidad del llamador.

const (
	panacurMLPerLb   = 0.2
	ponazurilMLPerLb = 0.23
)

// bracket es un tramo [min, max) de una tabla de dosis por peso.
// Si inclusiveMax es true el tramo es [min, max].
type bracket struct {
	min, max     float64
	inclusiveMax bool
	amount       float64
}

func (b bracket) contains(lb float64) bool {
	if lb < b.min {
		return false
	}
	if b.inclusiveMax {
		return lb <= b.max
	}
	return lb < b.max
}

func lookup(table []bracket, lb float64) (float64, bool) {
	for _, b := range table {
		if b.contains(lb) {
			return b.amount, true
		}
	}
	return 0, false
}

var revolutionTable = []bracket{
	{min: 1.1, max: 2.2, amount: 0.05},
	{min: 2.2, max: 4.4, amount: 0.1},
	{min: 4.4, max: 9, amount: 0.2},
	{min: 9, max: 19.9, inclusiveMax: true, amount: 0.45},
}

// Advantage II no tiene límite superior: el último tramo es abierto.
var advantageTable = []bracket{
	{min: 0, max: 1, amount: 0.05},
	{min: 1, max: 5, amount: 0.1},
	{min: 5, max: 9, amount: 0.2},
}

const advantageTopAmount = 0.45

// En comprimidos.
var drontalTable = []bracket{
	{min: 1.5, max: 2, amount: 0.25},
	{min: 2, max: 4, amount: 0.5},
	{min: 4, max: 9, amount: 1},
	{min: 9, max: 13, amount: 1.5},
	{min: 13, max: 16, inclusiveMax: true, amount: 2},
}

// Panacur (fenbendazol) mL por día.
func Panacur(lb float64) Dose {
	return ML(lb * panacurMLPerLb)
}

// Ponazuril mL por día.
func Ponazuril(lb float64) Dose {
	return ML(lb * ponazurilMLPerLb)
}

// Revolution devuelve OutOfRange fuera de [1.1, 19.9] lb.
func Revolution(lb float64) Dose {
	amount, ok := lookup(revolutionTable, lb)
	if !ok {
		return OutOfRange()
	}
	return ML(amount)
}

// AdvantageII siempre devuelve dosis numérica para peso no negativo.
func AdvantageII(lb float64) Dose {
	if amount, ok := lookup(advantageTable, lb); ok {
		return ML(amount)
	}
	if lb >= 9 {
		return ML(advantageTopAmount)
	}
	return OutOfRange()
}

// Drontal devuelve OutOfRange fuera de [1.5, 16] lb.
func Drontal(lb float64) Dose {
	count, ok := lookup(drontalTable, lb)
	if !ok {
		return OutOfRange()
	}
	return Tablets(count)
}

// Capstar es dosis única fija, sin tramos por peso.
func Capstar(float64) Dose {
	return Tablets(1)
}
