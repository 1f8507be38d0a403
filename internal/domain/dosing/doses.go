package dosing

// Doses agrupa la dosis de cada producto para un peso dado.
// Ambos tópicos se calculan siempre; el tópico elegido decide cuál se usa.
type Doses struct {
	WeightLb    float64 `json:"weight_lb"`
	Topical     Topical `json:"topical"`
	Panacur     Dose    `json:"panacur"`
	Ponazuril   Dose    `json:"ponazuril"`
	Drontal     Dose    `json:"drontal"`
	Revolution  Dose    `json:"revolution"`
	AdvantageII Dose    `json:"advantage"`
	Capstar     Dose    `json:"capstar"`
}

// Compute calcula todas las dosis para un peso en libras.
func Compute(weightLb float64, topical Topical) Doses {
	if topical == "" {
		topical = TopicalNone
	}
	return Doses{
		WeightLb:    weightLb,
		Topical:     topical,
		Panacur:     Panacur(weightLb),
		Ponazuril:   Ponazuril(weightLb),
		Drontal:     Drontal(weightLb),
		Revolution:  Revolution(weightLb),
		AdvantageII: AdvantageII(weightLb),
		Capstar:     Capstar(weightLb),
	}
}

// ComputeGrams es Compute a partir del peso en gramos.
func ComputeGrams(weightGrams float64, topical Topical) Doses {
	return Compute(GramsToPounds(weightGrams), topical)
}

// ForProduct devuelve la dosis de un producto.
func (d Doses) ForProduct(p Product) (Dose, bool) {
	switch p {
	case ProductRevolution:
		return d.Revolution, true
	case ProductAdvantageII:
		return d.AdvantageII, true
	case ProductCapstar:
		return d.Capstar, true
	case ProductPanacur:
		return d.Panacur, true
	case ProductPonazuril:
		return d.Ponazuril, true
	case ProductDrontal:
		return d.Drontal, true
	default:
		return Dose{}, false
	}
}

// For resuelve la dosis de una clave de medicamento según el tópico elegido.
// ok=false si el medicamento no aplica (flea sin tópico).
func (d Doses) For(m Medication) (Dose, Product, bool) {
	p, ok := ProductFor(m, d.Topical)
	if !ok {
		return Dose{}, "", false
	}
	dose, ok := d.ForProduct(p)
	return dose, p, ok
}
