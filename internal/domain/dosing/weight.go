package dosing

// GramsPerPound es la constante fija de conversión usada en todo el cálculo.
const GramsPerPound = 453.59237

// GramsToPounds convierte el peso capturado en el formulario (gramos) a libras.
func GramsToPounds(grams float64) float64 {
	return grams / GramsPerPound
}

// PoundsToGrams es la inversa de GramsToPounds.
func PoundsToGrams(pounds float64) float64 {
	return pounds * GramsPerPound
}
