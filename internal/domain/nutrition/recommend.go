// Package nutrition calcula raciones diarias recomendadas de comida y agua
// a partir de especie y peso. Son heurísticas orientativas, no consejo
// veterinario.
package nutrition

import (
	"math"
	"strings"
)

// Sinónimos aceptados para "perro". El original acepta el término en
// coreano además del inglés; la comparación es case-insensitive.
var dogSynonyms = map[string]struct{}{
	"dog": {},
	"개":   {},
	"강아지": {},
}

// IsDog reporta si la especie cuenta como perro para el cálculo calórico.
func IsDog(species string) bool {
	_, ok := dogSynonyms[strings.ToLower(strings.TrimSpace(species))]
	return ok
}

// FoodGrams devuelve la ración diaria de comida en gramos y el tope de
// snacks (10% de la ración). Con peso <= 0 devuelve (0, 0).
//
// Perros: kcal = peso*30 + 70. Otras especies: kcal = peso*60.
// Conversión a gramos: kcal / 3.5.
func FoodGrams(species string, weightKg float64) (grams, snackLimit int) {
	if weightKg <= 0 {
		return 0, 0
	}

	var kcal float64
	if IsDog(species) {
		kcal = weightKg*30 + 70
	} else {
		kcal = weightKg * 60
	}

	grams = int(math.Round(kcal / 3.5))
	snackLimit = int(math.Round(float64(grams) * 0.1))
	if snackLimit < 0 {
		snackLimit = 0
	}
	return grams, snackLimit
}

// WaterMl devuelve la ración diaria de agua en mililitros (60 ml por kg).
// Con peso <= 0 devuelve 0.
func WaterMl(weightKg float64) int {
	if weightKg <= 0 {
		return 0
	}
	return int(math.Round(weightKg * 60))
}

// AdherenceRatio devuelve consumo real / recomendado, acotado a [0, 1].
// Con recomendación <= 0 devuelve 0 (nunca divide por cero).
func AdherenceRatio(actual, recommended float64) float64 {
	if recommended <= 0 {
		return 0
	}
	return math.Min(1.0, actual/recommended)
}
