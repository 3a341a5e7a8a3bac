package nutrition

import "testing"

func TestFoodGrams_Dog(t *testing.T) {
	// 10 kg: kcal = 10*30+70 = 370, gramos = round(370/3.5) = 106, snack = 11
	grams, snack := FoodGrams("dog", 10)
	if grams != 106 {
		t.Fatalf("expected 106 grams, got %d", grams)
	}
	if snack != 11 {
		t.Fatalf("expected snack limit 11, got %d", snack)
	}
}

func TestFoodGrams_Cat(t *testing.T) {
	// 4 kg: kcal = 240, gramos = round(240/3.5) = 69, snack = round(6.9) = 7
	grams, snack := FoodGrams("cat", 4)
	if grams != 69 {
		t.Fatalf("expected 69 grams, got %d", grams)
	}
	if snack != 7 {
		t.Fatalf("expected snack limit 7, got %d", snack)
	}
}

func TestFoodGrams_DogSynonyms(t *testing.T) {
	for _, sp := range []string{"dog", "Dog", "DOG", "개", "강아지", " dog "} {
		grams, _ := FoodGrams(sp, 10)
		if grams != 106 {
			t.Fatalf("species %q: expected dog formula (106), got %d", sp, grams)
		}
	}
	// cualquier otra especie usa la fórmula general
	grams, _ := FoodGrams("고양이", 10)
	if grams != 171 { // round(600/3.5)
		t.Fatalf("expected 171 grams for non-dog, got %d", grams)
	}
}

func TestFoodGrams_NonPositiveWeight(t *testing.T) {
	for _, w := range []float64{0, -1, -0.5} {
		grams, snack := FoodGrams("dog", w)
		if grams != 0 || snack != 0 {
			t.Fatalf("weight %v: expected (0,0), got (%d,%d)", w, grams, snack)
		}
	}
}

func TestWaterMl(t *testing.T) {
	if got := WaterMl(5); got != 300 {
		t.Fatalf("expected 300 ml, got %d", got)
	}
	if got := WaterMl(0); got != 0 {
		t.Fatalf("expected 0 ml for zero weight, got %d", got)
	}
	if got := WaterMl(-3); got != 0 {
		t.Fatalf("expected 0 ml for negative weight, got %d", got)
	}
	if got := WaterMl(4.51); got != 271 { // round(270.6)
		t.Fatalf("expected 271 ml, got %d", got)
	}
}

func TestAdherenceRatio(t *testing.T) {
	cases := []struct {
		actual, recommended, want float64
	}{
		{150, 100, 1.0}, // clamp
		{50, 100, 0.5},
		{50, 0, 0}, // nunca divide por cero
		{0, 100, 0},
		{100, 100, 1.0},
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := AdherenceRatio(c.actual, c.recommended); got != c.want {
			t.Fatalf("AdherenceRatio(%v, %v) = %v, want %v", c.actual, c.recommended, got, c.want)
		}
	}
}
