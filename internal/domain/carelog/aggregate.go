package carelog

// Agregación pura sobre snapshots de eventos. Ninguna función de este
// archivo hace I/O ni guarda estado entre llamadas.

// DailyTotal suma las cantidades de los eventos de la mascota cuya fecha
// coincide exactamente con la dada. Sin coincidencias devuelve 0.
func DailyTotal(events []Event, petID, date string) int {
	total := 0
	for _, e := range events {
		if e.PetID == petID && e.Date == date {
			total += e.Amount
		}
	}
	return total
}

// WindowedSeries agrupa los eventos de la mascota por fecha y produce una
// entrada por cada fecha de la ventana, en el orden dado. Fechas sin
// eventos quedan en 0: el largo del resultado siempre es len(window).
func WindowedSeries(events []Event, petID string, window []string) []DatedTotal {
	byDate := make(map[string]int, len(window))
	inWindow := make(map[string]struct{}, len(window))
	for _, d := range window {
		inWindow[d] = struct{}{}
	}

	for _, e := range events {
		if e.PetID != petID {
			continue
		}
		if _, ok := inWindow[e.Date]; !ok {
			continue
		}
		byDate[e.Date] += e.Amount
	}

	out := make([]DatedTotal, 0, len(window))
	for _, d := range window {
		out = append(out, DatedTotal{Date: d, Total: byDate[d]})
	}
	return out
}
