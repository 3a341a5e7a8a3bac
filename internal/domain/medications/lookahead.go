package medications

import (
	"sort"

	"petmate/internal/platform/clock"
)

// ExpandOccurrences expande las pautas de la mascota en la lista concreta
// de tomas para los próximos days días empezando en today (inclusive).
//
// Una pauta está activa un día si start <= día y (end ausente o
// día <= end), ambos bordes inclusive. Por cada día activo se emite una
// toma por horario. Función pura de sus inputs: re-ejecutable sin efectos.
//
// Orden de salida: fecha ascendente y, dentro del día, hora ascendente
// (el orden lexicográfico alcanza porque HH:MM es de ancho fijo).
func ExpandOccurrences(schedules []Schedule, petID, today string, days int) []Occurrence {
	out := make([]Occurrence, 0)
	if days <= 0 {
		return out
	}

	for i := 0; i < days; i++ {
		day := clock.AddDays(today, i)
		for _, s := range schedules {
			if s.PetID != petID {
				continue
			}
			if !activeOn(s, day) {
				continue
			}
			for _, t := range s.Times {
				out = append(out, Occurrence{
					Date:      day,
					Time:      t,
					Drug:      s.Drug,
					DoseLabel: s.Dose + s.Unit,
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})

	return out
}

func activeOn(s Schedule, day string) bool {
	if s.Start != "" && day < s.Start {
		return false
	}
	if s.End != nil && *s.End != "" && day > *s.End {
		return false
	}
	return true
}
