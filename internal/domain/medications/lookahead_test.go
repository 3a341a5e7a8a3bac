package medications

import (
	"testing"
)

func boundedSchedule() Schedule {
	end := "2025-03-12"
	return Schedule{
		ID:    "sched-1",
		PetID: "pet-1",
		Drug:  "온시오르",
		Dose:  "6",
		Unit:  "mg",
		Times: []string{"08:00", "20:00"},
		Start: "2025-03-10",
		End:   &end,
	}
}

func TestExpandOccurrences_BoundedSchedule_InclusiveEdges(t *testing.T) {
	scheds := []Schedule{boundedSchedule()}

	// ventana de 5 días, la pauta cubre solo los 3 primeros (bordes inclusive)
	occs := ExpandOccurrences(scheds, "pet-1", "2025-03-10", 5)
	if len(occs) != 6 {
		t.Fatalf("expected 6 occurrences (3 días x 2 tomas), got %d", len(occs))
	}

	first, last := occs[0], occs[len(occs)-1]
	if first.Date != "2025-03-10" || first.Time != "08:00" {
		t.Fatalf("first occurrence = %+v, want 2025-03-10 08:00", first)
	}
	if last.Date != "2025-03-12" || last.Time != "20:00" {
		t.Fatalf("last occurrence = %+v, want 2025-03-12 20:00", last)
	}
	if first.DoseLabel != "6mg" {
		t.Fatalf("dose label = %q, want 6mg", first.DoseLabel)
	}
}

func TestExpandOccurrences_SortedByDateThenTime(t *testing.T) {
	occs := ExpandOccurrences([]Schedule{boundedSchedule()}, "pet-1", "2025-03-10", 3)

	for i := 1; i < len(occs); i++ {
		prev, cur := occs[i-1], occs[i]
		if cur.Date < prev.Date || (cur.Date == prev.Date && cur.Time < prev.Time) {
			t.Fatalf("occurrences out of order at %d: %+v after %+v", i, cur, prev)
		}
	}
}

func TestExpandOccurrences_WindowAfterEnd(t *testing.T) {
	occs := ExpandOccurrences([]Schedule{boundedSchedule()}, "pet-1", "2025-03-20", 5)
	if len(occs) != 0 {
		t.Fatalf("expected no occurrences past end, got %d", len(occs))
	}
}

func TestExpandOccurrences_OpenEndedSchedule(t *testing.T) {
	s := boundedSchedule()
	s.End = nil

	occs := ExpandOccurrences([]Schedule{s}, "pet-1", "2025-06-01", 7)
	if len(occs) != 14 {
		t.Fatalf("open-ended schedule: expected 14 occurrences, got %d", len(occs))
	}
}

func TestExpandOccurrences_FiltersOtherPets(t *testing.T) {
	other := boundedSchedule()
	other.ID = "sched-2"
	other.PetID = "pet-2"

	occs := ExpandOccurrences([]Schedule{boundedSchedule(), other}, "pet-1", "2025-03-10", 3)
	for _, o := range occs {
		if o.Drug != "온시오르" {
			t.Fatalf("unexpected drug %q", o.Drug)
		}
	}
	if len(occs) != 6 {
		t.Fatalf("expected 6 occurrences for pet-1 only, got %d", len(occs))
	}
}

func TestExpandOccurrences_NonPositiveDays(t *testing.T) {
	if occs := ExpandOccurrences([]Schedule{boundedSchedule()}, "pet-1", "2025-03-10", 0); len(occs) != 0 {
		t.Fatalf("days=0: expected empty, got %d", len(occs))
	}
	if occs := ExpandOccurrences(nil, "pet-1", "2025-03-10", 7); len(occs) != 0 {
		t.Fatalf("no schedules: expected empty, got %d", len(occs))
	}
}
