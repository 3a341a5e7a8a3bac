package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_NormalizesNegativeWeight(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:     "  Mochi ",
		Species:  "개",
		WeightKg: -3,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Name != "Mochi" {
		t.Fatalf("name = %q, want trimmed Mochi", p.Name)
	}
	if p.WeightKg != 0 {
		t.Fatalf("weight = %v, want 0 (normalizado)", p.WeightKg)
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt = now")
	}
}

func TestService_Create_RequiresNameAndSpecies(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "owner-1", CreateInput{Species: "dog"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Mochi"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without species, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "", CreateInput{Name: "Mochi", Species: "dog"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without owner, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name: "Mochi", Species: "dog", BirthDate: strPtr("10/03/2020"),
	}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad birth date, got %v", err)
	}
}

func TestService_Update_OwnerMismatchLooksLikeMissing(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Mochi", Species: "dog"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// otro usuario recibe not found, no forbidden: no filtramos existencia
	if _, err := svc.Update(context.Background(), p.ID, "owner-2", UpdateInput{
		Name: strPtr("Hacked"),
	}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestService_Update_PartialPatch(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:      "Mochi",
		Species:   "dog",
		Breed:     "mixed",
		BirthDate: strPtr("2020-05-01"),
		WeightKg:  10,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.Update(context.Background(), p.ID, "owner-1", UpdateInput{
		Notes: strPtr("화식 전환 중"),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Mochi" || got.Breed != "mixed" || got.WeightKg != 10 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if got.Notes != "화식 전환 중" {
		t.Fatalf("notes = %q", got.Notes)
	}
	if got.BirthDate == nil || *got.BirthDate != "2020-05-01" {
		t.Fatalf("birth date must survive partial patch, got %v", got.BirthDate)
	}
}

func TestService_Update_BirthDateNullClears(t *testing.T) {
	svc := NewService(newTestRepo())

	p, _ := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:      "Mochi",
		Species:   "dog",
		BirthDate: strPtr("2020-05-01"),
	})

	got, err := svc.Update(context.Background(), p.ID, "owner-1", UpdateInput{
		BirthDate: PatchDate{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.BirthDate != nil {
		t.Fatalf("birth date = %v, want cleared", *got.BirthDate)
	}
}

func TestService_Delete_NoCascade(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, _ := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Mochi", Species: "dog"})

	if err := svc.Delete(context.Background(), p.ID, "owner-2"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), p.ID, "owner-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), p.ID); err == nil {
		t.Fatalf("expected pet gone after delete")
	}
}

func TestService_RefreshWeight_UpdatesCache(t *testing.T) {
	svc := NewService(newTestRepo())

	p, _ := svc.Create(context.Background(), "owner-1", CreateInput{
		Name: "Mochi", Species: "dog", WeightKg: 10,
	})

	if err := svc.RefreshWeight(context.Background(), p.ID, 9.6); err != nil {
		t.Fatalf("RefreshWeight error: %v", err)
	}
	got, _ := svc.GetByID(context.Background(), p.ID)
	if got.WeightKg != 9.6 {
		t.Fatalf("cached weight = %v, want 9.6", got.WeightKg)
	}
}

func TestService_RefreshWeight_ToleratesMissingPet(t *testing.T) {
	svc := NewService(newTestRepo())

	// log huérfano: no debe propagar error
	if err := svc.RefreshWeight(context.Background(), "ghost", 5); err != nil {
		t.Fatalf("expected nil for missing pet, got %v", err)
	}
}

func TestService_SetPhoto(t *testing.T) {
	svc := NewService(newTestRepo())

	p, _ := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Mochi", Species: "dog"})

	got, err := svc.SetPhoto(context.Background(), p.ID, "owner-1", "abc123.jpg")
	if err != nil {
		t.Fatalf("SetPhoto error: %v", err)
	}
	if got.PhotoPath != "abc123.jpg" {
		t.Fatalf("photo path = %q", got.PhotoPath)
	}

	if _, err := svc.SetPhoto(context.Background(), p.ID, "owner-2", "x.jpg"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}
