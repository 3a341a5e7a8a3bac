package unsafeitems

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Item
}

func newSeededRepo() *testRepo {
	return &testRepo{items: Defaults()}
}

func (r *testRepo) Create(ctx context.Context, i Item) error {
	if i.ID == "" {
		return errors.New("repo: id required")
	}
	r.items = append(r.items, i)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Item, error) {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRepo) Clear(ctx context.Context) error {
	r.items = nil
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Search_EmptyQueryReturnsSeededTable(t *testing.T) {
	svc := NewService(newSeededRepo())

	items, err := svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded items, got %d", len(items))
	}
}

func TestService_Search_SubstringCaseInsensitive(t *testing.T) {
	repo := newSeededRepo()
	svc := NewService(repo)

	if _, err := svc.Add(context.Background(), AddInput{
		Category: CategoryPlant,
		Name:     "Lily",
		Risk:     RiskHigh,
		Why:      "고양이 신부전",
	}); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	items, err := svc.Search(context.Background(), "lIL")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Lily" {
		t.Fatalf("search result = %+v, want solo Lily", items)
	}

	// substring en coreano sobre los defaults
	items, err = svc.Search(context.Background(), "포도")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "unsafe-grapes" {
		t.Fatalf("search 포도 = %+v, want solo 포도/건포도", items)
	}
}

func TestService_Search_OrderIsCategoryRiskName(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	add := func(c Category, n string, r Risk) {
		t.Helper()
		if _, err := svc.Add(context.Background(), AddInput{Category: c, Name: n, Risk: r}); err != nil {
			t.Fatalf("Add %s error: %v", n, err)
		}
	}
	add(CategoryPlant, "Lily", RiskHigh)
	add(CategoryFood, "양파", RiskHigh)
	add(CategoryFood, "자일리톨", RiskCaution)
	add(CategoryFood, "마카다미아", RiskCaution)

	items, err := svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	want := []string{"마카다미아", "자일리톨", "양파", "Lily"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, n := range want {
		if items[i].Name != n {
			t.Fatalf("items[%d] = %q, want %q (full: %+v)", i, items[i].Name, n, items)
		}
	}
}

func TestService_Add_ValidatesEnums(t *testing.T) {
	svc := NewService(&testRepo{})

	cases := []struct {
		name string
		in   AddInput
	}{
		{"empty name", AddInput{Category: CategoryFood, Risk: RiskHigh}},
		{"bad category", AddInput{Category: "toy", Name: "x", Risk: RiskHigh}},
		{"bad risk", AddInput{Category: CategoryFood, Name: "x", Risk: "extreme"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Add(context.Background(), tc.in); err != ErrInvalidInput {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_Clear(t *testing.T) {
	svc := NewService(newSeededRepo())

	if err := svc.Clear(context.Background()); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	items, _ := svc.Search(context.Background(), "")
	if len(items) != 0 {
		t.Fatalf("expected empty table after clear, got %d", len(items))
	}
}
