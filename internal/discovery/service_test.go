package discovery

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"outreach_backend/internal/contractor"
	"outreach_backend/platform/logger"
)

type stubProvider struct {
	name  string
	leads []contractor.Lead
	err   error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Find(ctx context.Context, projectType, zipCode string) ([]contractor.Lead, error) {
	return s.leads, s.err
}

func TestDeduplicate_NameCollisionDropsLater(t *testing.T) {
	leads := []contractor.Lead{
		{Name: "A", Phone: "1", Email: "x"},
		{Name: "A", Phone: "2", Email: "y"},
		{Name: "B", Phone: "3", Email: "z"},
	}

	unique := Deduplicate(leads)

	if len(unique) != 2 {
		t.Fatalf("expected 2 unique leads, got %d", len(unique))
	}
	if unique[0].Name != "A" || unique[0].Phone != "1" {
		t.Fatalf("expected first occurrence of A to win, got %+v", unique[0])
	}
	if unique[1].Name != "B" {
		t.Fatalf("expected B second, got %+v", unique[1])
	}
}

func TestDeduplicate_NormalizedKeys(t *testing.T) {
	leads := []contractor.Lead{
		{Name: "Acme Builders", Phone: "(555) 123-4567"},
		{Name: "ACME BUILDERS"},
		{Name: "Other Co", Phone: "555-123-4567"},
		{Name: "Third Co", Email: "Info@Example.com"},
		{Name: "Fourth Co", Email: "info@example.com"},
	}

	unique := Deduplicate(leads)

	if len(unique) != 2 {
		t.Fatalf("expected 2 unique leads, got %d", len(unique))
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	leads := []contractor.Lead{
		{Name: "A", Phone: "1"},
		{Name: "B", Phone: "1"},
		{Name: "C", Email: "c@c.com"},
		{Name: "c", Email: "other@c.com"},
	}

	once := Deduplicate(leads)
	twice := Deduplicate(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("deduplicate not idempotent: %+v vs %+v", once, twice)
	}
}

func TestDeduplicate_EmptyFieldsNeverCollide(t *testing.T) {
	leads := []contractor.Lead{
		{Name: "A"},
		{Name: "B"},
		{Name: "C"},
	}

	if unique := Deduplicate(leads); len(unique) != 3 {
		t.Fatalf("leads without phone/email must not collide, got %d", len(unique))
	}
}

func TestFindContractors_MergesInProviderOrder(t *testing.T) {
	log := logger.New("development")
	svc := NewService(log,
		&stubProvider{name: "first", leads: []contractor.Lead{
			{Name: "Alpha", Phone: "111"},
			{Name: "Beta", Phone: "222"},
		}},
		&stubProvider{name: "second", leads: []contractor.Lead{
			{Name: "alpha", Phone: "999"}, // duplicate by name
			{Name: "Gamma", Phone: "333"},
		}},
	)

	leads := svc.FindContractors(context.Background(), "pool installation", "90210", 20)

	want := []string{"Alpha", "Beta", "Gamma"}
	if len(leads) != len(want) {
		t.Fatalf("expected %d leads, got %d", len(want), len(leads))
	}
	for i, name := range want {
		if leads[i].Name != name {
			t.Errorf("lead %d: expected %s, got %s", i, name, leads[i].Name)
		}
	}
}

func TestFindContractors_ProviderErrorIsSoft(t *testing.T) {
	log := logger.New("development")
	svc := NewService(log,
		&stubProvider{name: "broken", err: errors.New("quota exceeded")},
		&stubProvider{name: "working", leads: []contractor.Lead{{Name: "Delta"}}},
	)

	leads := svc.FindContractors(context.Background(), "roofing", "90210", 20)

	if len(leads) != 1 || leads[0].Name != "Delta" {
		t.Fatalf("expected the working provider's lead, got %+v", leads)
	}
}

func TestFindContractors_TruncatesToMax(t *testing.T) {
	log := logger.New("development")
	svc := NewService(log, &stubProvider{name: "many", leads: []contractor.Lead{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
	}})

	leads := svc.FindContractors(context.Background(), "fencing", "90210", 2)

	if len(leads) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(leads))
	}
	if leads[0].Name != "A" || leads[1].Name != "B" {
		t.Fatalf("truncation must keep leading leads, got %+v", leads)
	}
}
