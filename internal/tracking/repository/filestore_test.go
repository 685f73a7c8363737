package repository

import (
	"errors"
	"sync"
	"testing"
	"time"

	"outreach_backend/internal/contractor"
	"outreach_backend/internal/tracking/domain"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store
}

func sampleRecord(id string) *domain.OutreachRecord {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.OutreachRecord{
		OutreachID:  id,
		ProjectID:   "proj-1",
		CreatedAt:   now,
		Contractor:  contractor.Lead{Name: "Acme", Phone: "5551234567"},
		Message:     "hello",
		BidLink:     "https://example.com/bid",
		Channels:    []string{},
		Status:      domain.StatusPending,
		Responses:   []domain.Response{},
		LastUpdated: now,
	}
}

func TestRecordRoundTrip(t *testing.T) {
	store := newStore(t)
	record := sampleRecord("rec-1")

	if err := store.CreateRecord(record); err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}

	loaded, err := store.GetRecord("rec-1")
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if loaded.OutreachID != "rec-1" || loaded.Status != domain.StatusPending {
		t.Fatalf("unexpected record: %+v", loaded)
	}
	if loaded.Contractor.Name != "Acme" {
		t.Fatalf("contractor snapshot lost: %+v", loaded.Contractor)
	}
}

func TestGetRecord_NotFound(t *testing.T) {
	store := newStore(t)

	if _, err := store.GetRecord("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRecord_NotFound(t *testing.T) {
	store := newStore(t)

	err := store.UpdateRecord("missing", func(r *domain.OutreachRecord) error { return nil })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRecord_PersistsMutation(t *testing.T) {
	store := newStore(t)
	if err := store.CreateRecord(sampleRecord("rec-2")); err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}

	err := store.UpdateRecord("rec-2", func(r *domain.OutreachRecord) error {
		r.Channels = []string{"email", "sms"}
		r.Status = domain.StatusSent
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateRecord: %v", err)
	}

	loaded, err := store.GetRecord("rec-2")
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if loaded.Status != domain.StatusSent || len(loaded.Channels) != 2 {
		t.Fatalf("mutation not persisted: %+v", loaded)
	}
}

func TestUpdateRecord_ConcurrentAppendsDoNotLoseWrites(t *testing.T) {
	store := newStore(t)
	if err := store.CreateRecord(sampleRecord("rec-3")); err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_ = store.UpdateRecord("rec-3", func(r *domain.OutreachRecord) error {
				r.Responses = append(r.Responses, domain.Response{
					Timestamp: time.Now(),
					Channel:   "email",
					Type:      domain.ResponseOpened,
				})
				return nil
			})
		}()
	}
	wg.Wait()

	loaded, err := store.GetRecord("rec-3")
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if len(loaded.Responses) != writers {
		t.Fatalf("expected %d responses, got %d", writers, len(loaded.Responses))
	}
}

func TestUpsertProject_CreatesThenAccumulates(t *testing.T) {
	store := newStore(t)
	now := time.Now()

	for _, id := range []string{"rec-a", "rec-b"} {
		err := store.UpsertProject("proj-9", func(p *domain.ProjectTracking) {
			if p.CreatedAt.IsZero() {
				p.CreatedAt = now
			}
			p.Attach(id, contractor.Lead{Name: "C-" + id}, now)
		})
		if err != nil {
			t.Fatalf("UpsertProject: %v", err)
		}
	}

	project, err := store.GetProject("proj-9")
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if len(project.OutreachIDs) != 2 {
		t.Fatalf("expected 2 outreach ids, got %v", project.OutreachIDs)
	}
	if len(project.Contractors) != 2 {
		t.Fatalf("expected 2 contractors, got %v", project.Contractors)
	}
}

func TestGetProject_NotFoundDistinctFromEmpty(t *testing.T) {
	store := newStore(t)

	if _, err := store.GetProject("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.UpsertProject("empty", func(p *domain.ProjectTracking) {}); err != nil {
		t.Fatalf("UpsertProject: %v", err)
	}
	project, err := store.GetProject("empty")
	if err != nil {
		t.Fatalf("an existing aggregate with zero ids must load, got %v", err)
	}
	if len(project.OutreachIDs) != 0 {
		t.Fatalf("expected empty aggregate, got %v", project.OutreachIDs)
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename("../../etc/passwd"); got != "______etc_passwd" {
		t.Fatalf("unexpected sanitized name %q", got)
	}
}
