// Package service implements the tracking store operations: record creation,
// channel updates, response recording and the per-project aggregate view.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"outreach_backend/internal/contractor"
	"outreach_backend/internal/tracking/domain"
	"outreach_backend/internal/tracking/repository"
	"outreach_backend/platform/apperr"
	"outreach_backend/platform/events"
	"outreach_backend/platform/logger"
)

// Service owns all tracking records. Callers hold only outreach ids as
// handles; every mutating operation is fully persisted before it returns.
type Service struct {
	store *repository.FileStore
	bus   events.Bus
	log   *logger.Logger
	now   func() time.Time
}

func New(store *repository.FileStore, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		store: store,
		bus:   bus,
		log:   log,
		now:   time.Now,
	}
}

// CreateRecord allocates a fresh outreach id, writes a pending record and
// attaches it to the project aggregate, creating the aggregate on first use.
func (s *Service) CreateRecord(ctx context.Context, projectID string, lead contractor.Lead, message, bidLink string) (string, error) {
	outreachID := uuid.NewString()
	now := s.now()

	record := &domain.OutreachRecord{
		OutreachID:  outreachID,
		ProjectID:   projectID,
		CreatedAt:   now,
		Contractor:  lead,
		Message:     message,
		BidLink:     bidLink,
		Channels:    []string{},
		Status:      domain.StatusPending,
		Responses:   []domain.Response{},
		LastUpdated: now,
	}

	if err := s.store.CreateRecord(record); err != nil {
		s.log.StoreError("create record", err)
		return "", apperr.Wrap(apperr.KindInternal, "failed to persist outreach record", err)
	}

	err := s.store.UpsertProject(projectID, func(p *domain.ProjectTracking) {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		p.Attach(outreachID, lead, now)
	})
	if err != nil {
		s.log.StoreError("update project tracking", err)
		return "", apperr.Wrap(apperr.KindInternal, "failed to update project tracking", err)
	}

	s.bus.Publish(ctx, domain.RecordCreatedEvent{
		BaseEvent:  events.NewBaseEvent(),
		OutreachID: outreachID,
		ProjectID:  projectID,
		Contractor: lead.Name,
	})

	return outreachID, nil
}

// UpdateChannels records which channels were used for the outreach attempt
// and advances the record to sent. Unknown ids yield a not-found error the
// caller can treat as recoverable.
func (s *Service) UpdateChannels(ctx context.Context, outreachID string, channels []string) error {
	err := s.store.UpdateRecord(outreachID, func(r *domain.OutreachRecord) error {
		r.Channels = channels
		r.Status = domain.StatusSent
		r.LastUpdated = s.now()
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		s.log.Warn("outreach record not found", "outreach_id", outreachID)
		return apperr.NotFound("outreach record not found")
	}
	if err != nil {
		s.log.StoreError("update channels", err)
		return apperr.Wrap(apperr.KindInternal, "failed to update outreach channels", err)
	}
	return nil
}

// RecordResponse appends an external response and advances the record status
// per the transition table.
func (s *Service) RecordResponse(ctx context.Context, outreachID, channel string, responseType domain.ResponseType, details map[string]interface{}) error {
	var projectID string
	var newStatus domain.Status

	err := s.store.UpdateRecord(outreachID, func(r *domain.OutreachRecord) error {
		now := s.now()
		r.Responses = append(r.Responses, domain.Response{
			Timestamp: now,
			Channel:   channel,
			Type:      responseType,
			Details:   details,
		})
		r.Status = domain.NextStatus(r.Status, responseType)
		r.LastUpdated = now

		projectID = r.ProjectID
		newStatus = r.Status
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		s.log.Warn("outreach record not found", "outreach_id", outreachID)
		return apperr.NotFound("outreach record not found")
	}
	if err != nil {
		s.log.StoreError("record response", err)
		return apperr.Wrap(apperr.KindInternal, "failed to record response", err)
	}

	s.bus.Publish(ctx, domain.ResponseRecordedEvent{
		BaseEvent:  events.NewBaseEvent(),
		OutreachID: outreachID,
		ProjectID:  projectID,
		Channel:    channel,
		Type:       responseType,
		NewStatus:  newStatus,
	})

	return nil
}

// GetProjectTracking returns the project aggregate with every outreach
// record expanded. A project with no aggregate file at all is not-found; an
// aggregate with zero outreach ids is a valid, empty result.
func (s *Service) GetProjectTracking(ctx context.Context, projectID string) (*domain.ProjectTrackingView, error) {
	project, err := s.store.GetProject(projectID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("no tracking data for project")
	}
	if err != nil {
		s.log.StoreError("load project tracking", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load project tracking", err)
	}

	view := &domain.ProjectTrackingView{
		ProjectTracking: *project,
		OutreachDetails: make([]domain.OutreachRecord, 0, len(project.OutreachIDs)),
	}

	for _, outreachID := range project.OutreachIDs {
		record, err := s.store.GetRecord(outreachID)
		if err != nil {
			// The aggregate must never reference a missing record.
			s.log.StoreError("expand outreach record "+outreachID, err)
			continue
		}
		view.OutreachDetails = append(view.OutreachDetails, *record)
	}

	return view, nil
}
