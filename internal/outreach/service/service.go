// Package service implements the outreach orchestrator: it sequences message
// composition, tracking record creation and channel dispatch for a batch of
// contractors.
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"outreach_backend/internal/contractor"
	"outreach_backend/internal/dispatch"
	"outreach_backend/platform/logger"
)

// BatchResult tallies one outreach batch. It persists nothing itself; the
// tracking store already holds the per-contractor state.
type BatchResult struct {
	Total         int `json:"total"`
	EmailSent     int `json:"email_sent"`
	SMSSent       int `json:"sms_sent"`
	VoiceCallSent int `json:"voice_call_sent"`
	Failed        int `json:"failed"`
}

// Composer produces the outreach message for one contractor. It never fails.
type Composer interface {
	Compose(ctx context.Context, contractorName, projectType, projectDetails string) string
}

// Dispatcher attempts delivery and returns the succeeded channel names.
type Dispatcher interface {
	Dispatch(ctx context.Context, lead contractor.Lead, msg dispatch.Message) []string
}

// Tracker is the slice of the tracking store the orchestrator needs.
type Tracker interface {
	CreateRecord(ctx context.Context, projectID string, lead contractor.Lead, message, bidLink string) (string, error)
	UpdateChannels(ctx context.Context, outreachID string, channels []string) error
}

// Finder locates candidate contractors for a project.
type Finder interface {
	FindContractors(ctx context.Context, projectType, zipCode string, maxResults int) []contractor.Lead
}

// Service coordinates one outreach batch per bid request. Contractors are
// processed independently; a failure anywhere in one contractor's sequence is
// counted and never aborts the rest of the batch.
type Service struct {
	finder         Finder
	composer       Composer
	dispatcher     Dispatcher
	tracker        Tracker
	maxContractors int
	log            *logger.Logger
}

func New(finder Finder, composer Composer, dispatcher Dispatcher, tracker Tracker, maxContractors int, log *logger.Logger) *Service {
	return &Service{
		finder:         finder,
		composer:       composer,
		dispatcher:     dispatcher,
		tracker:        tracker,
		maxContractors: maxContractors,
		log:            log,
	}
}

// FindContractors runs discovery with the configured result cap.
func (s *Service) FindContractors(ctx context.Context, projectType, zipCode string) []contractor.Lead {
	return s.finder.FindContractors(ctx, projectType, zipCode, s.maxContractors)
}

// ProcessBatch runs the full outreach sequence for each
// contractor and returns the aggregate tally.
func (s *Service) ProcessBatch(ctx context.Context, projectID string, contractors []contractor.Lead, projectDetails, bidLink string) BatchResult {
	result := BatchResult{Total: len(contractors)}
	projectType := deriveProjectType(projectDetails)

	for _, lead := range contractors {
		channels, err := s.processContractor(ctx, projectID, lead, projectType, projectDetails, bidLink)
		if err != nil {
			result.Failed++
			s.log.Error("outreach to contractor failed",
				"project_id", projectID, "contractor", lead.Name, "error", err)
			continue
		}
		if len(channels) == 0 {
			result.Failed++
			s.log.Warn("no outreach channels available",
				"project_id", projectID, "contractor", lead.Name)
			continue
		}

		if slices.Contains(channels, dispatch.ChannelEmail) {
			result.EmailSent++
		}
		if slices.Contains(channels, dispatch.ChannelSMS) {
			result.SMSSent++
		}
		if slices.Contains(channels, dispatch.ChannelVoice) {
			result.VoiceCallSent++
		}
	}

	return result
}

// processContractor isolates one contractor's sequence, converting panics
// from misbehaving providers into ordinary failures.
func (s *Service) processContractor(ctx context.Context, projectID string, lead contractor.Lead, projectType, projectDetails, bidLink string) (channels []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			channels = nil
			err = fmt.Errorf("panic during outreach: %v", r)
		}
	}()

	message := s.composer.Compose(ctx, lead.Name, projectType, projectDetails)

	outreachID, err := s.tracker.CreateRecord(ctx, projectID, lead, message, bidLink)
	if err != nil {
		return nil, fmt.Errorf("create tracking record: %w", err)
	}

	channels = s.dispatcher.Dispatch(ctx, lead, dispatch.Message{
		Body:           message,
		BidLink:        bidLink,
		ProjectDetails: projectDetails,
	})
	if len(channels) == 0 {
		// The record stays pending; the contractor was never reached.
		return nil, nil
	}

	if err := s.tracker.UpdateChannels(ctx, outreachID, channels); err != nil {
		return nil, fmt.Errorf("update tracking channels: %w", err)
	}

	return channels, nil
}

// deriveProjectType takes the leading word of the free-form details as the
// project type for message personalization, matching the inbound payload
// convention.
func deriveProjectType(projectDetails string) string {
	fields := strings.Fields(projectDetails)
	if len(fields) == 0 {
		return "construction"
	}
	return fields[0]
}
