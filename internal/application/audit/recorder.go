// Package audit provides application services for the audit trail.
package audit

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
)

// Recorder writes audit log entries for mutations across the platform.
// Audit writes are best-effort: a failed write is logged but never fails
// the operation that triggered it.
type Recorder struct {
	logRepo audit.LogRepository
	logger  *zap.Logger
}

// NewRecorder creates a new audit recorder
func NewRecorder(logRepo audit.LogRepository, logger *zap.Logger) *Recorder {
	return &Recorder{
		logRepo: logRepo,
		logger:  logger,
	}
}

// RecordInput describes one audit log entry to append
type RecordInput struct {
	OrganizationID uuid.UUID
	Action         audit.Action
	EntityType     string
	EntityID       uuid.UUID
	OldValue       map[string]any
	NewValue       map[string]any
	ActorID        *uuid.UUID
	ActorEmail     string
	IPAddress      string
	UserAgent      string
}

// Record appends an audit log entry. Errors are swallowed after logging
// so the caller's mutation is never rolled back over a missing trail entry.
func (r *Recorder) Record(ctx context.Context, input RecordInput) {
	log, err := audit.NewLog(
		input.OrganizationID,
		input.Action,
		input.EntityType,
		input.EntityID,
		input.OldValue,
		input.NewValue,
	)
	if err != nil {
		r.logger.Error("Failed to build audit log entry",
			zap.String("entity_type", input.EntityType),
			zap.String("action", string(input.Action)),
			zap.Error(err))
		return
	}

	if input.ActorID != nil {
		log.SetActor(*input.ActorID, input.ActorEmail)
	}
	if input.IPAddress != "" || input.UserAgent != "" {
		log.SetRequestContext(input.IPAddress, input.UserAgent)
	}

	if err := r.logRepo.Create(ctx, log); err != nil {
		r.logger.Error("Failed to write audit log entry",
			zap.String("entity_type", input.EntityType),
			zap.String("entity_id", input.EntityID.String()),
			zap.String("action", string(input.Action)),
			zap.Error(err))
	}
}
