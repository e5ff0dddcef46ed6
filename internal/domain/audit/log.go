package audit

import (
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
)

// Action classifies what a log entry records
type Action string

const (
	ActionCreate       Action = "CREATE"
	ActionUpdate       Action = "UPDATE"
	ActionDelete       Action = "DELETE"
	ActionAssign       Action = "ASSIGN"
	ActionStatusChange Action = "STATUS_CHANGE"
	ActionLogin        Action = "LOGIN"
	ActionLogout       Action = "LOGOUT"
)

// IsValid returns true if the action is known
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionAssign,
		ActionStatusChange, ActionLogin, ActionLogout:
		return true
	}
	return false
}

// Log is one append-only audit record. It captures who did what to which
// entity, with before and after snapshots. Logs are never updated or
// deleted once written.
type Log struct {
	shared.BaseEntity
	OrganizationID uuid.UUID      `json:"organization_id"`
	ActorID        *uuid.UUID     `json:"actor_id,omitempty"`
	ActorEmail     string         `json:"actor_email,omitempty"`
	Action         Action         `json:"action"`
	EntityType     string         `json:"entity_type"`
	EntityID       uuid.UUID      `json:"entity_id"`
	OldValue       map[string]any `json:"old_value,omitempty"`
	NewValue       map[string]any `json:"new_value,omitempty"`
	IPAddress      string         `json:"ip_address,omitempty"`
	UserAgent      string         `json:"user_agent,omitempty"`
}

// NewLog creates a new audit log entry
func NewLog(
	organizationID uuid.UUID,
	action Action,
	entityType string,
	entityID uuid.UUID,
	oldValue, newValue map[string]any,
) (*Log, error) {
	if !action.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACTION", "Invalid audit action")
	}
	if entityType == "" {
		return nil, shared.NewDomainError("INVALID_ENTITY_TYPE", "Entity type cannot be empty")
	}
	if entityID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ENTITY_ID", "Entity ID cannot be empty")
	}

	return &Log{
		BaseEntity:     shared.NewBaseEntity(),
		OrganizationID: organizationID,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		OldValue:       oldValue,
		NewValue:       newValue,
	}, nil
}

// SetActor records who performed the action
func (l *Log) SetActor(actorID uuid.UUID, actorEmail string) {
	l.ActorID = &actorID
	l.ActorEmail = actorEmail
}

// SetRequestContext records where the action came from
func (l *Log) SetRequestContext(ipAddress, userAgent string) {
	l.IPAddress = ipAddress
	l.UserAgent = userAgent
}

// GetOldValue returns a copy of the before snapshot
func (l *Log) GetOldValue() map[string]any {
	if l.OldValue == nil {
		return make(map[string]any)
	}
	result := make(map[string]any, len(l.OldValue))
	maps.Copy(result, l.OldValue)
	return result
}

// GetNewValue returns a copy of the after snapshot
func (l *Log) GetNewValue() map[string]any {
	if l.NewValue == nil {
		return make(map[string]any)
	}
	result := make(map[string]any, len(l.NewValue))
	maps.Copy(result, l.NewValue)
	return result
}

// GetTimestamp returns when the log was written
func (l *Log) GetTimestamp() time.Time {
	return l.CreatedAt
}
