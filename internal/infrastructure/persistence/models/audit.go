package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"go.uber.org/zap"
)

var modelLogger = zap.L().Named("audit.models")

// AuditLogModel is the persistence model for audit log entries.
// Audit logs are append-only and should not be modified after creation.
type AuditLogModel struct {
	BaseModel
	OrganizationID uuid.UUID    `gorm:"type:uuid;not null;index"`
	ActorID        *uuid.UUID   `gorm:"type:uuid;index"`
	ActorEmail     string       `gorm:"type:varchar(200)"`
	Action         audit.Action `gorm:"type:varchar(20);not null;index"`
	EntityType     string       `gorm:"type:varchar(50);not null;index"`
	EntityID       uuid.UUID    `gorm:"type:uuid;not null;index"`
	OldValueJSON   string       `gorm:"column:old_value;type:jsonb"`
	NewValueJSON   string       `gorm:"column:new_value;type:jsonb"`
	IPAddress      string       `gorm:"type:varchar(45)"`
	UserAgent      string       `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToDomain converts the persistence model to a domain audit Log entity.
func (m *AuditLogModel) ToDomain() *audit.Log {
	log := &audit.Log{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		OrganizationID: m.OrganizationID,
		ActorID:        m.ActorID,
		ActorEmail:     m.ActorEmail,
		Action:         m.Action,
		EntityType:     m.EntityType,
		EntityID:       m.EntityID,
		IPAddress:      m.IPAddress,
		UserAgent:      m.UserAgent,
	}

	// Parse old value from JSON
	if m.OldValueJSON != "" && m.OldValueJSON != "{}" {
		var oldValue map[string]any
		if err := json.Unmarshal([]byte(m.OldValueJSON), &oldValue); err != nil {
			modelLogger.Warn("failed to parse audit log old_value JSON",
				zap.String("entity_type", m.EntityType),
				zap.String("raw_json", m.OldValueJSON),
				zap.Error(err))
		} else {
			log.OldValue = oldValue
		}
	}

	// Parse new value from JSON
	if m.NewValueJSON != "" && m.NewValueJSON != "{}" {
		var newValue map[string]any
		if err := json.Unmarshal([]byte(m.NewValueJSON), &newValue); err != nil {
			modelLogger.Warn("failed to parse audit log new_value JSON",
				zap.String("entity_type", m.EntityType),
				zap.String("raw_json", m.NewValueJSON),
				zap.Error(err))
		} else {
			log.NewValue = newValue
		}
	}

	return log
}

// FromDomain populates the persistence model from a domain audit Log entity.
func (m *AuditLogModel) FromDomain(l *audit.Log) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.OrganizationID = l.OrganizationID
	m.ActorID = l.ActorID
	m.ActorEmail = l.ActorEmail
	m.Action = l.Action
	m.EntityType = l.EntityType
	m.EntityID = l.EntityID
	m.IPAddress = l.IPAddress
	m.UserAgent = l.UserAgent

	// Serialize old value to JSON
	if len(l.OldValue) > 0 {
		if jsonBytes, err := json.Marshal(l.OldValue); err == nil {
			m.OldValueJSON = string(jsonBytes)
		}
	}

	// Serialize new value to JSON
	if len(l.NewValue) > 0 {
		if jsonBytes, err := json.Marshal(l.NewValue); err == nil {
			m.NewValueJSON = string(jsonBytes)
		}
	}
}

// AuditLogModelFromDomain creates a new persistence model from a domain audit Log entity.
func AuditLogModelFromDomain(l *audit.Log) *AuditLogModel {
	m := &AuditLogModel{}
	m.FromDomain(l)
	return m
}
