package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// OrganizationSortFields contains allowed sort fields for organizations
var OrganizationSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"contact_name":  true,
	"contact_email": true,
	"active":        true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"email":         true,
	"display_name":  true,
	"role":          true,
	"active":        true,
	"last_login_at": true,
}

// VesselSortFields contains allowed sort fields for vessels
var VesselSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"imo_number":    true,
	"flag_state":    true,
	"type":          true,
	"gross_tonnage": true,
	"year_built":    true,
	"active":        true,
}

// ReportSortFields contains allowed sort fields for inspection reports
var ReportSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"title":           true,
	"status":          true,
	"inspection_date": true,
	"port":            true,
	"overall_rating":  true,
	"submitted_at":    true,
	"reviewed_at":     true,
}

// AuditLogSortFields contains allowed sort fields for audit logs
var AuditLogSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"action":      true,
	"entity_type": true,
	"actor_email": true,
}
