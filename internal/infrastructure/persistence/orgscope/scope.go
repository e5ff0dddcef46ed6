// Package orgscope provides organization scoping for GORM queries.
//
// Every tenant-owned table carries an organization_id column; repositories
// apply OrgScope so listings never leak rows across organizations.
package orgscope

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgScope restricts a query to rows owned by one organization
func OrgScope(orgID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ?", orgID)
	}
}
