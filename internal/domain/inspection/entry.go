package inspection

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Category classifies what part of the vessel an entry covers
type Category string

const (
	CategoryHull                Category = "HULL"
	CategoryEngine              Category = "ENGINE"
	CategoryNavigation          Category = "NAVIGATION"
	CategorySafetyEquipment     Category = "SAFETY_EQUIPMENT"
	CategoryCargoGear           Category = "CARGO_GEAR"
	CategoryAccommodation       Category = "ACCOMMODATION"
	CategoryPollutionPrevention Category = "POLLUTION_PREVENTION"
	CategoryDocumentation       Category = "DOCUMENTATION"
)

// IsValid returns true if the category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryHull, CategoryEngine, CategoryNavigation, CategorySafetyEquipment,
		CategoryCargoGear, CategoryAccommodation, CategoryPollutionPrevention, CategoryDocumentation:
		return true
	}
	return false
}

// Condition rates the state of an inspected item, best to worst
type Condition string

const (
	ConditionGood     Condition = "GOOD"
	ConditionFair     Condition = "FAIR"
	ConditionPoor     Condition = "POOR"
	ConditionCritical Condition = "CRITICAL"
)

// IsValid returns true if the condition is known
func (c Condition) IsValid() bool {
	switch c {
	case ConditionGood, ConditionFair, ConditionPoor, ConditionCritical:
		return true
	}
	return false
}

// severity orders conditions for worst-of aggregation
func (c Condition) severity() int {
	switch c {
	case ConditionGood:
		return 0
	case ConditionFair:
		return 1
	case ConditionPoor:
		return 2
	case ConditionCritical:
		return 3
	}
	return 0
}

// WorseThan returns true if this condition is worse than the other
func (c Condition) WorseThan(other Condition) bool {
	return c.severity() > other.severity()
}

// Entry is a single checklist item inside an inspection report.
// Entries live and die with their report; they are not an aggregate of
// their own.
type Entry struct {
	ID               uuid.UUID
	ReportID         uuid.UUID
	Category         Category
	Item             string
	Condition        Condition
	Description      string
	MeasuredValue    *decimal.Decimal
	MeasuredUnit     string
	PhotoKey         string
	RequiresFollowup bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewEntry creates a new inspection entry. A CRITICAL condition always
// requires followup regardless of what the caller passed.
func NewEntry(reportID uuid.UUID, category Category, item string, condition Condition, description string) (*Entry, error) {
	if reportID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REPORT_ID", "Report ID cannot be empty")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown inspection category")
	}
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Inspected item cannot be empty")
	}
	if len(item) > 200 {
		return nil, shared.NewDomainError("INVALID_ITEM", "Inspected item cannot exceed 200 characters")
	}
	if !condition.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONDITION", "Unknown condition rating")
	}

	now := time.Now()
	return &Entry{
		ID:               uuid.New(),
		ReportID:         reportID,
		Category:         category,
		Item:             item,
		Condition:        condition,
		Description:      strings.TrimSpace(description),
		RequiresFollowup: condition == ConditionCritical,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Update changes the entry's rating and description
func (e *Entry) Update(condition Condition, description string, requiresFollowup bool) error {
	if !condition.IsValid() {
		return shared.NewDomainError("INVALID_CONDITION", "Unknown condition rating")
	}

	e.Condition = condition
	e.Description = strings.TrimSpace(description)
	e.RequiresFollowup = requiresFollowup || condition == ConditionCritical
	e.UpdatedAt = time.Now()

	return nil
}

// SetMeasurement records a measured reading for the entry
func (e *Entry) SetMeasurement(value decimal.Decimal, unit string) error {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return shared.NewDomainError("INVALID_UNIT", "Measurement unit cannot be empty")
	}
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Measurement unit cannot exceed 20 characters")
	}

	e.MeasuredValue = &value
	e.MeasuredUnit = unit
	e.UpdatedAt = time.Now()

	return nil
}

// AttachPhoto records the object storage key of an uploaded photo
func (e *Entry) AttachPhoto(photoKey string) error {
	photoKey = strings.TrimSpace(photoKey)
	if photoKey == "" {
		return shared.NewDomainError("INVALID_PHOTO_KEY", "Photo key cannot be empty")
	}
	if len(photoKey) > 500 {
		return shared.NewDomainError("INVALID_PHOTO_KEY", "Photo key cannot exceed 500 characters")
	}

	e.PhotoKey = photoKey
	e.UpdatedAt = time.Now()

	return nil
}
