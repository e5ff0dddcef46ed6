// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// ErrMeterNil is returned when a metrics constructor receives a nil meter.
var ErrMeterNil = errors.New("meter is required")

// ReportingMetrics tracks inspection activity across the platform.
// It covers the report lifecycle, critical findings, and authentication events.
type ReportingMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Report lifecycle counters
	reportCreatedTotal   *Counter
	reportSubmittedTotal *Counter
	reportReviewedTotal  *Counter
	reportArchivedTotal  *Counter

	// Finding counters
	entryRecordedTotal    *Counter
	criticalFindingsTotal *Counter

	// Authentication counters
	loginTotal        *Counter
	loginFailureTotal *Counter
	accountLockTotal  *Counter
}

// ReportingMetricsConfig holds configuration for reporting metrics.
type ReportingMetricsConfig struct {
	Meter  metric.Meter
	Logger *zap.Logger
}

// NewReportingMetrics creates a new ReportingMetrics instance.
func NewReportingMetrics(cfg ReportingMetricsConfig) (*ReportingMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rm := &ReportingMetrics{
		meter:  cfg.Meter,
		logger: logger,
	}

	var err error

	rm.reportCreatedTotal, err = NewCounter(
		cfg.Meter,
		"shipreport_report_created_total",
		"Total number of inspection reports created",
		"{reports}",
	)
	if err != nil {
		return nil, err
	}

	rm.reportSubmittedTotal, err = NewCounter(
		cfg.Meter,
		"shipreport_report_submitted_total",
		"Total number of inspection reports submitted for review",
		"{reports}",
	)
	if err != nil {
		return nil, err
	}

	rm.reportReviewedTotal, err = NewCounter(
		cfg.Meter,
		"shipreport_report_reviewed_total",
		"Total number of inspection reports reviewed",
		"{reports}",
	)
	if err != nil {
		return nil, err
	}

	rm.reportArchivedTotal, err = NewCounter(
		cfg.Meter,
		"shipreport_report_archived_total",
		"Total number of inspection reports archived",
		"{reports}",
	)
	if err != nil {
		return nil, err
	}

	rm.entryRecordedTotal, err = NewCounter(
		cfg.Meter,
		"shipreport_entry_recorded_total",
		"Total number of inspection entries recorded",
		"{entries}",
	)
	if err != nil {
		return nil, err
	}

	rm.criticalFindingsTotal, err = NewCounter(
		cfg.Meter,
		"shipreport_critical_findings_total",
		"Total number of entries recorded with critical condition",
		"{entries}",
	)
	if err != nil {
		return nil, err
	}

	rm.loginTotal, err = NewCounter(
		cfg.Meter,
		"shipreport_login_total",
		"Total number of successful logins",
		"{logins}",
	)
	if err != nil {
		return nil, err
	}

	rm.loginFailureTotal, err = NewCounter(
		cfg.Meter,
		"shipreport_login_failure_total",
		"Total number of failed login attempts",
		"{attempts}",
	)
	if err != nil {
		return nil, err
	}

	rm.accountLockTotal, err = NewCounter(
		cfg.Meter,
		"shipreport_account_lock_total",
		"Total number of accounts locked after repeated failures",
		"{accounts}",
	)
	if err != nil {
		return nil, err
	}

	return rm, nil
}

// RecordReportCreated increments the report creation counter.
func (rm *ReportingMetrics) RecordReportCreated(ctx context.Context, orgID, vesselID string) {
	rm.reportCreatedTotal.Inc(ctx,
		AttrOrgID.String(orgID),
		AttrVesselID.String(vesselID),
	)
}

// RecordReportSubmitted increments the report submission counter.
func (rm *ReportingMetrics) RecordReportSubmitted(ctx context.Context, orgID, vesselID string) {
	rm.reportSubmittedTotal.Inc(ctx,
		AttrOrgID.String(orgID),
		AttrVesselID.String(vesselID),
	)
}

// RecordReportReviewed increments the report review counter.
func (rm *ReportingMetrics) RecordReportReviewed(ctx context.Context, orgID string) {
	rm.reportReviewedTotal.Inc(ctx, AttrOrgID.String(orgID))
}

// RecordReportArchived increments the report archive counter.
func (rm *ReportingMetrics) RecordReportArchived(ctx context.Context, orgID string) {
	rm.reportArchivedTotal.Inc(ctx, AttrOrgID.String(orgID))
}

// RecordEntry increments the entry counter, plus the critical findings
// counter when the entry condition is critical.
func (rm *ReportingMetrics) RecordEntry(ctx context.Context, orgID, category string, critical bool) {
	rm.entryRecordedTotal.Inc(ctx,
		AttrOrgID.String(orgID),
		AttrEntryCategory.String(category),
	)
	if critical {
		rm.criticalFindingsTotal.Inc(ctx,
			AttrOrgID.String(orgID),
			AttrEntryCategory.String(category),
		)
	}
}

// RecordLogin increments the successful login counter.
func (rm *ReportingMetrics) RecordLogin(ctx context.Context, orgID, role string) {
	rm.loginTotal.Inc(ctx,
		AttrOrgID.String(orgID),
		AttrUserRole.String(role),
	)
}

// RecordLoginFailure increments the failed login counter.
func (rm *ReportingMetrics) RecordLoginFailure(ctx context.Context) {
	rm.loginFailureTotal.Inc(ctx)
}

// RecordAccountLock increments the account lock counter.
func (rm *ReportingMetrics) RecordAccountLock(ctx context.Context) {
	rm.accountLockTotal.Inc(ctx)
}
