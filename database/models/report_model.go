// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/reportguard/reportguard/normalize"
)

type ReportStatus string

const (
	ReportStatusProcessing ReportStatus = "PROCESSING"
	ReportStatusCompleted  ReportStatus = "COMPLETED"
	ReportStatusFailed     ReportStatus = "FAILED"
)

func ParseReportStatus(s string) (ReportStatus, bool) {
	switch ReportStatus(strings.ToUpper(s)) {
	case ReportStatusProcessing:
		return ReportStatusProcessing, true
	case ReportStatusCompleted:
		return ReportStatusCompleted, true
	case ReportStatusFailed:
		return ReportStatusFailed, true
	}
	return "", false
}

type Report struct {
	Model
	// at most one live report per execution id. Regeneration deletes the
	// superseded row before inserting a new one.
	ExecutionID string `gorm:"uniqueIndex;not null;type:text" json:"executionId"`
	Title       string `gorm:"type:text" json:"title"`

	// raw request snapshot, kept opaque
	InputFindings RawFindings   `gorm:"type:jsonb" json:"inputFindings"`
	Summary       ReportSummary `gorm:"type:jsonb" json:"summary"`

	Status ReportStatus `gorm:"not null;default:'PROCESSING';type:text" json:"status"`

	// artifact reference, set as a group when the report completes
	FileName *string `gorm:"type:text" json:"fileName,omitempty"`
	FilePath *string `gorm:"type:text" json:"filePath,omitempty"`
	FileSize *int64  `json:"fileSize,omitempty"`

	GeneratedAt time.Time `json:"generatedAt"`
}

func (r Report) TableName() string {
	return "reports"
}

func (r Report) HasArtifact() bool {
	return r.FileName != nil && r.FilePath != nil && r.FileSize != nil
}

// TransitionTo guards the report state machine. The only legal transitions
// are PROCESSING -> COMPLETED and PROCESSING -> FAILED.
func (r *Report) TransitionTo(next ReportStatus) error {
	if r.Status != ReportStatusProcessing {
		return fmt.Errorf("illegal report status transition from %s to %s", r.Status, next)
	}
	if next != ReportStatusCompleted && next != ReportStatusFailed {
		return fmt.Errorf("illegal report status transition from %s to %s", r.Status, next)
	}
	r.Status = next
	return nil
}

// RawFindings stores the unmodified findings array from the generate
// request as a jsonb column.
type RawFindings []map[string]any

func (r RawFindings) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RawFindings) Scan(value any) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(data, r)
}

type SummaryKind string

const (
	SummaryKindSeverity SummaryKind = "severity"
	SummaryKindFailure  SummaryKind = "failure"
)

type FailurePayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ReportSummary is a tagged union: either the severity counts of a
// successful run or the error payload of a failed one, never both.
type ReportSummary struct {
	Kind     SummaryKind                `json:"kind"`
	Severity *normalize.SeveritySummary `json:"severity,omitempty"`
	Failure  *FailurePayload            `json:"failure,omitempty"`
}

func SeverityReportSummary(summary normalize.SeveritySummary) ReportSummary {
	return ReportSummary{
		Kind:     SummaryKindSeverity,
		Severity: &summary,
	}
}

func FailureReportSummary(errorName, message string) ReportSummary {
	return ReportSummary{
		Kind: SummaryKindFailure,
		Failure: &FailurePayload{
			Error:   errorName,
			Message: message,
		},
	}
}

func (s ReportSummary) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ReportSummary) Scan(value any) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(data, s)
}
