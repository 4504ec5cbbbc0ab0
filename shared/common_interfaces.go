// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/reportguard/reportguard/database/models"
	"github.com/reportguard/reportguard/normalize"
)

// ReportRepository is the persisted record store for report lifecycle
// metadata. At most one live report exists per execution id; the database
// enforces this with a unique index.
type ReportRepository interface {
	Create(tx DB, report *models.Report) error
	Save(tx DB, report *models.Report) error
	Read(id uuid.UUID) (models.Report, error)
	Delete(tx DB, id uuid.UUID) error

	FindByExecutionID(executionID string) (models.Report, error)
	FindAllPaged(pageInfo PageInfo, status *models.ReportStatus, sort SortQuery) (Paged[models.Report], error)

	Ping(ctx context.Context) error
}

// ReportService drives the report lifecycle: freshness resolution,
// generation, queries and deletion.
type ReportService interface {
	GenerateReport(ctx context.Context, executionID, title string, rawFindings []map[string]any) (models.Report, error)
	GetReport(id uuid.UUID) (models.Report, error)
	GetReportByExecutionID(executionID string) (models.Report, error)
	ListReports(pageInfo PageInfo, status *models.ReportStatus, sort SortQuery) (Paged[models.Report], error)
	DeleteReport(id uuid.UUID) (string, error)
	Health(ctx context.Context) error
}

// ReportRenderer turns normalized findings plus metadata into a binary
// document. Implementations must respect ctx cancellation; a timed out
// render is treated like any other render failure.
type ReportRenderer interface {
	RenderReport(ctx context.Context, data RenderData) ([]byte, error)
}

type RenderData struct {
	ExecutionID string
	Title       string
	Findings    []normalize.Finding
	Summary     normalize.SeveritySummary
	GeneratedAt time.Time
}

// ArtifactStore persists binary report files under derived, per-execution
// unique names. Deleting a missing file is not an error.
type ArtifactStore interface {
	FileName(executionID string, t time.Time) string
	Write(name string, data []byte) (string, error)
	// Delete reports whether the file existed before removal.
	Delete(path string) (bool, error)
	Open(name string) (io.ReadCloser, error)
	// Path resolves a bare file name inside the store, rejecting anything
	// that would escape the reports directory.
	Path(name string) (string, error)
	Dir() string
}
