// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/reportguard/reportguard/database"
	"github.com/reportguard/reportguard/database/models"
	"github.com/reportguard/reportguard/normalize"
	"github.com/reportguard/reportguard/shared"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// FreshnessWindow is how long a completed report is served as-is before a
// new generate call supersedes it.
const FreshnessWindow = 60 * time.Minute

const DefaultRenderTimeout = 2 * time.Minute

var (
	ErrMissingExecutionID = errors.New("execution id is required")
	ErrNoFindings         = errors.New("findings must be a non-empty array")
)

// GenerationError wraps a renderer or persistence failure together with the
// id of the report record that was marked FAILED for it.
type GenerationError struct {
	ReportID uuid.UUID
	Name     string
	Err      error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type ReportService struct {
	reportRepository shared.ReportRepository
	renderer         shared.ReportRenderer
	artifacts        shared.ArtifactStore

	renderTimeout time.Duration

	// serializes generate calls per execution id. Two concurrent requests
	// for the same id share a single result instead of racing the
	// check-then-act freshness decision.
	group singleflight.Group

	now func() time.Time
}

func NewReportService(reportRepository shared.ReportRepository, renderer shared.ReportRenderer, artifacts shared.ArtifactStore, renderTimeout time.Duration) *ReportService {
	if renderTimeout <= 0 {
		renderTimeout = DefaultRenderTimeout
	}
	return &ReportService{
		reportRepository: reportRepository,
		renderer:         renderer,
		artifacts:        artifacts,
		renderTimeout:    renderTimeout,
		now:              time.Now,
	}
}

// GenerateReport drives one generate call end to end: reuse a fresh
// artifact, or supersede and regenerate.
func (s *ReportService) GenerateReport(ctx context.Context, executionID, title string, rawFindings []map[string]any) (models.Report, error) {
	if strings.TrimSpace(executionID) == "" {
		return models.Report{}, ErrMissingExecutionID
	}
	if len(rawFindings) == 0 {
		return models.Report{}, ErrNoFindings
	}

	result, err, _ := s.group.Do(executionID, func() (any, error) {
		return s.generate(ctx, executionID, title, rawFindings)
	})
	if err != nil {
		return models.Report{}, err
	}
	return result.(models.Report), nil
}

func (s *ReportService) generate(ctx context.Context, executionID, title string, rawFindings []map[string]any) (models.Report, error) {
	existing, reuse, err := s.resolve(executionID)
	if err != nil {
		return models.Report{}, err
	}
	if reuse {
		slog.Debug("reusing fresh report", "executionID", executionID, "reportID", existing.ID)
		return existing, nil
	}

	report, err := s.regenerate(ctx, executionID, title, rawFindings)
	if err == nil || !database.IsDuplicateKeyError(err) {
		return report, err
	}

	// another writer won the insert race on the execution id unique index.
	// resolve again and retry exactly once before surfacing the conflict.
	slog.Warn("duplicate execution id while creating report, retrying once", "executionID", executionID)
	existing, reuse, rerr := s.resolve(executionID)
	if rerr != nil {
		return models.Report{}, rerr
	}
	if reuse {
		return existing, nil
	}
	return s.regenerate(ctx, executionID, title, rawFindings)
}

// resolve is the freshness decision: reuse the stored report, or clear the
// way for regeneration by deleting the superseded artifact and record.
func (s *ReportService) resolve(executionID string) (models.Report, bool, error) {
	existing, err := s.reportRepository.FindByExecutionID(executionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Report{}, false, nil
		}
		return models.Report{}, false, err
	}

	fresh := existing.Status == models.ReportStatusCompleted &&
		existing.HasArtifact() &&
		s.now().Sub(existing.CreatedAt) < FreshnessWindow
	if fresh {
		return existing, true, nil
	}

	// stale, failed or artifact-less: supersede
	if existing.FilePath != nil {
		if _, err := s.artifacts.Delete(*existing.FilePath); err != nil {
			slog.Warn("could not delete superseded artifact", "path", *existing.FilePath, "err", err)
		}
	}
	if err := s.reportRepository.Delete(nil, existing.ID); err != nil {
		return models.Report{}, false, err
	}
	slog.Info("superseded stale report", "executionID", executionID, "reportID", existing.ID, "status", existing.Status)
	return models.Report{}, false, nil
}

func (s *ReportService) regenerate(ctx context.Context, executionID, title string, rawFindings []map[string]any) (models.Report, error) {
	now := s.now()
	findings := normalize.NormalizeFindings(rawFindings, now)
	summary := normalize.Summarize(findings)

	if title == "" {
		title = fmt.Sprintf("Security Report %s", executionID)
	}

	report := models.Report{
		ExecutionID:   executionID,
		Title:         title,
		InputFindings: models.RawFindings(rawFindings),
		Summary:       models.SeverityReportSummary(summary),
		Status:        models.ReportStatusProcessing,
		GeneratedAt:   now,
	}

	// this record is the unit of recovery: every failure below updates it
	// to FAILED instead of creating a new one.
	if err := s.reportRepository.Create(nil, &report); err != nil {
		return models.Report{}, err
	}

	renderCtx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()

	document, err := s.renderer.RenderReport(renderCtx, shared.RenderData{
		ExecutionID: executionID,
		Title:       title,
		Findings:    findings,
		Summary:     summary,
		GeneratedAt: now,
	})
	if err != nil {
		return models.Report{}, s.failReport(&report, "RenderError", err)
	}

	fileName := s.artifacts.FileName(executionID, s.now())
	path, err := s.artifacts.Write(fileName, document)
	if err != nil {
		return models.Report{}, s.failReport(&report, "StoreError", err)
	}

	if err := report.TransitionTo(models.ReportStatusCompleted); err != nil {
		return models.Report{}, s.failReport(&report, "StoreError", err)
	}
	report.FileName = &fileName
	report.FilePath = &path
	report.FileSize = shared.Ptr(int64(len(document)))

	if err := s.reportRepository.Save(nil, &report); err != nil {
		// the file is unreferenced without the completed record, do not
		// leak it
		if _, derr := s.artifacts.Delete(path); derr != nil {
			slog.Warn("could not delete unreferenced artifact", "path", path, "err", derr)
		}
		// the stored row still says PROCESSING, roll the in-memory copy
		// back so the FAILED transition is legal
		report.Status = models.ReportStatusProcessing
		return models.Report{}, s.failReport(&report, "StoreError", err)
	}

	slog.Info("report generated", "executionID", executionID, "reportID", report.ID, "fileName", fileName, "findings", summary.Total)
	return report, nil
}

// failReport best-effort marks the processing record as FAILED and always
// returns the original error. A failing status update is logged, never
// retried, so it cannot mask what actually went wrong.
func (s *ReportService) failReport(report *models.Report, errorName string, original error) error {
	report.Summary = models.FailureReportSummary(errorName, original.Error())
	report.FileName = nil
	report.FilePath = nil
	report.FileSize = nil

	if err := report.TransitionTo(models.ReportStatusFailed); err != nil {
		slog.Error("could not transition report to failed", "reportID", report.ID, "err", err, "originalErr", original)
	} else if err := s.reportRepository.Save(nil, report); err != nil {
		slog.Error("could not mark report as failed", "reportID", report.ID, "executionID", report.ExecutionID, "err", err, "originalErr", original)
	}
	return &GenerationError{ReportID: report.ID, Name: errorName, Err: original}
}

func (s *ReportService) GetReport(id uuid.UUID) (models.Report, error) {
	return s.reportRepository.Read(id)
}

func (s *ReportService) GetReportByExecutionID(executionID string) (models.Report, error) {
	return s.reportRepository.FindByExecutionID(executionID)
}

func (s *ReportService) ListReports(pageInfo shared.PageInfo, status *models.ReportStatus, sort shared.SortQuery) (shared.Paged[models.Report], error) {
	return s.reportRepository.FindAllPaged(pageInfo, status, sort)
}

// DeleteReport removes the record and its artifact file. It returns the
// path of the deleted file, empty when the file was already gone.
func (s *ReportService) DeleteReport(id uuid.UUID) (string, error) {
	report, err := s.reportRepository.Read(id)
	if err != nil {
		return "", err
	}

	deletedFile := ""
	if report.FilePath != nil {
		existed, err := s.artifacts.Delete(*report.FilePath)
		if err != nil {
			return "", err
		}
		if existed {
			deletedFile = *report.FilePath
		}
	}

	if err := s.reportRepository.Delete(nil, report.ID); err != nil {
		return "", err
	}
	return deletedFile, nil
}

func (s *ReportService) Health(ctx context.Context) error {
	return s.reportRepository.Ping(ctx)
}
