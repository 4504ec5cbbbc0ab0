// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/reportguard/reportguard/database/models"
)

// Envelope carries the fields every JSON response includes.
type Envelope struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

func NewEnvelope() Envelope {
	return Envelope{
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// GenerateReportRequest accepts both the camelCase and snake_case field
// names callers send: executionId/execution_id and findings/inputFindings.
type GenerateReportRequest struct {
	ExecutionID string           `validate:"required"`
	Title       string           `validate:"-"`
	Findings    []map[string]any `validate:"required,min=1"`
}

func (r *GenerateReportRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		ExecutionID      string           `json:"executionId"`
		ExecutionIDSnake string           `json:"execution_id"`
		Title            string           `json:"title"`
		Findings         []map[string]any `json:"findings"`
		InputFindings    []map[string]any `json:"inputFindings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ExecutionID = raw.ExecutionID
	if r.ExecutionID == "" {
		r.ExecutionID = raw.ExecutionIDSnake
	}
	r.Title = raw.Title
	r.Findings = raw.Findings
	if r.Findings == nil {
		r.Findings = raw.InputFindings
	}
	return nil
}

type PDFInfo struct {
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	DownloadURL string `json:"downloadUrl"`
	ViewURL     string `json:"viewUrl"`
	LocalPath   string `json:"localPath"`
}

type GenerateReportResponse struct {
	Envelope
	ReportID    uuid.UUID            `json:"reportId"`
	ExecutionID string               `json:"executionId"`
	Summary     models.ReportSummary `json:"summary"`
	PDF         *PDFInfo             `json:"pdf,omitempty"`
	Status      models.ReportStatus  `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type ReportDTO struct {
	ID            uuid.UUID            `json:"id"`
	ExecutionID   string               `json:"executionId"`
	Title         string               `json:"title"`
	InputFindings models.RawFindings   `json:"inputFindings,omitempty"`
	Summary       models.ReportSummary `json:"summary"`
	Status        models.ReportStatus  `json:"status"`
	PDF           *PDFInfo             `json:"pdf,omitempty"`
	GeneratedAt   time.Time            `json:"generatedAt"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type ReportResponse struct {
	Envelope
	Report ReportDTO `json:"report"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ReportListResponse struct {
	Envelope
	Data       []ReportDTO `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type DeleteReportResponse struct {
	Envelope
	Message     string `json:"message"`
	DeletedFile string `json:"deletedFile,omitempty"`
}

type HealthResponse struct {
	Envelope
	Database string `json:"database"`
}

func pdfInfo(report models.Report) *PDFInfo {
	if !report.HasArtifact() {
		return nil
	}
	return &PDFInfo{
		FileName:    *report.FileName,
		FileSize:    *report.FileSize,
		DownloadURL: "/api/v1/reports/download/" + *report.FileName,
		ViewURL:     "/api/v1/reports/view/" + *report.FileName,
		LocalPath:   *report.FilePath,
	}
}

func GenerateReportResponseFromModel(report models.Report) GenerateReportResponse {
	return GenerateReportResponse{
		Envelope:    NewEnvelope(),
		ReportID:    report.ID,
		ExecutionID: report.ExecutionID,
		Summary:     report.Summary,
		PDF:         pdfInfo(report),
		Status:      report.Status,
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
	}
}

func ReportDTOFromModel(report models.Report) ReportDTO {
	return ReportDTO{
		ID:            report.ID,
		ExecutionID:   report.ExecutionID,
		Title:         report.Title,
		InputFindings: report.InputFindings,
		Summary:       report.Summary,
		Status:        report.Status,
		PDF:           pdfInfo(report),
		GeneratedAt:   report.GeneratedAt,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
	}
}
