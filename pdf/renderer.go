// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

// Package pdf renders normalized security findings into a PDF document.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/reportguard/reportguard/normalize"
	"github.com/reportguard/reportguard/shared"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func severityColor(severity normalize.Severity) (int, int, int) {
	switch severity {
	case normalize.SeverityCritical:
		return 185, 28, 28
	case normalize.SeverityHigh:
		return 234, 88, 12
	case normalize.SeverityMedium:
		return 202, 138, 4
	case normalize.SeverityLow:
		return 22, 163, 74
	default:
		return 107, 114, 128
	}
}

func (r *Renderer) RenderReport(ctx context.Context, data shared.RenderData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(data.Title, true)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(107, 114, 128)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	r.titlePage(doc, data)
	r.summaryTable(doc, data.Summary)

	for i, finding := range data.Findings {
		// rendering large reports can take a while, honor cancellation
		// between findings
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.findingBlock(doc, i+1, finding)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "could not render pdf document")
	}
	return buf.Bytes(), nil
}

func (r *Renderer) titlePage(doc *gofpdf.Fpdf, data shared.RenderData) {
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(17, 24, 39)
	doc.CellFormat(0, 14, data.Title, "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(55, 65, 81)
	doc.CellFormat(0, 7, fmt.Sprintf("Execution: %s", data.ExecutionID), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, fmt.Sprintf("Generated: %s", data.GeneratedAt.UTC().Format(time.RFC3339)), "", 1, "L", false, 0, "")
	doc.Ln(6)
}

func (r *Renderer) summaryTable(doc *gofpdf.Fpdf, summary normalize.SeveritySummary) {
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(17, 24, 39)
	doc.CellFormat(0, 10, "Severity Summary", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(243, 244, 246)
	headers := []string{"Total", "Critical", "High", "Medium", "Low"}
	for _, h := range headers {
		doc.CellFormat(30, 8, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	counts := []int{summary.Total, summary.Critical, summary.High, summary.Medium, summary.Low}
	for _, c := range counts {
		doc.CellFormat(30, 8, fmt.Sprintf("%d", c), "1", 0, "C", false, 0, "")
	}
	doc.Ln(12)
}

func (r *Renderer) findingBlock(doc *gofpdf.Fpdf, position int, finding normalize.Finding) {
	red, green, blue := severityColor(finding.Severity)

	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(red, green, blue)
	doc.MultiCell(0, 7, fmt.Sprintf("%d. [%s] %s", position, finding.Severity, finding.Title), "", "L", false)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(31, 41, 55)
	doc.MultiCell(0, 5.5, finding.Description, "", "L", false)

	doc.SetFont("Helvetica", "I", 10)
	doc.MultiCell(0, 5.5, fmt.Sprintf("Recommendation: %s", finding.Recommendation), "", "L", false)

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(107, 114, 128)
	doc.MultiCell(0, 5, fmt.Sprintf("%s - %s - %s", finding.ID, finding.Source, finding.Timestamp), "", "L", false)
	doc.Ln(4)
}
