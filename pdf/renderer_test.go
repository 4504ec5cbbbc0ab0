// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/reportguard/reportguard/normalize"
	"github.com/reportguard/reportguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() shared.RenderData {
	return shared.RenderData{
		ExecutionID: "exec-1",
		Title:       "Security Report exec-1",
		Findings: []normalize.Finding{
			{
				ID:             "finding-1",
				Title:          "SQL injection in login form",
				Severity:       normalize.SeverityCritical,
				Description:    "User input is concatenated into a SQL statement.",
				Recommendation: "Use parameterized queries.",
				Timestamp:      "2025-06-01T12:00:00Z",
				Source:         "sqlmap",
			},
			{
				ID:       "finding-2",
				Title:    "Verbose server banner",
				Severity: normalize.Severity("INFO"),
			},
		},
		Summary:     normalize.SeveritySummary{Total: 2, Critical: 1},
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderReport(t *testing.T) {
	t.Run("should produce a pdf document", func(t *testing.T) {
		renderer := NewRenderer()

		document, err := renderer.RenderReport(context.Background(), sampleData())

		require.NoError(t, err)
		assert.NotEmpty(t, document)
		assert.Equal(t, "%PDF", string(document[:4]))
	})

	t.Run("should honor context cancellation", func(t *testing.T) {
		renderer := NewRenderer()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := renderer.RenderReport(ctx, sampleData())

		assert.ErrorIs(t, err, context.Canceled)
	})
}
