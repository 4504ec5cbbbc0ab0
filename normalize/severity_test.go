// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("should count each level exactly", func(t *testing.T) {
		summary := Summarize([]Finding{
			{Severity: SeverityCritical},
			{Severity: SeverityCritical},
			{Severity: SeverityHigh},
			{Severity: SeverityMedium},
			{Severity: SeverityLow},
		})

		assert.Equal(t, SeveritySummary{Total: 5, Critical: 2, High: 1, Medium: 1, Low: 1}, summary)
	})

	t.Run("unrecognized severities count toward total only", func(t *testing.T) {
		findings := []Finding{
			{Severity: SeverityHigh},
			{Severity: Severity("MODERATE")},
			{Severity: Severity("INFO")},
		}

		summary := Summarize(findings)

		assert.Equal(t, 3, summary.Total)
		assert.Equal(t, 1, summary.High)

		unrecognized := 0
		for _, f := range findings {
			if !f.Severity.Known() {
				unrecognized++
			}
		}
		assert.Equal(t, summary.Total, summary.Critical+summary.High+summary.Medium+summary.Low+unrecognized)
	})

	t.Run("empty input yields zero counts", func(t *testing.T) {
		assert.Equal(t, SeveritySummary{}, Summarize(nil))
	})
}
