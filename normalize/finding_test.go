// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNormalizeFindings(t *testing.T) {
	t.Run("should default every field on an empty record", func(t *testing.T) {
		findings := NormalizeFindings([]map[string]any{{}}, testNow)

		assert.Len(t, findings, 1)
		assert.Equal(t, "finding-1", findings[0].ID)
		assert.Equal(t, "Untitled Finding", findings[0].Title)
		assert.Equal(t, SeverityMedium, findings[0].Severity)
		assert.Equal(t, "No description provided", findings[0].Description)
		assert.Equal(t, "No recommendation provided", findings[0].Recommendation)
		assert.Equal(t, "2025-06-01T12:00:00Z", findings[0].Timestamp)
		assert.Equal(t, "unknown", findings[0].Source)
	})

	t.Run("should resolve alternate source keys in priority order", func(t *testing.T) {
		findings := NormalizeFindings([]map[string]any{
			{
				"ruleId":      "G-101",
				"name":        "Weak TLS configuration",
				"level":       "high",
				"message":     "TLS 1.0 enabled",
				"remediation": "Disable TLS 1.0",
				"scanner":     "tlsaudit",
			},
			{
				"id":    "explicit-id",
				"title": "wins over name",
				"name":  "loses",
			},
		}, testNow)

		assert.Equal(t, "G-101", findings[0].ID)
		assert.Equal(t, "Weak TLS configuration", findings[0].Title)
		assert.Equal(t, SeverityHigh, findings[0].Severity)
		assert.Equal(t, "TLS 1.0 enabled", findings[0].Description)
		assert.Equal(t, "Disable TLS 1.0", findings[0].Recommendation)
		assert.Equal(t, "tlsaudit", findings[0].Source)

		assert.Equal(t, "explicit-id", findings[1].ID)
		assert.Equal(t, "wins over name", findings[1].Title)
	})

	t.Run("should preserve input order and positional ids", func(t *testing.T) {
		raw := []map[string]any{
			{"title": "first"},
			{"title": "second"},
			{"title": "third"},
		}

		findings := NormalizeFindings(raw, testNow)

		assert.Equal(t, []string{"first", "second", "third"}, []string{findings[0].Title, findings[1].Title, findings[2].Title})
		assert.Equal(t, "finding-2", findings[1].ID)
		assert.Equal(t, "finding-3", findings[2].ID)
	})

	t.Run("should stringify non string values", func(t *testing.T) {
		findings := NormalizeFindings([]map[string]any{
			{"id": float64(42), "severity": "critical"},
		}, testNow)

		assert.Equal(t, "42", findings[0].ID)
		assert.Equal(t, SeverityCritical, findings[0].Severity)
	})
}

func TestNormalizeSeverity(t *testing.T) {
	t.Run("should uppercase recognized values", func(t *testing.T) {
		assert.Equal(t, SeverityCritical, NormalizeSeverity("critical"))
		assert.Equal(t, SeverityLow, NormalizeSeverity("Low"))
		assert.Equal(t, SeverityHigh, NormalizeSeverity(" HIGH "))
	})

	t.Run("should default to medium when empty", func(t *testing.T) {
		assert.Equal(t, SeverityMedium, NormalizeSeverity(""))
		assert.Equal(t, SeverityMedium, NormalizeSeverity("   "))
	})

	t.Run("should pass unrecognized values through uppercased", func(t *testing.T) {
		severity := NormalizeSeverity("moderate")
		assert.Equal(t, Severity("MODERATE"), severity)
		assert.False(t, severity.Known())
	})
}
