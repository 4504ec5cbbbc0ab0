// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package normalize

import (
	"fmt"
	"strings"
	"time"
)

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Known reports whether the severity is one of the four canonical levels.
// Scanners emit all sorts of values; anything else is passed through
// uppercased and only counts toward the summary total.
func (s Severity) Known() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

func NormalizeSeverity(raw string) Severity {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SeverityMedium
	}
	return Severity(strings.ToUpper(raw))
}

// Finding is the canonical shape every raw scanner record is mapped into.
// All fields are defaulted, the normalizer never rejects a record.
type Finding struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	Timestamp      string   `json:"timestamp"`
	Source         string   `json:"source"`
}

// alternate source keys per attribute, in priority order. Scanners disagree
// on naming, the first present non-empty key wins.
var (
	idKeys             = []string{"id", "findingId", "finding_id", "ruleId", "rule_id"}
	titleKeys          = []string{"title", "name", "rule", "check"}
	severityKeys       = []string{"severity", "level", "riskRating", "risk_rating"}
	descriptionKeys    = []string{"description", "message", "details"}
	recommendationKeys = []string{"recommendation", "remediation", "fix", "solution"}
	timestampKeys      = []string{"timestamp", "detectedAt", "detected_at", "time"}
	sourceKeys         = []string{"source", "scanner", "tool"}
)

// NormalizeFindings maps raw, loosely structured records into canonical
// findings, order preserving. now is used for defaulted timestamps so the
// mapping stays deterministic for callers.
func NormalizeFindings(raw []map[string]any, now time.Time) []Finding {
	findings := make([]Finding, len(raw))
	for i, record := range raw {
		findings[i] = normalizeFinding(record, i, now)
	}
	return findings
}

func normalizeFinding(record map[string]any, index int, now time.Time) Finding {
	return Finding{
		ID:             stringField(record, idKeys, fmt.Sprintf("finding-%d", index+1)),
		Title:          stringField(record, titleKeys, "Untitled Finding"),
		Severity:       NormalizeSeverity(stringField(record, severityKeys, "")),
		Description:    stringField(record, descriptionKeys, "No description provided"),
		Recommendation: stringField(record, recommendationKeys, "No recommendation provided"),
		Timestamp:      stringField(record, timestampKeys, now.UTC().Format(time.RFC3339)),
		Source:         stringField(record, sourceKeys, "unknown"),
	}
}

func stringField(record map[string]any, keys []string, fallback string) string {
	for _, key := range keys {
		v, ok := record[key]
		if !ok {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s
			}
		case fmt.Stringer:
			return s.String()
		case float64, int, int64, bool:
			return fmt.Sprintf("%v", s)
		}
	}
	return fallback
}
