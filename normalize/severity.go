// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package normalize

// SeveritySummary aggregates canonical findings by severity level.
// Findings with an unrecognized severity count toward Total only, so
// Total >= Critical+High+Medium+Low.
type SeveritySummary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

func Summarize(findings []Finding) SeveritySummary {
	summary := SeveritySummary{Total: len(findings)}
	for _, finding := range findings {
		switch finding.Severity {
		case SeverityCritical:
			summary.Critical++
		case SeverityHigh:
			summary.High++
		case SeverityMedium:
			summary.Medium++
		case SeverityLow:
			summary.Low++
		}
	}
	return summary
}
