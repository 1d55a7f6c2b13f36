package incident

import (
	"fmt"
	"strings"
)

// Severity is the closed set of incident gravities. Values are persisted as is.
type Severity string

const (
	SeverityLow    Severity = "Baja"
	SeverityMedium Severity = "Media"
	SeverityHigh   Severity = "Alta"
)

// Severities lists every severity from least to most serious.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

// ParseSeverity accepts the stored values in any case plus the English names.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "baja", "low":
		return SeverityLow, nil
	case "media", "medium":
		return SeverityMedium, nil
	case "alta", "high":
		return SeverityHigh, nil
	}
	return "", fmt.Errorf("gravedad desconocida: %q", s)
}

func (s Severity) String() string {
	return string(s)
}

// Color is the display colour used for the severity badge.
func (s Severity) Color() string {
	switch strings.ToLower(string(s)) {
	case "alta":
		return "danger"
	case "media":
		return "warning"
	case "baja":
		return "success"
	default:
		return "medium"
	}
}
