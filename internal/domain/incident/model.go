package incident

import (
	"fmt"
	"strings"
	"time"

	"safewatch/internal/domain/timestamp"
	"safewatch/internal/domain/validation"

	"github.com/google/uuid"
)

const MinDescriptionLen = 10

// Incident is one reported security incident. It is never modified after
// creation.
type Incident struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
}

// Stamp returns the stored date string.
func (i Incident) Stamp() string {
	return i.Date
}

// ReportRequest is the incident form. An empty severity means SeverityLow.
type ReportRequest struct {
	Type        string   `json:"type" validate:"required"`
	Description string   `json:"description" validate:"required,min=10"`
	Severity    Severity `json:"severity" validate:"oneof=Baja Media Alta"`
}

var messages = validation.Messages{
	"Type.required":        "Ingrese el tipo de incidente",
	"Description.required": "Ingrese una descripción del incidente",
	"Description.min":      fmt.Sprintf("La descripción debe tener al menos %d caracteres", MinDescriptionLen),
	"Severity.oneof":       "La gravedad debe ser Baja, Media o Alta",
}

// Normalize trims the free-text fields and canonicalizes the severity.
func (r *ReportRequest) Normalize() {
	r.Type = strings.TrimSpace(r.Type)
	r.Description = strings.TrimSpace(r.Description)
	if strings.TrimSpace(string(r.Severity)) == "" {
		r.Severity = SeverityLow
		return
	}
	if s, err := ParseSeverity(string(r.Severity)); err == nil {
		r.Severity = s
	}
}

// Validate normalizes and checks the form.
func (r *ReportRequest) Validate() error {
	r.Normalize()
	return validation.Struct(r, messages)
}

// New validates req and builds an incident stamped at now.
func New(req ReportRequest, now time.Time) (Incident, error) {
	if err := req.Validate(); err != nil {
		return Incident{}, err
	}

	return Incident{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Severity:    req.Severity,
		Description: req.Description,
		Date:        timestamp.Format(now),
	}, nil
}
