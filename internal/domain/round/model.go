package round

import (
	"fmt"
	"strings"
	"time"

	"safewatch/internal/domain/timestamp"
	"safewatch/internal/domain/validation"

	"github.com/google/uuid"
)

// LocationNotRecorded is stored when the guard did not attach coordinates.
const LocationNotRecorded = "No registrada"

const MinNotesLen = 5

// Round is one logged patrol. It is never modified after creation.
type Round struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Area     string `json:"area"`
	Notes    string `json:"notes"`
	Location string `json:"location"`
}

// Stamp returns the stored date string.
func (r Round) Stamp() string {
	return r.Date
}

// Coordinates is an optional GPS fix typed in by the guard.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// String renders the fix the way it is persisted.
func (c Coordinates) String() string {
	return fmt.Sprintf("Lat: %.6f, Lng: %.6f", c.Lat, c.Lng)
}

// CreateRequest is the patrol form.
type CreateRequest struct {
	Area     string       `json:"area" validate:"required"`
	Notes    string       `json:"notes" validate:"required,min=5"`
	Location *Coordinates `json:"location,omitempty"`
}

var messages = validation.Messages{
	"Area.required":  "Seleccione o ingrese el área de la ronda",
	"Notes.required": "Ingrese las observaciones de la ronda",
	"Notes.min":      fmt.Sprintf("Las observaciones deben tener al menos %d caracteres", MinNotesLen),
	"Lat.latitude":   "Latitud fuera de rango",
	"Lng.longitude":  "Longitud fuera de rango",
}

// Normalize trims the free-text fields in place.
func (r *CreateRequest) Normalize() {
	r.Area = strings.TrimSpace(r.Area)
	r.Notes = strings.TrimSpace(r.Notes)
}

// Validate normalizes and checks the form.
func (r *CreateRequest) Validate() error {
	r.Normalize()
	return validation.Struct(r, messages)
}

// New validates req and builds a round stamped at now.
func New(req CreateRequest, now time.Time) (Round, error) {
	if err := req.Validate(); err != nil {
		return Round{}, err
	}

	location := LocationNotRecorded
	if req.Location != nil {
		location = req.Location.String()
	}

	return Round{
		ID:       uuid.NewString(),
		Date:     timestamp.Format(now),
		Area:     req.Area,
		Notes:    req.Notes,
		Location: location,
	}, nil
}
