package profile

const (
	DefaultGuardName = "Guardia"
	DefaultFullName  = "Guardia de Seguridad"
	DefaultPhone     = "+56 9 1234 5678"
	DefaultShift     = "Nocturno (22:00 - 06:00)"
	DefaultZone      = "Edificio Principal + Estacionamiento"
	DefaultEmail     = "guardia@seguridad.cl"
)

// Profile is the guard's contact card shown on the profile page.
type Profile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Shift string `json:"shift"`
	Zone  string `json:"zone"`
	Email string `json:"email"`
}

// AlertSettings selects which notifications the guard wants.
type AlertSettings struct {
	Rounds    bool `json:"rounds"`
	Incidents bool `json:"incidents"`
	System    bool `json:"system"`
}

// DefaultAlerts enables round reminders and critical incident alerts.
func DefaultAlerts() AlertSettings {
	return AlertSettings{Rounds: true, Incidents: true}
}

// UserData is the blob persisted under the user-data key. Nil members were
// never saved.
type UserData struct {
	Profile *Profile       `json:"profile,omitempty"`
	Alerts  *AlertSettings `json:"alerts,omitempty"`
}

// Update carries the editable profile fields; nil means unchanged.
type Update struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}

// AlertsUpdate carries the editable alert switches; nil means unchanged.
type AlertsUpdate struct {
	Rounds    *bool `json:"rounds,omitempty"`
	Incidents *bool `json:"incidents,omitempty"`
	System    *bool `json:"system,omitempty"`
}
