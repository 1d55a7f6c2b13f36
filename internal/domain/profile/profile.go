// Package profile holds the guard's session name, profile card and alert
// preferences.
package profile

import (
	"strings"
	"unicode/utf8"

	"safewatch/internal/domain/validation"
)

var updateMessages = validation.Messages{
	"Name.min":    "El nombre no puede quedar vacío",
	"Email.email": "Ingrese un correo electrónico válido",
}

// Resolve returns the profile to display: the stored one if any, otherwise
// the defaults with the name taken from the session username.
func Resolve(username string, data UserData) Profile {
	p := Profile{
		Name:  DefaultFullName,
		Phone: DefaultPhone,
		Shift: DefaultShift,
		Zone:  DefaultZone,
		Email: DefaultEmail,
	}
	if username != "" {
		p.Name = username
	}
	if data.Profile == nil {
		return p
	}

	stored := *data.Profile
	if stored.Name != "" {
		p.Name = stored.Name
	}
	if stored.Phone != "" {
		p.Phone = stored.Phone
	}
	if stored.Shift != "" {
		p.Shift = stored.Shift
	}
	if stored.Zone != "" {
		p.Zone = stored.Zone
	}
	if stored.Email != "" {
		p.Email = stored.Email
	}
	return p
}

// Merge applies u to p field by field.
func Merge(p Profile, u Update) (Profile, error) {
	u.normalize()
	if err := validation.Struct(u, updateMessages); err != nil {
		return p, err
	}

	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	return p, nil
}

// normalize trims the set fields into fresh strings; the caller's values
// stay untouched.
func (u *Update) normalize() {
	for _, f := range []**string{&u.Name, &u.Email, &u.Phone} {
		if *f != nil {
			v := strings.TrimSpace(**f)
			*f = &v
		}
	}
}

// ResolveAlerts returns the stored alert settings or the defaults.
func ResolveAlerts(data UserData) AlertSettings {
	if data.Alerts == nil {
		return DefaultAlerts()
	}
	return *data.Alerts
}

// MergeAlerts applies u to a field by field.
func MergeAlerts(a AlertSettings, u AlertsUpdate) AlertSettings {
	if u.Rounds != nil {
		a.Rounds = *u.Rounds
	}
	if u.Incidents != nil {
		a.Incidents = *u.Incidents
	}
	if u.System != nil {
		a.System = *u.System
	}
	return a
}

// DisplayName is the name greeting the guard on the home page.
func DisplayName(username string) string {
	if username == "" {
		return DefaultGuardName
	}
	return username
}

// GuardID derives the badge id from the first three letters of the username.
func GuardID(username string) string {
	if username == "" {
		username = "guardia"
	}
	prefix := username
	if utf8.RuneCountInString(prefix) > 3 {
		prefix = string([]rune(prefix)[:3])
	}
	return "G-" + strings.ToUpper(prefix) + "1025"
}

// Initials returns up to two upper-case initials of name.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
		n++
		if n == 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}
