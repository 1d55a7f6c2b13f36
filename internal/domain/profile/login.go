package profile

import (
	"strings"

	"safewatch/internal/domain/validation"
)

const (
	MinUsernameLen = 3
	MinPasswordLen = 4
)

// LoginRequest is the login form. No credential check exists: a valid form
// only records the username as the session owner.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
}

var loginMessages = validation.Messages{
	"Username.required": "Ingrese su usuario",
	"Username.min":      "Usuario debe tener al menos 3 caracteres",
	"Password.required": "Ingrese su contraseña",
	"Password.min":      "Contraseña debe tener al menos 4 caracteres",
}

// Validate trims the username and checks the form.
func (r *LoginRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	return validation.Struct(r, loginMessages)
}
