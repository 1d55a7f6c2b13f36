package session

import (
	"time"

	"safewatch/internal/domain/profile"
)

type loginInput struct {
	Body profile.LoginRequest
}

type loginOutput struct {
	Body loginResponse
}

type loginResponse struct {
	Username string `json:"username"`
	GuardID  string `json:"guard_id"`
}

type logoutOutput struct{}

type profileOutput struct {
	Body profileResponse
}

type profileResponse struct {
	profile.Profile
	GuardID  string                `json:"guard_id"`
	Initials string                `json:"initials"`
	Alerts   profile.AlertSettings `json:"alerts"`
}

type emergencyOutput struct {
	Body emergencyResponse
}

type emergencyResponse struct {
	Status   string    `json:"status"`
	Guard    string    `json:"guard"`
	Zone     string    `json:"zone"`
	RaisedAt time.Time `json:"raised_at"`
}
