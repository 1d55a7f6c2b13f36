package incident

import (
	"testing"
	"time"

	"safewatch/internal/domain/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2026, time.October, 17, 2, 30, 0, 0, time.Local)

	inc, err := New(ReportRequest{
		Type:        " Intrusión ",
		Description: "  Persona no autorizada en el perímetro  ",
		Severity:    "alta",
	}, now)
	require.NoError(t, err)

	assert.NotEmpty(t, inc.ID)
	assert.Equal(t, "Intrusión", inc.Type)
	assert.Equal(t, SeverityHigh, inc.Severity)
	assert.Equal(t, "Persona no autorizada en el perímetro", inc.Description)
	assert.Equal(t, "17/10/2026, 02:30", inc.Date)
}

func TestNew_DefaultSeverity(t *testing.T) {
	inc, err := New(ReportRequest{Type: "Ruido", Description: "Alarma de auto sonando"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, SeverityLow, inc.Severity)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  ReportRequest
		msg  string
	}{
		{
			name: "empty type",
			req:  ReportRequest{Type: " ", Description: "Descripción suficiente"},
			msg:  "Ingrese el tipo de incidente",
		},
		{
			name: "empty description",
			req:  ReportRequest{Type: "Robo", Description: ""},
			msg:  "Ingrese una descripción del incidente",
		},
		{
			name: "short description",
			req:  ReportRequest{Type: "Robo", Description: "  corta  "},
			msg:  "La descripción debe tener al menos 10 caracteres",
		},
		{
			name: "unknown severity",
			req:  ReportRequest{Type: "Robo", Description: "Descripción suficiente", Severity: "Crítica"},
			msg:  "La gravedad debe ser Baja, Media o Alta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.req, time.Now())
			require.ErrorIs(t, err, validation.ErrValidation)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{in: "Baja", want: SeverityLow},
		{in: "MEDIA", want: SeverityMedium},
		{in: "high", want: SeverityHigh},
		{in: " low ", want: SeverityLow},
		{in: "urgente", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_Color(t *testing.T) {
	assert.Equal(t, "danger", SeverityHigh.Color())
	assert.Equal(t, "warning", SeverityMedium.Color())
	assert.Equal(t, "success", SeverityLow.Color())
	assert.Equal(t, "medium", Severity("otra").Color())
}
