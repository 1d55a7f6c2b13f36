package incident

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"safewatch/internal/domain/incident"
	"safewatch/internal/domain/validation"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ReportIncident(ctx context.Context, req incident.ReportRequest) (incident.Incident, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(incident.Incident), args.Error(1)
}

func (m *MockService) Incidents(ctx context.Context, today bool) ([]incident.Incident, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]incident.Incident), args.Error(1)
}

func TestHandler_report(t *testing.T) {
	svc := new(MockService)
	want := incident.Incident{ID: "x", Type: "Robo", Severity: incident.SeverityHigh, Description: "Robo en bodega"}
	svc.On("ReportIncident", mock.Anything, incident.ReportRequest{
		Type: "Robo", Description: "Robo en bodega", Severity: "high",
	}).Return(want, nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	out, err := h.report(context.Background(), &reportInput{Body: reportIncidentRequest{Type: "Robo", Description: "Robo en bodega", Severity: "high"}})

	require.NoError(t, err)
	assert.Equal(t, want, out.Body)
	svc.AssertExpectations(t)
}

func TestHandler_report_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation",
			err:        &validation.ValidationError{Field: "Description", Tag: "min", Message: "La descripción debe tener al menos 10 caracteres"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "storage",
			err:        errors.New("pool closed"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("ReportIncident", mock.Anything, mock.Anything).Return(incident.Incident{}, tt.err)

			h := NewHandler(svc, slog.Default(), huma.Middlewares{})
			_, err := h.report(context.Background(), &reportInput{Body: reportIncidentRequest{Type: "Robo", Description: "corta"}})

			var se huma.StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantStatus, se.GetStatus())
		})
	}
}

func TestHandler_list(t *testing.T) {
	svc := new(MockService)
	svc.On("Incidents", mock.Anything, true).Return([]incident.Incident{{ID: "1"}}, nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	out, err := h.today(context.Background(), &struct{}{})

	require.NoError(t, err)
	assert.Len(t, out.Body, 1)
	svc.AssertExpectations(t)
}
