package round

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

	"safewatch/internal/domain/round"
	"safewatch/internal/domain/validation"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateRound(ctx context.Context, req round.CreateRequest) (round.Round, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(round.Round), args.Error(1)
}

func (m *MockService) Rounds(ctx context.Context, today bool) ([]round.Round, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]round.Round), args.Error(1)
}

func newHandler(svc *MockService) *Handler {
	return NewHandler(svc, slog.Default(), huma.Middlewares{})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_list(t *testing.T) {
	svc := new(MockService)
	rounds := []round.Round{{ID: "2", Area: "Lobby"}, {ID: "1", Area: "Patio"}}
	svc.On("Rounds", mock.Anything, false).Return(rounds, nil)
	svc.On("Rounds", mock.Anything, true).Return(rounds[:1], nil)

	h := newHandler(svc)

	out, err := h.list(context.Background(), &listInput{})
	require.NoError(t, err)
	assert.Equal(t, rounds, out.Body)

	out, err = h.today(context.Background(), &struct{}{})
	require.NoError(t, err)
	assert.Len(t, out.Body, 1)

	svc.AssertExpectations(t)
}

func TestHandler_list_StorageError(t *testing.T) {
	svc := new(MockService)
	svc.On("Rounds", mock.Anything, false).Return([]round.Round(nil), errors.New("redis down"))

	_, err := newHandler(svc).list(context.Background(), &listInput{})
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}

func TestHandler_create(t *testing.T) {
	tests := []struct {
		name       string
		body       createRoundRequest
		result     round.Round
		err        error
		wantStatus int
	}{
		{
			name:   "created",
			body:   createRoundRequest{Area: "Lobby", Notes: "Sin novedades", Location: &round.Coordinates{Lat: 1, Lng: 2}},
			result: round.Round{ID: "abc", Area: "Lobby", Notes: "Sin novedades", Location: "Lat: 1.000000, Lng: 2.000000"},
		},
		{
			name:       "validation error",
			body:       createRoundRequest{Area: "Lobby", Notes: "ok"},
			err:        &validation.ValidationError{Field: "Notes", Tag: "min", Message: "Las observaciones deben tener al menos 5 caracteres"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "storage error",
			body:       createRoundRequest{Area: "Lobby", Notes: "Sin novedades"},
			err:        errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("CreateRound", mock.Anything, round.CreateRequest{
				Area:     tt.body.Area,
				Notes:    tt.body.Notes,
				Location: tt.body.Location,
			}).Return(tt.result, tt.err)

			out, err := newHandler(svc).create(context.Background(), &createInput{Body: tt.body})
			if tt.wantStatus != 0 {
				assert.Nil(t, out)
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result, out.Body)
			svc.AssertExpectations(t)
		})
	}
}
