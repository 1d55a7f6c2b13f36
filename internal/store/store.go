// Package store persists rounds, incidents, the user-data blob and the
// session username as JSON values over a storage.KV medium.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"safewatch/internal/domain/incident"
	"safewatch/internal/domain/profile"
	"safewatch/internal/domain/round"
	"safewatch/internal/domain/stats"
	"safewatch/internal/infrastructure/storage"
)

const (
	KeyRounds    = "safewatch_rondas"
	KeyIncidents = "safewatch_incidentes"
	KeyUserData  = "safewatch_user_data"
	KeyUsername  = "safewatch_user"
)

// ErrStorage wraps every failure of the underlying medium.
var ErrStorage = errors.New("storage failure")

// MsgStorage is shown to the guard instead of the detail of a storage failure.
const MsgStorage = "No se pudo guardar la información. Intente nuevamente."

// Clock returns the current time; tests inject a fixed one.
type Clock func() time.Time

type Store struct {
	kv    storage.KV
	log   *slog.Logger
	clock Clock

	// serializes read-modify-write of a key within the process
	mu sync.Mutex
}

func New(kv storage.KV, log *slog.Logger, clock Clock) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		kv:    kv,
		log:   log.With("component", "store"),
		clock: clock,
	}
}

// Now is the store's notion of the current time.
func (s *Store) Now() time.Time {
	return s.clock()
}

// AppendRound puts r at the front of the rounds collection.
func (s *Store) AppendRound(ctx context.Context, r round.Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rounds, err := load[round.Round](ctx, s, KeyRounds)
	if err != nil {
		return err
	}
	return s.save(ctx, KeyRounds, append([]round.Round{r}, rounds...))
}

// AppendIncident puts i at the front of the incidents collection.
func (s *Store) AppendIncident(ctx context.Context, i incident.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	incidents, err := load[incident.Incident](ctx, s, KeyIncidents)
	if err != nil {
		return err
	}
	return s.save(ctx, KeyIncidents, append([]incident.Incident{i}, incidents...))
}

// Rounds returns every round, most recent first.
func (s *Store) Rounds(ctx context.Context) ([]round.Round, error) {
	return load[round.Round](ctx, s, KeyRounds)
}

// Incidents returns every incident, most recent first.
func (s *Store) Incidents(ctx context.Context) ([]incident.Incident, error) {
	return load[incident.Incident](ctx, s, KeyIncidents)
}

func (s *Store) RoundsToday(ctx context.Context) ([]round.Round, error) {
	rounds, err := s.Rounds(ctx)
	if err != nil {
		return nil, err
	}
	return stats.FilterToday(rounds, s.clock()), nil
}

func (s *Store) IncidentsToday(ctx context.Context) ([]incident.Incident, error) {
	incidents, err := s.Incidents(ctx)
	if err != nil {
		return nil, err
	}
	return stats.FilterToday(incidents, s.clock()), nil
}

// UserData returns the saved profile and alert settings. An absent or
// corrupt blob yields the zero value.
func (s *Store) UserData(ctx context.Context) (profile.UserData, error) {
	var data profile.UserData

	raw, ok, err := s.get(ctx, KeyUserData)
	if err != nil || !ok {
		return data, err
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		s.log.Warn("corrupt value ignored", "key", KeyUserData, "error", err)
		return profile.UserData{}, nil
	}
	return data, nil
}

func (s *Store) SaveUserData(ctx context.Context, data profile.UserData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, KeyUserData, data)
}

// UpdateUserData applies fn to the stored blob and saves the result under the
// store lock. fn also receives the current username. Nothing is written when
// fn fails.
func (s *Store) UpdateUserData(ctx context.Context, fn func(username string, data *profile.UserData) error) (profile.UserData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username, _, err := s.Username(ctx)
	if err != nil {
		return profile.UserData{}, err
	}
	data, err := s.UserData(ctx)
	if err != nil {
		return profile.UserData{}, err
	}
	if err := fn(username, &data); err != nil {
		return profile.UserData{}, err
	}
	if err := s.save(ctx, KeyUserData, data); err != nil {
		return profile.UserData{}, err
	}
	return data, nil
}

// Username returns the logged-in guard, ok=false when nobody is.
func (s *Store) Username(ctx context.Context) (string, bool, error) {
	name, ok, err := s.get(ctx, KeyUsername)
	if err != nil || !ok || name == "" {
		return "", false, err
	}
	return name, true, nil
}

func (s *Store) SetUsername(ctx context.Context, name string) error {
	if err := s.kv.Set(ctx, KeyUsername, name); err != nil {
		return fmt.Errorf("%w: set %s: %w", ErrStorage, KeyUsername, err)
	}
	return nil
}

// ClearAll removes every key the store owns.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, KeyRounds, KeyIncidents, KeyUserData, KeyUsername); err != nil {
		return fmt.Errorf("%w: clear: %w", ErrStorage, err)
	}
	s.log.Info("local data cleared")
	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %w", ErrStorage, key, err)
	}
	return v, ok, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("%w: set %s: %w", ErrStorage, key, err)
	}
	return nil
}

// load decodes a collection; absent, null or corrupt values are empty.
func load[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, ok, err := s.get(ctx, key)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if !ok {
		return items, nil
	}

	var decoded []T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		s.log.Warn("corrupt collection ignored", "key", key, "error", err)
		return items, nil
	}
	if decoded == nil {
		return items, nil
	}
	return decoded, nil
}
