package service

import (
	"context"
	"errors"
	"testing"

	"flagquiz/internal/domain/entities"
	"flagquiz/internal/repository"
)

type fakeSettingsRepo struct {
	settings map[int64]*entities.UserSettings
	creates  int
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[int64]*entities.UserSettings)}
}

func (r *fakeSettingsRepo) Create(_ context.Context, userID int64, roundLength int) error {
	r.creates++
	if _, ok := r.settings[userID]; !ok {
		s := entities.NewUserSettings(userID)
		s.RoundLength = roundLength
		r.settings[userID] = s
	}
	return nil
}

func (r *fakeSettingsRepo) GetByUserID(_ context.Context, userID int64) (*entities.UserSettings, error) {
	s, ok := r.settings[userID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	return s, nil
}

func (r *fakeSettingsRepo) UpdateContinent(_ context.Context, userID int64, continent string) error {
	s, ok := r.settings[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	s.Continent = continent
	return nil
}

func (r *fakeSettingsRepo) UpdateRoundLength(_ context.Context, userID int64, roundLength int) error {
	s, ok := r.settings[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	s.RoundLength = roundLength
	return nil
}

func (r *fakeSettingsRepo) ToggleSound(_ context.Context, userID int64) error {
	s, ok := r.settings[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	s.SoundEnabled = !s.SoundEnabled
	return nil
}

func (r *fakeSettingsRepo) ToggleReminder(_ context.Context, userID int64) error {
	s, ok := r.settings[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	s.ReminderEnabled = !s.ReminderEnabled
	return nil
}

func (r *fakeSettingsRepo) UpdateReminderHour(_ context.Context, userID int64, hour int) error {
	s, ok := r.settings[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	s.ReminderHour = hour
	return nil
}

func TestSettingsServiceGetOrCreate(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, entities.DefaultRoundLength)
	ctx := context.Background()

	settings, err := svc.GetOrCreate(ctx, 7)
	if err != nil {
		t.Fatalf("GetOrCreate() failed: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("Create called %d times, want 1", repo.creates)
	}
	if settings.Continent != entities.DefaultContinent {
		t.Fatalf("Continent = %q, want %q", settings.Continent, entities.DefaultContinent)
	}
	if settings.RoundLength != entities.DefaultRoundLength {
		t.Fatalf("RoundLength = %d, want %d", settings.RoundLength, entities.DefaultRoundLength)
	}
	if !settings.SoundEnabled {
		t.Fatalf("SoundEnabled = false by default")
	}
	if settings.ReminderEnabled {
		t.Fatalf("ReminderEnabled = true by default")
	}

	// Second call finds the existing row.
	if _, err := svc.GetOrCreate(ctx, 7); err != nil {
		t.Fatalf("second GetOrCreate() failed: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("Create called %d times after second GetOrCreate, want 1", repo.creates)
	}
}

func TestSettingsServiceGetOrCreateConfiguredRoundLength(t *testing.T) {
	tests := []struct {
		name       string
		configured int
		want       int
	}{
		{name: "configured length lands in new rows", configured: 15, want: 15},
		{name: "zero falls back to the built-in default", configured: 0, want: entities.DefaultRoundLength},
		{name: "negative falls back to the built-in default", configured: -5, want: entities.DefaultRoundLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeSettingsRepo()
			svc := NewSettingsService(repo, tt.configured)

			settings, err := svc.GetOrCreate(context.Background(), 7)
			if err != nil {
				t.Fatalf("GetOrCreate() failed: %v", err)
			}
			if settings.RoundLength != tt.want {
				t.Fatalf("RoundLength = %d, want %d", settings.RoundLength, tt.want)
			}
		})
	}
}

func TestSettingsServiceGetOrCreatePropagatesErrors(t *testing.T) {
	wantErr := errors.New("connection refused")
	svc := NewSettingsService(&failingSettingsRepo{err: wantErr}, entities.DefaultRoundLength)

	if _, err := svc.GetOrCreate(context.Background(), 7); !errors.Is(err, wantErr) {
		t.Fatalf("GetOrCreate() error = %v, want %v", err, wantErr)
	}
}

type failingSettingsRepo struct {
	fakeSettingsRepo
	err error
}

func (r *failingSettingsRepo) GetByUserID(_ context.Context, _ int64) (*entities.UserSettings, error) {
	return nil, r.err
}
