package service

import (
	"context"
	"errors"
	"testing"

	"flagquiz/internal/domain/entities"
	"flagquiz/internal/repository"
)

type fakeCountryRepo struct {
	countries []entities.Country
	err       error
}

func (r *fakeCountryRepo) GetByCode(_ context.Context, code string) (*entities.Country, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.countries {
		if c.Code == code {
			out := c
			return &out, nil
		}
	}
	return nil, repository.ErrCountryNotFound
}

func (r *fakeCountryRepo) GetRandom(_ context.Context) (*entities.Country, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.countries) == 0 {
		return nil, repository.ErrCountryNotFound
	}
	out := r.countries[0]
	return &out, nil
}

func (r *fakeCountryRepo) GetAll(_ context.Context) ([]entities.Country, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.countries, nil
}

func TestCountryServiceGetByCode(t *testing.T) {
	svc := NewCountryService(&fakeCountryRepo{countries: fiveCountries()})
	ctx := context.Background()

	c, err := svc.GetByCode(ctx, "JP")
	if err != nil {
		t.Fatalf("GetByCode(JP) failed: %v", err)
	}
	if c.Name != "Japan" {
		t.Fatalf("GetByCode(JP).Name = %q, want Japan", c.Name)
	}

	if _, err := svc.GetByCode(ctx, "XX"); !errors.Is(err, repository.ErrCountryNotFound) {
		t.Fatalf("GetByCode(XX) error = %v, want %v", err, repository.ErrCountryNotFound)
	}
}

func TestCountryServiceContinents(t *testing.T) {
	catalog := append(fiveCountries(),
		entities.Country{Code: "AQ", Name: "Antarctica", Continent: "Antarctica"},
	)
	svc := NewCountryService(&fakeCountryRepo{countries: catalog})

	got, err := svc.Continents(context.Background())
	if err != nil {
		t.Fatalf("Continents() failed: %v", err)
	}

	want := []string{"Asia", "Europe", "South America"}
	if len(got) != len(want) {
		t.Fatalf("Continents() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Continents()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCountryServicePropagatesErrors(t *testing.T) {
	wantErr := errors.New("catalog unavailable")
	svc := NewCountryService(&fakeCountryRepo{err: wantErr})
	ctx := context.Background()

	if _, err := svc.GetByCode(ctx, "JP"); !errors.Is(err, wantErr) {
		t.Fatalf("GetByCode() error = %v, want %v", err, wantErr)
	}
	if _, err := svc.Continents(ctx); !errors.Is(err, wantErr) {
		t.Fatalf("Continents() error = %v, want %v", err, wantErr)
	}
}
