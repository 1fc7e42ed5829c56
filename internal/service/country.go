package service

import (
	"context"

	"flagquiz/internal/domain/entities"
)

type CountryRepository interface {
	GetByCode(_ context.Context, code string) (*entities.Country, error)
	GetRandom(_ context.Context) (*entities.Country, error)
	GetAll(_ context.Context) ([]entities.Country, error)
}

type CountryService struct {
	repository CountryRepository
}

func NewCountryService(repository CountryRepository) *CountryService {
	return &CountryService{repository: repository}
}

func (s *CountryService) GetByCode(ctx context.Context, code string) (*entities.Country, error) {
	return s.repository.GetByCode(ctx, code)
}

func (s *CountryService) GetRandom(ctx context.Context) (*entities.Country, error) {
	return s.repository.GetRandom(ctx)
}

func (s *CountryService) GetAll(ctx context.Context) ([]entities.Country, error) {
	return s.repository.GetAll(ctx)
}

// Continents lists the playable continents of the catalog, deduplicated
// and sorted ascending.
func (s *CountryService) Continents(ctx context.Context) ([]string, error) {
	countries, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return continentLabels(countries), nil
}
