package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"flagquiz/internal/domain/entities"
)

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrEmptyCatalog    = errors.New("country catalog is empty")
)

// CountryRepository provides access to the static country catalog. The
// catalog is loaded from a JSON asset once at startup, validated, and
// read-only afterwards.
type CountryRepository struct {
	countries []entities.Country
	byCode    map[string]int
}

// NewCountryRepository loads the catalog at path.
func NewCountryRepository(path string) (*CountryRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return NewCountryRepositoryFromBytes(data)
}

// NewCountryRepositoryFromBytes loads the catalog from raw JSON, e.g.
// the embedded default catalog.
func NewCountryRepositoryFromBytes(data []byte) (*CountryRepository, error) {
	countries, err := parseCatalog(data)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]int, len(countries))
	for i, c := range countries {
		byCode[c.Code] = i
	}

	return &CountryRepository{
		countries: countries,
		byCode:    byCode,
	}, nil
}

// GetByCode retrieves a country by its alpha-2 code, case-insensitively.
func (r *CountryRepository) GetByCode(_ context.Context, code string) (*entities.Country, error) {
	i, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ErrCountryNotFound
	}

	c := r.countries[i]
	return &c, nil
}

// GetRandom retrieves a random catalog entry.
func (r *CountryRepository) GetRandom(_ context.Context) (*entities.Country, error) {
	if len(r.countries) == 0 {
		return nil, ErrCountryNotFound
	}

	c := r.countries[rand.Intn(len(r.countries))]
	return &c, nil
}

// GetAll retrieves the whole catalog. The returned slice is the caller's
// to keep.
func (r *CountryRepository) GetAll(_ context.Context) ([]entities.Country, error) {
	out := make([]entities.Country, len(r.countries))
	copy(out, r.countries)
	return out, nil
}

// Len reports the catalog size.
func (r *CountryRepository) Len() int {
	return len(r.countries)
}

func parseCatalog(data []byte) ([]entities.Country, error) {
	var wrapper struct {
		Countries []entities.Country `json:"countries"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}

	if len(wrapper.Countries) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(wrapper.Countries))
	for i := range wrapper.Countries {
		c := &wrapper.Countries[i]
		c.Code = strings.ToUpper(strings.TrimSpace(c.Code))

		if len(c.Code) != 2 || c.Code[0] < 'A' || c.Code[0] > 'Z' || c.Code[1] < 'A' || c.Code[1] > 'Z' {
			return nil, fmt.Errorf("catalog entry %d: invalid country code %q", i, c.Code)
		}
		if _, dup := seen[c.Code]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate country code %q", i, c.Code)
		}
		seen[c.Code] = struct{}{}

		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("catalog entry %d (%s): empty name", i, c.Code)
		}
		if strings.TrimSpace(c.Continent) == "" {
			return nil, fmt.Errorf("catalog entry %d (%s): empty continent", i, c.Code)
		}
	}

	return wrapper.Countries, nil
}
