package service

import (
	"math/rand"
	"testing"

	"flagquiz/internal/domain/entities"
)

func generatorPool() []entities.Country {
	return []entities.Country{
		{Code: "FR", Name: "France", Continent: "Europe"},
		{Code: "DE", Name: "Germany", Continent: "Europe"},
		{Code: "IT", Name: "Italy", Continent: "Europe"},
		{Code: "ES", Name: "Spain", Continent: "Europe"},
		{Code: "JP", Name: "Japan", Continent: "Asia"},
		{Code: "CN", Name: "China", Continent: "Asia"},
		{Code: "BR", Name: "Brazil", Continent: "South America"},
		{Code: "AR", Name: "Argentina", Continent: "South America"},
		{Code: "EG", Name: "Egypt", Continent: "Africa"},
		{Code: "AU", Name: "Australia", Continent: "Oceania"},
	}
}

func TestGeneratorGenerateCount(t *testing.T) {
	tests := []struct {
		name  string
		pool  []entities.Country
		count int
		want  int
	}{
		{name: "full round", pool: generatorPool(), count: 10, want: 10},
		{name: "partial round", pool: generatorPool(), count: 3, want: 3},
		{name: "count above pool size truncates", pool: generatorPool()[:5], count: 10, want: 5},
		{name: "zero count", pool: generatorPool(), count: 0, want: 0},
		{name: "negative count", pool: generatorPool(), count: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(rand.New(rand.NewSource(1)))

			questions := gen.Generate(tt.pool, tt.count)
			if len(questions) != tt.want {
				t.Fatalf("Generate() produced %d questions, want %d", len(questions), tt.want)
			}
		})
	}
}

func TestGeneratorQuestionShape(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)))
	pool := generatorPool()

	questions := gen.Generate(pool, len(pool))

	targets := make(map[string]struct{}, len(questions))
	for i, q := range questions {
		if q.CorrectCode != q.Target.Code {
			t.Fatalf("question %d: CorrectCode %q does not match target %q", i, q.CorrectCode, q.Target.Code)
		}

		if _, dup := targets[q.Target.Code]; dup {
			t.Fatalf("question %d: target %q repeated within the round", i, q.Target.Code)
		}
		targets[q.Target.Code] = struct{}{}

		if len(q.Options) != optionsPerQuestion {
			t.Fatalf("question %d: got %d options, want %d", i, len(q.Options), optionsPerQuestion)
		}

		seen := make(map[string]struct{}, len(q.Options))
		correct := 0
		for _, opt := range q.Options {
			if _, dup := seen[opt.Code]; dup {
				t.Fatalf("question %d: option %q repeated", i, opt.Code)
			}
			seen[opt.Code] = struct{}{}

			if opt.Code == q.CorrectCode {
				correct++
			}
		}
		if correct != 1 {
			t.Fatalf("question %d: %d options match the correct code, want exactly 1", i, correct)
		}
	}
}

func TestGeneratorDoesNotModifyPool(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)))

	pool := generatorPool()
	before := make([]entities.Country, len(pool))
	copy(before, pool)

	gen.Generate(pool, len(pool))

	for i := range pool {
		if pool[i] != before[i] {
			t.Fatalf("Generate() reordered the input pool at %d: got %q, want %q", i, pool[i].Code, before[i].Code)
		}
	}
}

func TestGeneratorDeterministicPerSeed(t *testing.T) {
	const seed = 11

	pool := generatorPool()
	first := NewGenerator(rand.New(rand.NewSource(seed))).Generate(pool, len(pool))
	second := NewGenerator(rand.New(rand.NewSource(seed))).Generate(pool, len(pool))

	if len(first) != len(second) {
		t.Fatalf("equally seeded generators produced %d and %d questions", len(first), len(second))
	}

	for i := range first {
		if first[i].CorrectCode != second[i].CorrectCode {
			t.Fatalf("question %d: target order diverged: %q vs %q", i, first[i].CorrectCode, second[i].CorrectCode)
		}
		for j := range first[i].Options {
			if first[i].Options[j].Code != second[i].Options[j].Code {
				t.Fatalf("question %d: option order diverged at %d", i, j)
			}
		}
	}
}
