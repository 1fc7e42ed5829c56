package service

import (
	"math/rand"

	"flagquiz/internal/domain/entities"
)

// optionsPerQuestion is the number of choices shown per question: the
// correct country plus three distractors.
const optionsPerQuestion = 4

// Generator builds randomized flag questions from a country pool. It is
// driven entirely by the injected random source, so two generators with
// equally seeded sources produce identical rounds.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate produces up to count questions from pool. Targets are drawn
// without replacement, so no flag is asked twice within a round; when the
// pool holds fewer than count countries the round shrinks to the pool
// size, and a non-positive count yields no questions. Distractors may
// repeat across questions. The pool must hold at least optionsPerQuestion
// countries; callers check that before calling. The input slice is not
// modified.
func (g *Generator) Generate(pool []entities.Country, count int) []entities.Question {
	targets := make([]entities.Country, len(pool))
	copy(targets, pool)
	shuffle(g.rng, targets)

	if count < 0 {
		count = 0
	}
	if count > len(targets) {
		count = len(targets)
	}

	questions := make([]entities.Question, 0, count)
	for _, target := range targets[:count] {
		questions = append(questions, g.buildQuestion(target, pool))
	}

	return questions
}

// buildQuestion draws three distractors for the target and shuffles the
// presentation order of the four options.
func (g *Generator) buildQuestion(target entities.Country, pool []entities.Country) entities.Question {
	distractors := g.randomDistractors(pool, target.Code, optionsPerQuestion-1)

	options := make([]entities.Country, 0, optionsPerQuestion)
	options = append(options, target)
	options = append(options, distractors...)
	shuffle(g.rng, options)

	return entities.Question{
		Target:      target,
		Options:     options,
		CorrectCode: target.Code,
	}
}

func (g *Generator) randomDistractors(pool []entities.Country, targetCode string, count int) []entities.Country {
	candidates := make([]entities.Country, 0, len(pool))
	for _, c := range pool {
		if c.Code != targetCode {
			candidates = append(candidates, c)
		}
	}

	if len(candidates) <= count {
		return candidates
	}

	shuffle(g.rng, candidates)

	return candidates[:count]
}
