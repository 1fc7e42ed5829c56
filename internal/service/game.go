package service

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"flagquiz/internal/domain/entities"
	"flagquiz/internal/random"
)

// ContinentAll selects the whole catalog when starting a round.
const ContinentAll = "all"

// excludedContinent is never offered as a playable category: the few
// Antarctic territories in the catalog cannot fill a question.
const excludedContinent = "Antarctica"

// ErrInsufficientPool is returned by Start when the filtered pool cannot
// supply one target and three distractors.
var ErrInsufficientPool = errors.New("not enough countries in pool")

// Game is the state machine of one quiz session: it owns the active
// round's questions, position and score. Rounds move strictly forward;
// starting over is the only way back. A Game is not safe for concurrent
// use, callers serialize access per chat.
type Game struct {
	catalog []entities.Country
	length  int
	gen     *Generator

	continent string
	questions []entities.Question
	current   int
	score     int
	answered  bool
}

// NewGame creates a session over the given catalog with length questions
// per round; a non-positive length falls back to the default round
// length. A nil rng gets a fresh source seeded from crypto/rand; tests
// pass a seeded source to fix the question order.
func NewGame(catalog []entities.Country, length int, rng *rand.Rand) *Game {
	if length <= 0 {
		length = entities.DefaultRoundLength
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(random.Seed()))
	}

	return &Game{
		catalog: catalog,
		length:  length,
		gen:     NewGenerator(rng),
	}
}

// Start begins a round over the countries of the given continent, or the
// whole catalog for ContinentAll or an empty filter. Any previous round
// is discarded, including its score. It fails with ErrInsufficientPool
// when the filter leaves fewer than four countries; the previous round
// state is discarded either way.
func (g *Game) Start(continent string) error {
	continent = strings.TrimSpace(continent)
	if continent == "" {
		continent = ContinentAll
	}

	g.continent = continent
	g.questions = nil
	g.current = 0
	g.score = 0
	g.answered = false

	pool := filterByContinent(g.catalog, continent)
	if len(pool) < optionsPerQuestion {
		return ErrInsufficientPool
	}

	g.questions = g.gen.Generate(pool, g.length)

	return nil
}

// Continent is the filter the current round was started with.
func (g *Game) Continent() string {
	return g.continent
}

// CurrentQuestion returns the question at the current position, or nil
// once the round is over (or before the first Start).
func (g *Game) CurrentQuestion() *entities.Question {
	if g.current >= len(g.questions) {
		return nil
	}
	return &g.questions[g.current]
}

// QuestionNumber is the 1-based position of the current question.
func (g *Game) QuestionNumber() int {
	return g.current + 1
}

// TotalQuestions is the number of questions in the active round.
func (g *Game) TotalQuestions() int {
	return len(g.questions)
}

// Score is the number of correctly answered questions so far.
func (g *Game) Score() int {
	return g.score
}

// Answered reports whether the current question has already been scored.
func (g *Game) Answered() bool {
	return g.answered
}

// SubmitAnswer scores the selected country code against the current
// question. Only the first submission per question counts: it returns the
// result and bumps the score on a match. Repeated submissions and
// submissions after the round ended return nil and change nothing.
func (g *Game) SubmitAnswer(code string) *entities.Result {
	if g.answered {
		return nil
	}

	q := g.CurrentQuestion()
	if q == nil {
		return nil
	}

	g.answered = true

	res := &entities.Result{
		Correct:     strings.EqualFold(strings.TrimSpace(code), q.CorrectCode),
		CorrectCode: q.CorrectCode,
	}
	if res.Correct {
		g.score++
	}

	return res
}

// NextQuestion advances to the next question and reports whether one
// remains. The position only ever moves forward.
func (g *Game) NextQuestion() bool {
	g.current++
	g.answered = false

	return g.current < len(g.questions)
}

// Continents lists the playable continent labels of the full catalog,
// deduplicated and sorted ascending. The filter of the running round does
// not affect it.
func (g *Game) Continents() []string {
	return continentLabels(g.catalog)
}

// filterByContinent keeps the catalog entries of one continent, matched
// case-insensitively. An empty filter or ContinentAll keeps everything.
func filterByContinent(catalog []entities.Country, continent string) []entities.Country {
	continent = strings.TrimSpace(continent)
	if continent == "" || strings.EqualFold(continent, ContinentAll) {
		out := make([]entities.Country, len(catalog))
		copy(out, catalog)
		return out
	}

	out := make([]entities.Country, 0, len(catalog))
	for _, c := range catalog {
		if strings.EqualFold(c.Continent, continent) {
			out = append(out, c)
		}
	}

	return out
}

// continentLabels returns the distinct continent labels of the catalog in
// ascending order, leaving out the excluded one.
func continentLabels(catalog []entities.Country) []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0, 8)

	for _, c := range catalog {
		if c.Continent == excludedContinent {
			continue
		}
		if _, ok := seen[c.Continent]; ok {
			continue
		}
		seen[c.Continent] = struct{}{}
		labels = append(labels, c.Continent)
	}

	sort.Strings(labels)

	return labels
}
