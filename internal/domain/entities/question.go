package entities

// Question is a single multiple-choice flag question. It is built once by
// the generator and never mutated afterwards.
type Question struct {
	Target      Country   // the country whose flag is shown
	Options     []Country // four distinct countries, exactly one of them the target
	CorrectCode string    // Target.Code, kept alongside for answer checks
}

// OptionByCode returns the option with the given country code.
func (q Question) OptionByCode(code string) (Country, bool) {
	for _, c := range q.Options {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// Result is the outcome of the first answer submitted for a question.
type Result struct {
	Correct     bool
	CorrectCode string
}
