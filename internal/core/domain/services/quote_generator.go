package services

import "math/rand/v2"

var quotes = []string{
	"I'm not lazy, I'm just on energy-saving mode... that's why I order food!",
	"My relationship status: Committed to food delivery apps",
	"I don't need therapy, I need tacos",
	"Life is too short for bad food and long delivery times",
	"I'm on a seafood diet. I see food and I order it!",
	"Cooking is overrated when you have Wiggy!",
	"My blood type is pizza positive",
	"I followed my heart and it led me to the fridge... then to this app",
}

// QuoteGenerator picks the quote shown on a new user's profile.
type QuoteGenerator struct {
	picker *picker
}

func NewQuoteGenerator(src rand.Source) *QuoteGenerator {
	return &QuoteGenerator{picker: newPicker(src)}
}

func (g *QuoteGenerator) Quote() string {
	return g.picker.pick(quotes)
}

// Quotes returns a copy of the quote pool.
func Quotes() []string {
	return append([]string(nil), quotes...)
}
