// Package ideas produces writing-prompt and filler content: status
// suggestions for the composer, canned replies for the simulated commenters,
// and profile filler for seeding.
package ideas

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator is the content source. The app layer depends on the interface so
// tests can pin deterministic strings.
type Generator interface {
	Status() string
	BlogTitle() string
	BlogBody() string
	Reply() string
	Bio() string
	Mood() string
}

// replies are the canned reactions the simulated commenters post. Short and
// generic on purpose; they read like drive-by comments.
var replies = []string{
	"omg love this!!",
	"so true",
	"cool page btw, check out mine",
	"who else is online rn?",
	"this is the realest thing i've read all day",
	"adding this to my profile quotes",
	"haha same",
	"ur theme is amazing, how did u do the cursor?",
}

var moods = []string{
	"chillin", "vibing", "nostalgic", "caffeinated", "dramatic",
	"online", "mysterious", "unbothered",
}

// Faker generates content with gofakeit. A zero seed gives a randomized
// source; pass a fixed seed for reproducible output.
type Faker struct {
	f *gofakeit.Faker
}

// NewFaker returns a generator seeded with seed.
func NewFaker(seed uint64) *Faker {
	return &Faker{f: gofakeit.New(int64(seed))}
}

func (g *Faker) Status() string {
	s := g.f.Sentence(g.f.Number(4, 10))
	tag := "#" + strings.ToLower(g.f.HackerNoun())
	return strings.TrimSuffix(s, ".") + " " + tag
}

func (g *Faker) BlogTitle() string {
	return g.f.HipsterSentence(g.f.Number(3, 6))
}

func (g *Faker) BlogBody() string {
	return g.f.HipsterParagraph(1, g.f.Number(3, 5), g.f.Number(8, 14), " ")
}

func (g *Faker) Reply() string {
	return replies[g.f.Number(0, len(replies)-1)]
}

func (g *Faker) Bio() string {
	return fmt.Sprintf("%s %s", g.f.Quote(), g.f.Emoji())
}

func (g *Faker) Mood() string {
	return moods[g.f.Number(0, len(moods)-1)]
}
