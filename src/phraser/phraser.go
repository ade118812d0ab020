package phraser

import (
	"fmt"
	"math/rand"
	"slices"
)

// Phraser hands out phrases so repeated messages don't read the same every
// time. The first call always returns the first phrase; after that each round
// goes through the remaining phrases in a new random order.
//
// Usage:
//
//	hints := phraser.New([]string{
//		"Unknown choice %q, pick 1, 2 or 3",
//		"%q isn't on the menu",
//	})
//
//	for {
//		choice := ...
//		fmt.Println(hints.Get(choice))
//	}
type Phraser struct {
	phrases           []string
	lastPhraseIdx     int
	hasShuffledBefore bool

	shuffle func(n int, swap func(i, j int))
}

func New(phrases []string) *Phraser {
	return NewWithShuffle(phrases, rand.Shuffle)
}

// NewWithShuffle lets the caller decide how phrases are reordered between
// rounds, e.g. with a seeded *rand.Rand.
func NewWithShuffle(phrases []string, shuffle func(n int, swap func(i, j int))) *Phraser {
	return &Phraser{
		// copy the phrases so we never reorder the caller's slice
		phrases:       slices.Clone(phrases),
		lastPhraseIdx: -1,
		shuffle:       shuffle,
	}
}

func (p *Phraser) reshuffle() {
	if len(p.phrases) < 2 {
		// no point shuffling fewer than 2 phrases
		return
	}

	p.shuffle(len(p.phrases), func(i, j int) {
		p.phrases[i], p.phrases[j] = p.phrases[j], p.phrases[i]
	})
}

func (p *Phraser) Get(formatArgs ...any) string {
	if len(p.phrases) == 0 {
		return ""
	}
	if len(p.phrases) == 1 {
		return fmt.Sprintf(p.phrases[0], formatArgs...)
	}

	p.lastPhraseIdx++
	if p.lastPhraseIdx >= len(p.phrases) {
		if !p.hasShuffledBefore {
			// the first phrase is only ever used once
			p.phrases = p.phrases[1:]
			p.hasShuffledBefore = true
		}
		p.reshuffle()
		p.lastPhraseIdx = 0
	}

	return fmt.Sprintf(p.phrases[p.lastPhraseIdx], formatArgs...)
}
