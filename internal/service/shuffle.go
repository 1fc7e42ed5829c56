package service

import "math/rand"

// shuffle permutes items in place with a Fisher-Yates walk over the given
// source. Empty and single-element slices are left as they are. Every
// randomized step of the quiz goes through this one function so a seeded
// source makes a whole round reproducible.
func shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
