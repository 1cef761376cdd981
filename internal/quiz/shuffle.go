package quiz

import "math/rand"

// Shuffle returns a uniform random permutation (Fisher–Yates) of the
// given questions. The input slice is never mutated. The randomness
// source is injected so tests can seed it deterministically.
func Shuffle(questions []Question, rng *rand.Rand) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
