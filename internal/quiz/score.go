package quiz

// Score reduces an answer set into per-category totals. Every category
// starts at zero; each answered question adds its value to the question's
// category. Unanswered questions contribute nothing, and entries with an
// unknown question id or a value outside [MinAnswer, MaxAnswer] are
// skipped, so a partial or corrupted answer set can never break the
// result computation. Pure function.
func Score(b *Bank, answers AnswerSet) ScoreMap {
	scores := make(ScoreMap, len(b.Categories))
	for _, c := range b.Categories {
		scores[c] = 0
	}

	for _, q := range b.Questions {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		if v < MinAnswer || v > MaxAnswer {
			continue
		}
		scores[q.Category] += v
	}
	return scores
}

// Classify maps per-category totals to the dominant category, or Balanced
// when the spread between the highest and lowest total is strictly below
// 3. A spread of exactly 3 already yields a dominant type. When several
// categories share the maximum, the first one in the bank's declaration
// order wins. Pure function.
func Classify(b *Bank, scores ScoreMap) Category {
	if len(b.Categories) == 0 {
		return Balanced
	}

	max := scores[b.Categories[0]]
	min := max
	for _, c := range b.Categories[1:] {
		s := scores[c]
		if s > max {
			max = s
		}
		if s < min {
			min = s
		}
	}

	if max-min < balancedSpread {
		return Balanced
	}
	for _, c := range b.Categories {
		if scores[c] == max {
			return c
		}
	}
	return Balanced
}
