// Package quiz implements the scoring-and-classification engine shared by
// all diagnosis variants: question banks, Likert scoring, dominant-type
// classification, and the attempt state machine driving one quiz run.
package quiz

import "fmt"

// Category identifies one of the fixed dimensions a quiz measures
// (e.g. Visual/Auditory/Kinesthetic).
type Category string

// Balanced is the classification outcome when no category sufficiently
// exceeds the others.
const Balanced Category = "balanced"

// Likert answer domain.
const (
	MinAnswer = 1
	MaxAnswer = 5
)

// A spread strictly below this is classified as balanced.
const balancedSpread = 3

// Question is one item of a bank. Immutable after definition.
type Question struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

// Content is the static result copy for a classified category.
// Variants use different subsets of the list fields.
type Content struct {
	Title                 string   `json:"title"`
	Subtitle              string   `json:"subtitle,omitempty"`
	Description           string   `json:"description"`
	Characteristics       []string `json:"characteristics,omitempty"`
	Strengths             []string `json:"strengths,omitempty"`
	BusinessTips          []string `json:"business_tips,omitempty"`
	RelationshipTips      []string `json:"relationship_tips,omitempty"`
	Advice                []string `json:"advice,omitempty"`
	RecommendedExperience []string `json:"recommended_experience,omitempty"`
	Closing               string   `json:"closing"`
}

// Bank is one quiz variant: its ordered question list, the category
// precedence order, and the result content table.
type Bank struct {
	Key                  string
	Title                string
	Categories           []Category // declaration order doubles as the tie-break order
	QuestionsPerCategory int
	Questions            []Question
	Content              map[Category]Content
}

// TotalQuestions returns the number of questions in the bank.
func (b *Bank) TotalQuestions() int {
	return len(b.Questions)
}

// MaxScore is the highest score a single category can reach.
func (b *Bank) MaxScore() int {
	return MaxAnswer * b.QuestionsPerCategory
}

// ContentFor resolves the static content for a classified category.
// A category outside the bank's table is a defect in the classifier or
// the table itself, so this fails loudly instead of returning zero copy.
func (b *Bank) ContentFor(c Category) Content {
	content, ok := b.Content[c]
	if !ok {
		panic(fmt.Sprintf("quiz: no content for category %q in bank %q", c, b.Key))
	}
	return content
}

// AnswerSet maps question id to the recorded Likert value for one attempt.
type AnswerSet map[int]int

// ScoreMap maps category to its accumulated score.
type ScoreMap map[Category]int
