// Package mail composes the shareable result text for a finished quiz
// attempt. Output is plain text and byte-stable for identical inputs so
// delivery layers and tests can rely on it verbatim.
package mail

import (
	"fmt"
	"strings"

	"github.com/hmiyata/shindan/internal/quiz"
)

// CTAURL is the fixed call-to-action link appended to every result mail.
const CTAURL = "https://pro-coach.net/p/r/8uCeXl3l?free20=0030005"

// Subject returns the mail subject for a quiz variant.
func Subject(b *quiz.Bank) string {
	return "【診断結果】あなたの" + b.Title
}

// Compose builds the full mail body for one classified result: optional
// greeting, per-category score lines, the content sections that the
// variant defines, the type closing, and the fixed CTA footer.
func Compose(b *quiz.Bank, scores quiz.ScoreMap, content quiz.Content, name string) string {
	var sb strings.Builder

	if name != "" {
		sb.WriteString(name)
		sb.WriteString("様\n\n")
	}
	sb.WriteString("🎉 診断完了！\nあなたの結果をお送りします。\n\n")

	fmt.Fprintf(&sb, "【あなたのスコア】（各%d点満点）\n", b.MaxScore())
	for _, c := range b.Categories {
		fmt.Fprintf(&sb, "%s: %d/%d点\n", b.ContentFor(c).Title, scores[c], b.MaxScore())
	}
	sb.WriteString("\n")

	sb.WriteString("🌟 あなたの診断タイプ\n\n")
	sb.WriteString(content.Title)
	sb.WriteString("\n\n")
	if content.Subtitle != "" {
		sb.WriteString(content.Subtitle)
		sb.WriteString("\n\n")
	}
	sb.WriteString(content.Description)
	sb.WriteString("\n")

	writeSection(&sb, "【特徴】", content.Characteristics)
	writeSection(&sb, "【強み】", content.Strengths)
	writeSection(&sb, "【楽しみ方のヒント】", content.Advice)
	writeSection(&sb, "【ビジネスシーンでの活かし方】", content.BusinessTips)
	writeSection(&sb, "【人間関係での活かし方】", content.RelationshipTips)
	writeSection(&sb, "【おすすめの体験】", content.RecommendedExperience)

	sb.WriteString("\n")
	sb.WriteString(content.Closing)
	sb.WriteString("\n")
	sb.WriteString(footer)

	return sb.String()
}

func writeSection(sb *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, item := range items {
		sb.WriteString("・")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
}

const footer = `
---

✨ あなたの強みを実践で活かしていく段階です！
この診断でわかったあなたの強みを活かして、人の力を引き出すスキルを知りたくないですか？
それがコーチングです。

無料でコーチング入門編を活用できるこの機会を逃さないでください。

まずは小さな一歩から、あなたの強みが誰かの力になる体験を。

▼ 無料セミナーの詳細・お申し込みはこちら
` + CTAURL + "\n"

// Preview is one composed mail shown on the preview screen.
type Preview struct {
	Category quiz.Category `json:"category"`
	Subject  string        `json:"subject"`
	Body     string        `json:"body"`
}

// ComposePreviews builds the mail preview: the respondent's own type
// first, then every other type of the variant for reference (balanced
// included), all rendered with the respondent's actual scores.
func ComposePreviews(b *quiz.Bank, scores quiz.ScoreMap, dominant quiz.Category, name string) []Preview {
	ordered := make([]quiz.Category, 0, len(b.Categories)+1)
	ordered = append(ordered, dominant)
	if dominant != quiz.Balanced {
		ordered = append(ordered, quiz.Balanced)
	}
	for _, c := range b.Categories {
		if c != dominant {
			ordered = append(ordered, c)
		}
	}

	previews := make([]Preview, 0, len(ordered))
	for _, c := range ordered {
		previews = append(previews, Preview{
			Category: c,
			Subject:  Subject(b),
			Body:     Compose(b, scores, b.ContentFor(c), name),
		})
	}
	return previews
}
