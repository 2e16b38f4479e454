package rubric

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func wordsText(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "w" + strings.Repeat("x", i%7)
	}
	return strings.Join(words, " ")
}

func TestScoreLanguage_NoErrorsFullGrammar(t *testing.T) {
	e := testEngine()
	tr := normalize("one two three four five six seven eight nine ten")
	score := e.scoreLanguage(tr, 0, tr.typeTokenRatio())

	// 0 errors -> ratio 1 -> top grammar tier; all-unique tokens -> top
	// vocabulary tier.
	assert.Equal(t, 20.0, score.Awarded)
	assert.Equal(t, "grammar_excellent", score.Explanation[0].Signal)
	assert.Equal(t, "vocabulary_rich", score.Explanation[1].Signal)
}

func TestScoreLanguage_GrammarDensityBands(t *testing.T) {
	e := testEngine()
	tr := normalize(wordsText(100))
	tests := []struct {
		errors int
		want   float64 // grammar contribution
	}{
		{0, 10},  // density 0, ratio 1.0
		{1, 8},   // ratio 1-0.1 lands a hair under 0.9 in float math
		{3, 8},   // ratio 0.7
		{5, 6},   // ratio 0.5
		{7, 4},   // ratio 0.3
		{10, 2},  // ratio 0
		{100, 2}, // density clamped
	}
	for _, tt := range tests {
		score := e.scoreLanguage(tr, tt.errors, tr.typeTokenRatio())
		assert.Equal(t, tt.want, score.Explanation[0].Points, "errors=%d", tt.errors)
	}
}

func TestScoreLanguage_GrammarMonotonic(t *testing.T) {
	e := testEngine()
	tr := normalize(wordsText(100))
	prev := 11.0
	for errors := 0; errors <= 12; errors++ {
		score := e.scoreLanguage(tr, errors, tr.typeTokenRatio())
		grammarPts := score.Explanation[0].Points
		assert.LessOrEqual(t, grammarPts, prev, "errors=%d", errors)
		prev = grammarPts
	}
}

func TestScoreLanguage_TTRMonotonic(t *testing.T) {
	e := testEngine()
	tr := normalize(wordsText(50))
	prevPts := -1.0
	for _, ttr := range []float64{0, 0.2, 0.3, 0.5, 0.7, 0.9, 1} {
		score := e.scoreLanguage(tr, 0, ttr)
		vocabPts := score.Explanation[1].Points
		assert.GreaterOrEqual(t, vocabPts, prevPts, "ttr=%v", ttr)
		prevPts = vocabPts
	}
}

func TestScoreLanguage_WithinBounds(t *testing.T) {
	e := testEngine()
	tr := normalize(wordsText(30))
	for _, errors := range []int{0, 5, 50} {
		score := e.scoreLanguage(tr, errors, tr.typeTokenRatio())
		assert.GreaterOrEqual(t, score.Awarded, 0.0)
		assert.LessOrEqual(t, score.Awarded, score.Maximum)
	}
}
