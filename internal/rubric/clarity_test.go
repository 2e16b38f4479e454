package rubric

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountFillers(t *testing.T) {
	e := testEngine()
	tests := []struct {
		name string
		text string
		want int
	}{
		{"none", "my name is Asha and I enjoy chess", 0},
		{"single tokens", "um I uh forgot", 2},
		{"punctuation attached", "um, I think... uh. yes", 2},
		{"phrase", "you know it is true", 1},
		{"phrase repeated", "you know what you know", 2},
		{"not substrings", "I feel likely to win the championship", 0},
		{"phrase not in longer word", "I meant that sincerely", 0},
		{"mixed", "so, um, basically I sort of forgot", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.countFillers(normalize(tt.text)))
		})
	}
}

func TestScoreClarity_ZeroFillersFullMarks(t *testing.T) {
	e := testEngine()
	tr := normalize("my name is Asha and I enjoy playing chess")
	score, pct := e.scoreClarity(tr, 0)
	assert.Equal(t, 15.0, score.Awarded)
	assert.Equal(t, 0.0, pct)
}

func TestScoreClarity_Bands(t *testing.T) {
	e := testEngine()
	tr := normalize(wordsText(100))
	tests := []struct {
		fillers int
		want    float64
	}{
		{0, 15},
		{3, 15},
		{4, 12},
		{6, 12},
		{9, 9},
		{12, 6},
		{20, 3},
	}
	for _, tt := range tests {
		score, _ := e.scoreClarity(tr, tt.fillers)
		assert.Equal(t, tt.want, score.Awarded, "fillers=%d", tt.fillers)
	}
}

func TestScoreClarity_MoreFillersNeverScoreHigher(t *testing.T) {
	e := testEngine()
	tr := normalize(wordsText(100))
	prev := 16.0
	for fillers := 0; fillers <= 100; fillers += 5 {
		score, pct := e.scoreClarity(tr, fillers)
		assert.LessOrEqual(t, score.Awarded, prev, "fillers=%d", fillers)
		assert.GreaterOrEqual(t, pct, 0.0)
		prev = score.Awarded
	}
}

func TestScoreClarity_DoublingFillersRaisesPercentage(t *testing.T) {
	e := testEngine()

	base := "my name is Asha and I enjoy chess " + strings.Repeat("word ", 20)
	once := base + "um um"
	twice := base + "um um um um"

	_, pctOnce := e.scoreClarity(normalize(once), e.countFillers(normalize(once)))
	_, pctTwice := e.scoreClarity(normalize(twice), e.countFillers(normalize(twice)))

	assert.Greater(t, pctTwice, pctOnce)
}
