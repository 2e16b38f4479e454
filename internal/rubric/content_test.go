package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	grammarmock "ai-intro-scoring-service/internal/capability/grammar/mock"
	sentimentmock "ai-intro-scoring-service/internal/capability/sentiment/mock"
)

func testEngine() *Engine {
	return New(Default(), grammarmock.New(0), sentimentmock.New(0.9))
}

func TestSalutationPoints_Tiers(t *testing.T) {
	e := testEngine()
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"strong", "I am excited to introduce myself to all of you", 5},
		{"good", "Good morning teachers and friends", 4},
		{"good hello everyone", "Hello everyone, welcome", 4},
		{"basic hi", "Hi, my name is Ravi", 2},
		{"basic hello", "Hello. I am Ravi", 2},
		{"none", "My name is Ravi and I study in class six", 0},
		{"hi not inside words", "This is something big", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.salutationPoints(normalize(tt.text)))
		})
	}
}

func TestMarkerPoints_MustHave(t *testing.T) {
	cfg := Default()
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"none", "the weather was pleasant yesterday", 0},
		{"name only", "my name is Asha", 4},
		{"name and age", "my name is Asha and I am 12 years old", 8},
		{
			"all five",
			"my name is Asha, I am 12 years old, I study in class six, I live with my family, and my hobby is chess",
			20,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markerPoints(normalize(tt.text), cfg.MustHave))
		})
	}
}

func TestMarkerPoints_GoodToHaveCap(t *testing.T) {
	cfg := Default()
	text := "my father is a teacher, I am from Pune, my dream is big, an interesting fact about me, I am good at chess"
	// All five markers detected, capped at the sub-allocation.
	assert.Equal(t, cfg.GoodToHave.Max, markerPoints(normalize(text), cfg.GoodToHave))
}

func TestMarkerPoints_NoPartialCredit(t *testing.T) {
	cfg := Default()
	// A near miss on every age pattern contributes nothing for that slot.
	got := markerPoints(normalize("my name is Asha and I am twelve"), cfg.MustHave)
	assert.Equal(t, 4.0, got)
}

func TestFlowPoints_Monotonic(t *testing.T) {
	e := testEngine()

	ordered := "Hello everyone. My name is Asha. I am 12 years old. I study in class six. I live with my family. My hobby is chess. Thank you."
	oneSwap := "My name is Asha. Hello everyone. I am 12 years old. I study in class six. I live with my family. My hobby is chess. Thank you."
	twoSwaps := "My name is Asha. Hello everyone. I am 12 years old. I live with my family. I study in class six. My hobby is chess. Thank you."

	full := e.flowPoints(normalize(ordered))
	one := e.flowPoints(normalize(oneSwap))
	two := e.flowPoints(normalize(twoSwaps))

	assert.Equal(t, e.cfg.Flow.Max, full)
	assert.Less(t, one, full)
	assert.Less(t, two, one)
}

func TestFlowPoints_FloorAtZero(t *testing.T) {
	e := testEngine()
	e.cfg = Default()
	e.cfg.Flow.Penalty = 5

	// Salutation after everything else: inversions cannot push below zero.
	text := "Thank you. My hobby is chess. I live with my family. I study in class six. I am 12 years old. My name is Asha. Hello everyone."
	got := e.flowPoints(normalize(text))
	assert.GreaterOrEqual(t, got, 0.0)
}

func TestScoreContent_WithinBounds(t *testing.T) {
	e := testEngine()
	texts := []string{
		"",
		"hello",
		"Good morning everyone, my name is Asha, I am 12 years old, I study in class six at city school, I live with my family and parents, my hobby is reading, I am from Pune, my dream is to become a doctor, an interesting fact about me, I am good at chess. Thank you.",
	}
	for _, text := range texts {
		score := e.scoreContent(normalize(text))
		assert.GreaterOrEqual(t, score.Awarded, 0.0)
		assert.LessOrEqual(t, score.Awarded, score.Maximum)
		assert.Equal(t, CategoryContent, score.Name)
		assert.Len(t, score.Explanation, 4)
	}
}
