package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tr := normalize("  Good Morning everyone. My NAME is Asha.  ")

	assert.Equal(t, "good morning everyone. my name is asha.", tr.lower)
	assert.Equal(t, 7, tr.wordCount())
	assert.False(t, tr.empty())
}

func TestNormalize_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t  \n"} {
		tr := normalize(in)
		assert.True(t, tr.empty(), "input %q", in)
		assert.Equal(t, 0, tr.wordCount())
	}
}

func TestTypeTokenRatio(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"all unique", "one two three four", 1.0},
		{"half repeated", "one one two two", 0.5},
		{"empty", "", 0},
		{"case folded", "One one ONE one", 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, normalize(tt.text).typeTokenRatio(), 1e-9)
		})
	}
}

func TestPatternIndex_WordBoundaries(t *testing.T) {
	tr := normalize("This is something about hobbies")

	// "hi" must not fire inside "this" or "something".
	assert.Equal(t, -1, tr.patternIndex("hi"))

	tr = normalize("oh hi there")
	assert.Equal(t, 3, tr.patternIndex("hi"))
}

func TestPatternIndex_Phrase(t *testing.T) {
	tr := normalize("Well, my name is Ravi")
	assert.Equal(t, 9, tr.patternIndex("name is"))
	assert.Equal(t, -1, tr.patternIndex("age is"))
}

func TestFirstIndex_PicksEarliest(t *testing.T) {
	tr := normalize("i enjoy reading and my hobby is chess")
	// "enjoy" at 2 is earlier than "hobby" at 23.
	idx := tr.firstIndex([]string{"hobby", "enjoy", "reading"})
	assert.Equal(t, 2, idx)
}

func TestPhraseCount_Boundaries(t *testing.T) {
	assert.Equal(t, 2, phraseCount("you know what you know", "you know"))
	// No count inside a longer word.
	assert.Equal(t, 0, phraseCount("i meant that", "i mean"))
	assert.Equal(t, 1, phraseCount("i mean it", "i mean"))
}

func TestTrimToken(t *testing.T) {
	assert.Equal(t, "um", trimToken("um,"))
	assert.Equal(t, "um", trimToken("(um)"))
	assert.Equal(t, "don't", trimToken("don't"))
	assert.Equal(t, "", trimToken("..."))
}
