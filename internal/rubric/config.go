// Package rubric implements the deterministic scoring engine for spoken
// self-introduction transcripts. A transcript is normalized once, analyzed
// by five category analyzers, and aggregated into an immutable Report.
package rubric

import (
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Category names as they appear in reports and chart labels.
const (
	CategoryContent    = "Content & Structure"
	CategorySpeechRate = "Speech Rate"
	CategoryLanguage   = "Language & Grammar"
	CategoryClarity    = "Clarity"
	CategoryEngagement = "Engagement"
)

// Band maps a measured value to points by ascending upper bound. A value v
// falls into the first band with v <= UpTo; the last band must be unbounded
// (UpTo = +Inf) so the mapping is a total function.
type Band struct {
	Name   string  `yaml:"name" validate:"required"`
	UpTo   float64 `yaml:"up_to"`
	Points float64 `yaml:"points" validate:"gte=0"`
}

// Tier maps a measured ratio to points by descending lower bound. A value v
// falls into the first tier with v >= AtLeast; the last tier must have
// AtLeast <= 0 to catch everything.
type Tier struct {
	Name    string  `yaml:"name" validate:"required"`
	AtLeast float64 `yaml:"at_least"`
	Points  float64 `yaml:"points" validate:"gte=0"`
}

// MarkerSet names a content marker and the phrases that trigger it.
// Single-word patterns match whole tokens; multi-word patterns match
// case-insensitive phrase occurrences.
type MarkerSet struct {
	Name     string   `yaml:"name" validate:"required"`
	Patterns []string `yaml:"patterns" validate:"min=1"`
}

// SalutationConfig holds the tiered greeting phrase tables.
type SalutationConfig struct {
	Strong       []string `yaml:"strong"`
	Good         []string `yaml:"good"`
	Basic        []string `yaml:"basic"`
	StrongPoints float64  `yaml:"strong_points" validate:"gte=0"`
	GoodPoints   float64  `yaml:"good_points" validate:"gte=0"`
	BasicPoints  float64  `yaml:"basic_points" validate:"gte=0"`
	Max          float64  `yaml:"max" validate:"gt=0"`
}

// MarkerConfig is a marker table with its per-marker award and cap.
type MarkerConfig struct {
	Markers   []MarkerSet `yaml:"markers" validate:"min=1,dive"`
	PointsPer float64     `yaml:"points_per" validate:"gt=0"`
	Max       float64     `yaml:"max" validate:"gt=0"`
}

// FlowConfig defines the canonical section order and the per-inversion
// penalty. Order entries are "salutation", "closing", or must-have marker
// names; a detected adjacent pair appearing out of this order deducts
// Penalty points from Max, floored at zero.
type FlowConfig struct {
	Order   []string `yaml:"order" validate:"min=2"`
	Closing []string `yaml:"closing"`
	Penalty float64  `yaml:"penalty" validate:"gt=0"`
	Max     float64  `yaml:"max" validate:"gt=0"`
}

// Maxima holds the per-category point allocations.
type Maxima struct {
	Content    float64 `yaml:"content" validate:"gt=0"`
	SpeechRate float64 `yaml:"speech_rate" validate:"gt=0"`
	Language   float64 `yaml:"language" validate:"gt=0"`
	Clarity    float64 `yaml:"clarity" validate:"gt=0"`
	Engagement float64 `yaml:"engagement" validate:"gt=0"`
}

// Config is the full rubric: weights, marker tables, and band tables.
// It is read-only after startup validation; the engine never mutates it.
type Config struct {
	// DurationSeconds is the assumed speaking time. Audio is never
	// measured; this is a documented limitation of the rubric.
	DurationSeconds float64 `yaml:"duration_seconds" validate:"gt=0"`

	Maxima Maxima `yaml:"maxima"`

	Salutation SalutationConfig `yaml:"salutation"`
	MustHave   MarkerConfig     `yaml:"must_have"`
	GoodToHave MarkerConfig     `yaml:"good_to_have"`
	Flow       FlowConfig       `yaml:"flow"`

	RateBands []Band `yaml:"rate_bands" validate:"min=1,dive"`

	GrammarTiers    []Tier  `yaml:"grammar_tiers" validate:"min=1,dive"`
	GrammarMax      float64 `yaml:"grammar_max" validate:"gt=0"`
	VocabularyTiers []Tier  `yaml:"vocabulary_tiers" validate:"min=1,dive"`
	VocabularyMax   float64 `yaml:"vocabulary_max" validate:"gt=0"`

	FillerWords  []string `yaml:"filler_words" validate:"min=1"`
	ClarityBands []Band   `yaml:"clarity_bands" validate:"min=1,dive"`

	EngagementTiers []Tier `yaml:"engagement_tiers" validate:"min=1,dive"`

	// StrengthRatio and ImprovementRatio are the awarded/maximum cutoffs
	// for the strengths and improvements lists.
	StrengthRatio    float64 `yaml:"strength_ratio" validate:"gt=0,lte=1"`
	ImprovementRatio float64 `yaml:"improvement_ratio" validate:"gte=0,lt=1"`
}

// Default returns the rubric as shipped: 40/10/20/15/15 weights with the
// band cut-points of the original scoring tool.
func Default() *Config {
	inf := math.Inf(1)
	return &Config{
		DurationSeconds: 52,

		Maxima: Maxima{
			Content:    40,
			SpeechRate: 10,
			Language:   20,
			Clarity:    15,
			Engagement: 15,
		},

		Salutation: SalutationConfig{
			Strong: []string{
				"i am excited to introduce myself",
				"i'm very happy to introduce myself",
				"i am very happy to introduce myself",
			},
			Good: []string{
				"good morning", "good afternoon", "good evening",
				"good day", "hello everyone",
			},
			Basic:        []string{"hi", "hello"},
			StrongPoints: 5,
			GoodPoints:   4,
			BasicPoints:  2,
			Max:          5,
		},

		MustHave: MarkerConfig{
			Markers: []MarkerSet{
				{Name: "name", Patterns: []string{"name is", "i am", "my name"}},
				{Name: "age", Patterns: []string{
					"years old", "age is",
					"i am 1", "i am 2", "i am 3", "i am 4", "i am 5",
					"i am 6", "i am 7", "i am 8", "i am 9",
				}},
				{Name: "class", Patterns: []string{"study in", "class", "grade", "school", "student at"}},
				{Name: "family", Patterns: []string{
					"family", "parents", "brother", "sister",
					"mother", "father", "live with",
				}},
				{Name: "hobbies", Patterns: []string{
					"hobby", "hobbies", "like to", "enjoy",
					"love to", "playing", "reading",
				}},
			},
			PointsPer: 4,
			Max:       20,
		},

		GoodToHave: MarkerConfig{
			Markers: []MarkerSet{
				{Name: "family_details", Patterns: []string{
					"father is", "mother is", "sister is", "brother is", "parents are",
				}},
				{Name: "origin", Patterns: []string{"i am from", "parents are from", "born in", "native"}},
				{Name: "ambition", Patterns: []string{"want to become", "goal", "future", "aim to", "dream"}},
				{Name: "unique", Patterns: []string{"interesting", "unique", "fact about me", "special"}},
				{Name: "strengths", Patterns: []string{"strength", "good at", "achievement", "proud of"}},
			},
			PointsPer: 2,
			Max:       10,
		},

		Flow: FlowConfig{
			Order:   []string{"salutation", "name", "age", "class", "family", "hobbies", "closing"},
			Closing: []string{"thank you", "thanks", "that's all"},
			Penalty: 2,
			Max:     5,
		},

		RateBands: []Band{
			{Name: "very_slow", UpTo: 80, Points: 2},
			{Name: "slow", UpTo: 110, Points: 6},
			{Name: "ideal", UpTo: 140, Points: 10},
			{Name: "fast", UpTo: 160, Points: 6},
			{Name: "very_fast", UpTo: inf, Points: 2},
		},

		GrammarTiers: []Tier{
			{Name: "excellent", AtLeast: 0.9, Points: 10},
			{Name: "good", AtLeast: 0.7, Points: 8},
			{Name: "fair", AtLeast: 0.5, Points: 6},
			{Name: "weak", AtLeast: 0.3, Points: 4},
			{Name: "poor", AtLeast: 0, Points: 2},
		},
		GrammarMax: 10,
		VocabularyTiers: []Tier{
			{Name: "rich", AtLeast: 0.9, Points: 10},
			{Name: "varied", AtLeast: 0.7, Points: 8},
			{Name: "moderate", AtLeast: 0.5, Points: 6},
			{Name: "limited", AtLeast: 0.3, Points: 4},
			{Name: "repetitive", AtLeast: 0, Points: 2},
		},
		VocabularyMax: 10,

		FillerWords: []string{
			"um", "uh", "like", "you know", "so", "actually",
			"basically", "right", "i mean", "well", "kinda",
			"sort of", "okay", "hmm", "ah",
		},
		ClarityBands: []Band{
			{Name: "clean", UpTo: 3, Points: 15},
			{Name: "minor", UpTo: 6, Points: 12},
			{Name: "noticeable", UpTo: 9, Points: 9},
			{Name: "frequent", UpTo: 12, Points: 6},
			{Name: "excessive", UpTo: inf, Points: 3},
		},

		EngagementTiers: []Tier{
			{Name: "very_positive", AtLeast: 0.9, Points: 15},
			{Name: "positive", AtLeast: 0.7, Points: 12},
			{Name: "neutral", AtLeast: 0.5, Points: 9},
			{Name: "flat", AtLeast: 0.3, Points: 6},
			{Name: "negative", AtLeast: 0, Points: 3},
		},

		StrengthRatio:    0.8,
		ImprovementRatio: 0.5,
	}
}

// LoadFile reads a YAML rubric file over the defaults, so a file only needs
// to name the tunables it changes.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rubric config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("rubric config %s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks structural constraints and the cross-field sums that make
// the rubric coherent. A failure here is a startup-time fatal condition,
// never a per-call error.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("rubric config: %w", err)
	}

	m := c.Maxima
	if total := m.Content + m.SpeechRate + m.Language + m.Clarity + m.Engagement; total != 100 {
		return fmt.Errorf("rubric config: category maxima sum to %.1f, want 100", total)
	}
	if sum := c.Salutation.Max + c.MustHave.Max + c.GoodToHave.Max + c.Flow.Max; sum != m.Content {
		return fmt.Errorf("rubric config: content sub-allocations sum to %.1f, want %.1f", sum, m.Content)
	}
	if sum := c.GrammarMax + c.VocabularyMax; sum != m.Language {
		return fmt.Errorf("rubric config: language sub-allocations sum to %.1f, want %.1f", sum, m.Language)
	}

	if err := checkBands("rate_bands", c.RateBands, m.SpeechRate); err != nil {
		return err
	}
	if err := checkBands("clarity_bands", c.ClarityBands, m.Clarity); err != nil {
		return err
	}
	if err := checkTiers("grammar_tiers", c.GrammarTiers, c.GrammarMax); err != nil {
		return err
	}
	if err := checkTiers("vocabulary_tiers", c.VocabularyTiers, c.VocabularyMax); err != nil {
		return err
	}
	if err := checkTiers("engagement_tiers", c.EngagementTiers, m.Engagement); err != nil {
		return err
	}

	sections := map[string]bool{"salutation": true, "closing": true}
	for _, ms := range c.MustHave.Markers {
		sections[ms.Name] = true
	}
	for _, name := range c.Flow.Order {
		if !sections[name] {
			return fmt.Errorf("rubric config: flow order references unknown section %q", name)
		}
	}
	return nil
}

func checkBands(name string, bands []Band, max float64) error {
	prev := math.Inf(-1)
	for _, b := range bands {
		if b.UpTo <= prev {
			return fmt.Errorf("rubric config: %s not strictly ascending at %q", name, b.Name)
		}
		if b.Points > max {
			return fmt.Errorf("rubric config: %s band %q exceeds maximum %.1f", name, b.Name, max)
		}
		prev = b.UpTo
	}
	if !math.IsInf(bands[len(bands)-1].UpTo, 1) {
		return fmt.Errorf("rubric config: %s must end with an unbounded band", name)
	}
	return nil
}

func checkTiers(name string, tiers []Tier, max float64) error {
	prev := math.Inf(1)
	for _, t := range tiers {
		if t.AtLeast >= prev {
			return fmt.Errorf("rubric config: %s not strictly descending at %q", name, t.Name)
		}
		if t.Points > max {
			return fmt.Errorf("rubric config: %s tier %q exceeds maximum %.1f", name, t.Name, max)
		}
		prev = t.AtLeast
	}
	if tiers[len(tiers)-1].AtLeast > 0 {
		return fmt.Errorf("rubric config: %s must end with a tier at or below 0", name)
	}
	return nil
}

// mapBands resolves v to the first band with v <= UpTo. Total by
// construction: the last band is unbounded.
func mapBands(bands []Band, v float64) Band {
	for _, b := range bands {
		if v <= b.UpTo {
			return b
		}
	}
	return bands[len(bands)-1]
}

// mapTiers resolves v to the first tier with v >= AtLeast.
func mapTiers(tiers []Tier, v float64) Tier {
	for _, t := range tiers {
		if v >= t.AtLeast {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
