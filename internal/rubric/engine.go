package rubric

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ai-intro-scoring-service/internal/capability/grammar"
	"ai-intro-scoring-service/internal/capability/sentiment"
	"ai-intro-scoring-service/internal/models"
	"ai-intro-scoring-service/internal/observability/logging"
	"ai-intro-scoring-service/internal/observability/metrics"
)

// InputError aborts a scoring call. It is returned only for input that is
// not text-like; empty transcripts are scored, not rejected.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return "invalid transcript: " + e.Reason }

// Engine scores transcripts against a validated rubric Config. Safe for
// concurrent use: the config is read-only and every call builds its own
// state.
type Engine struct {
	cfg        *Config
	grammar    grammar.Checker
	sentiment  sentiment.Analyzer
	capTimeout time.Duration
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCapabilityTimeout bounds each external capability call. After the
// timeout the documented fallback value is substituted.
func WithCapabilityTimeout(d time.Duration) Option {
	return func(e *Engine) { e.capTimeout = d }
}

// WithLogger overrides the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine. cfg must already be validated.
func New(cfg *Config, g grammar.Checker, s sentiment.Analyzer, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		grammar:    g,
		sentiment:  s,
		capTimeout: 10 * time.Second,
		metrics:    metrics.DefaultMetrics,
		log:        logging.WithComponent("rubric"),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Score evaluates one transcript and returns the immutable report.
// Capability outages degrade individual signals and are flagged in the
// report; the only aborting condition is non-text input.
func (e *Engine) Score(ctx context.Context, raw string) (*models.Report, error) {
	start := time.Now()

	if !utf8.ValidString(raw) {
		e.metrics.RecordInputError()
		return nil, &InputError{Reason: "transcript is not valid UTF-8 text"}
	}

	t := normalize(raw)
	if t.empty() {
		e.metrics.RecordEmptyTranscript()
		report := e.emptyReport()
		e.metrics.RecordScoring(report, time.Since(start).Seconds())
		return report, nil
	}

	sig := e.collectSignals(ctx, t)

	content := e.scoreContent(t)
	wpm := e.wordsPerMinute(t.wordCount())
	rate := e.scoreRate(wpm)
	ttr := t.typeTokenRatio()
	language := e.scoreLanguage(t, sig.grammarErrors, ttr)
	fillerCount := e.countFillers(t)
	clarity, fillerPct := e.scoreClarity(t, fillerCount)
	engagement := e.scoreEngagement(sig.compound)

	report := e.aggregate(
		[]models.CategoryScore{content, rate, language, clarity, engagement},
		models.DerivedSignals{
			WPM:              wpm,
			FillerCount:      fillerCount,
			FillerPercentage: fillerPct,
			TTR:              ttr,
			GrammarErrors:    sig.grammarErrors,
			SentimentValue:   sig.compound,
			Degraded:         sig.degraded,
		},
	)

	e.metrics.RecordScoring(report, time.Since(start).Seconds())
	return report, nil
}

// capabilitySignals holds the external measurements for one call.
type capabilitySignals struct {
	grammarErrors int
	compound      float64
	degraded      []string
}

// collectSignals queries the grammar and sentiment capabilities
// concurrently under a shared timeout. Both analyzers are independent, so
// completion order is irrelevant; a failed call substitutes its fallback
// value (0 errors, neutral sentiment) and marks the signal degraded.
func (e *Engine) collectSignals(ctx context.Context, t transcript) capabilitySignals {
	cctx, cancel := context.WithTimeout(ctx, e.capTimeout)
	defer cancel()

	var sig capabilitySignals
	var grammarDown, sentimentDown bool

	g := new(errgroup.Group)
	g.Go(func() error {
		start := time.Now()
		n, err := e.grammar.Check(cctx, t.raw)
		e.metrics.RecordCapabilityCall("grammar", err, time.Since(start).Seconds())
		if err != nil {
			e.log.Warn().Err(err).Msg("grammar checker unavailable, falling back to zero errors")
			e.metrics.RecordCapabilityFallback("grammar")
			grammarDown = true
			return nil
		}
		sig.grammarErrors = n
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		compound, err := e.sentiment.Analyze(cctx, t.raw)
		e.metrics.RecordCapabilityCall("sentiment", err, time.Since(start).Seconds())
		if err != nil {
			e.log.Warn().Err(err).Msg("sentiment analyzer unavailable, falling back to neutral")
			e.metrics.RecordCapabilityFallback("sentiment")
			sentimentDown = true
			return nil
		}
		sig.compound = compound
		return nil
	})
	_ = g.Wait()

	// Fixed ordering keeps report JSON deterministic.
	if grammarDown {
		sig.degraded = append(sig.degraded, "grammar")
	}
	if sentimentDown {
		sig.degraded = append(sig.degraded, "sentiment")
	}
	return sig
}

// aggregate sums the category awards, derives the strengths and
// improvement lists, and builds the report. Pure construction; inputs are
// not mutated.
func (e *Engine) aggregate(categories []models.CategoryScore, signals models.DerivedSignals) *models.Report {
	total := 0.0
	strengths := make([]string, 0, len(categories))
	improvements := make([]string, 0, len(categories))
	for _, c := range categories {
		total += c.Awarded
		if c.Awarded >= e.cfg.StrengthRatio*c.Maximum {
			strengths = append(strengths, c.Name)
		}
		if c.Awarded <= e.cfg.ImprovementRatio*c.Maximum {
			improvements = append(improvements, c.Name)
		}
	}

	return &models.Report{
		TotalScore:     clamp(total, 0, 100),
		Categories:     categories,
		DerivedSignals: signals,
		Strengths:      strengths,
		Improvements:   improvements,
		Feedback:       e.feedback(categories, signals),
	}
}

// feedback builds the coaching lines shown in generated reports.
func (e *Engine) feedback(categories []models.CategoryScore, signals models.DerivedSignals) []string {
	if signals.EmptyTranscript {
		return []string{"Transcript is empty. Paste or upload a spoken introduction to get a score."}
	}

	awarded := make(map[string]float64, len(categories))
	for _, c := range categories {
		awarded[c.Name] = c.Awarded
	}

	fb := make([]string, 0, 4)
	if awarded[CategoryContent] < e.cfg.Maxima.Content/2 {
		fb = append(fb, "Content needs improvement. Ensure you include all key details like name, age, family, and hobbies.")
	} else {
		fb = append(fb, "Good content coverage.")
	}
	if awarded[CategorySpeechRate] < 0.6*e.cfg.Maxima.SpeechRate {
		fb = append(fb, "Watch your speaking pace. Aim for ~130 words per minute.")
	}
	if awarded[CategoryClarity] < 2*e.cfg.Maxima.Clarity/3 {
		fb = append(fb, "Try to reduce filler words (um, uh, like) to sound more confident.")
	}
	if awarded[CategoryEngagement] < 2*e.cfg.Maxima.Engagement/3 {
		fb = append(fb, "Try to sound more enthusiastic and positive.")
	}
	return fb
}

// emptyReport is the well-formed zero report for empty-after-trim input.
func (e *Engine) emptyReport() *models.Report {
	m := e.cfg.Maxima
	zero := func(name string, max float64) models.CategoryScore {
		return models.CategoryScore{
			Name:        name,
			Awarded:     0,
			Maximum:     max,
			Explanation: []models.ExplanationEntry{},
		}
	}
	return e.aggregate(
		[]models.CategoryScore{
			zero(CategoryContent, m.Content),
			zero(CategorySpeechRate, m.SpeechRate),
			zero(CategoryLanguage, m.Language),
			zero(CategoryClarity, m.Clarity),
			zero(CategoryEngagement, m.Engagement),
		},
		models.DerivedSignals{EmptyTranscript: true},
	)
}
