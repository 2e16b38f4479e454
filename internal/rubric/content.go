package rubric

import "ai-intro-scoring-service/internal/models"

// scoreContent evaluates the Content & Structure category: salutation tier,
// must-have markers, good-to-have markers, and flow ordering.
func (e *Engine) scoreContent(t transcript) models.CategoryScore {
	cfg := e.cfg

	salutation := e.salutationPoints(t)
	mustHave := markerPoints(t, cfg.MustHave)
	goodToHave := markerPoints(t, cfg.GoodToHave)
	flow := e.flowPoints(t)

	awarded := clamp(salutation+mustHave+goodToHave+flow, 0, cfg.Maxima.Content)

	return models.CategoryScore{
		Name:    CategoryContent,
		Awarded: awarded,
		Maximum: cfg.Maxima.Content,
		Explanation: []models.ExplanationEntry{
			{Signal: "salutation", Points: salutation},
			{Signal: "must_have_markers", Points: mustHave},
			{Signal: "good_to_have_markers", Points: goodToHave},
			{Signal: "flow", Points: flow},
		},
	}
}

// salutationPoints awards the highest matching greeting tier.
func (e *Engine) salutationPoints(t transcript) float64 {
	s := e.cfg.Salutation
	switch {
	case t.matchesAny(s.Strong):
		return s.StrongPoints
	case t.matchesAny(s.Good):
		return s.GoodPoints
	case t.matchesAny(s.Basic):
		return s.BasicPoints
	default:
		return 0
	}
}

// markerPoints awards a fixed share per detected marker, capped. Markers
// are all-or-nothing; a missing marker contributes zero for its slot.
func markerPoints(t transcript, mc MarkerConfig) float64 {
	points := 0.0
	for _, m := range mc.Markers {
		if t.matchesAny(m.Patterns) {
			points += mc.PointsPer
		}
	}
	return clamp(points, 0, mc.Max)
}

// flowPoints compares the observed first-occurrence order of detected
// sections against the canonical order. Each adjacent pair out of order
// deducts a fixed penalty; a fully monotonic transcript keeps the full
// allocation.
func (e *Engine) flowPoints(t transcript) float64 {
	cfg := e.cfg
	indices := e.sectionIndices(t)

	type hit struct {
		section string
		idx     int
	}
	var detected []hit
	for _, name := range cfg.Flow.Order {
		if idx, ok := indices[name]; ok && idx >= 0 {
			detected = append(detected, hit{section: name, idx: idx})
		}
	}

	inversions := 0
	for i := 1; i < len(detected); i++ {
		if detected[i-1].idx > detected[i].idx {
			inversions++
		}
	}

	return clamp(cfg.Flow.Max-float64(inversions)*cfg.Flow.Penalty, 0, cfg.Flow.Max)
}

// sectionIndices finds the first byte offset of each flow section. Sections
// are the salutation, the closing phrases, and the must-have markers.
func (e *Engine) sectionIndices(t transcript) map[string]int {
	cfg := e.cfg
	indices := make(map[string]int, len(cfg.Flow.Order))

	for _, name := range cfg.Flow.Order {
		switch name {
		case "salutation":
			all := make([]string, 0, len(cfg.Salutation.Strong)+len(cfg.Salutation.Good)+len(cfg.Salutation.Basic))
			all = append(all, cfg.Salutation.Strong...)
			all = append(all, cfg.Salutation.Good...)
			all = append(all, cfg.Salutation.Basic...)
			if idx := t.firstIndex(all); idx >= 0 {
				indices[name] = idx
			}
		case "closing":
			if idx := t.firstIndex(cfg.Flow.Closing); idx >= 0 {
				indices[name] = idx
			}
		default:
			for _, m := range cfg.MustHave.Markers {
				if m.Name != name {
					continue
				}
				if idx := t.firstIndex(m.Patterns); idx >= 0 {
					indices[name] = idx
				}
			}
		}
	}
	return indices
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
