package progress

// Level is the qualitative mastery tier of a topic.
type Level string

const (
	LevelExcellent          Level = "excellent"
	LevelAcceptable         Level = "acceptable"
	LevelNeedsReinforcement Level = "needs reinforcement"
)

// Tier thresholds, in percent.
const (
	ExcellentThreshold  = 75
	AcceptableThreshold = 50
)

// DisplayName returns the capitalized label.
func (lv Level) DisplayName() string {
	switch lv {
	case LevelExcellent:
		return "Excellent"
	case LevelAcceptable:
		return "Acceptable"
	default:
		return "Needs reinforcement"
	}
}

// LevelFor tiers an ok/fail tally on its rounded percentage, the same
// number the breakdown displays.
func LevelFor(c TopicCount) Level {
	if c.Total() == 0 {
		return LevelNeedsReinforcement
	}
	switch pct := percent(c.OK, c.Total()); {
	case pct >= ExcellentThreshold:
		return LevelExcellent
	case pct >= AcceptableThreshold:
		return LevelAcceptable
	default:
		return LevelNeedsReinforcement
	}
}

// TopicStat is one row of the per-topic breakdown.
type TopicStat struct {
	Topic   string
	OK      int
	Fail    int
	Percent int
	Level   Level
}

// TopicBreakdown returns one row per topic with at least one record, in
// the order topics were first recorded.
func (l *Ledger) TopicBreakdown() []TopicStat {
	var out []TopicStat
	for _, name := range l.order {
		tc := l.topics[name]
		if tc.Total() == 0 {
			continue
		}
		out = append(out, TopicStat{
			Topic:   name,
			OK:      tc.OK,
			Fail:    tc.Fail,
			Percent: percent(tc.OK, tc.Total()),
			Level:   LevelFor(*tc),
		})
	}
	return out
}

// WeakTopics returns the topics with more failures than successes.
func (l *Ledger) WeakTopics() []string {
	var out []string
	for _, name := range l.order {
		tc := l.topics[name]
		if tc.Fail > tc.OK {
			out = append(out, name)
		}
	}
	return out
}
