package progress

// PassThreshold is the overall percentage needed to pass a module.
const PassThreshold = 70

// Summary is the end-of-module report.
type Summary struct {
	Score      Score
	Passed     bool
	Verdict    string
	Rating     string
	Topics     []TopicStat
	WeakTopics []string
}

// Summarize reduces a ledger into its final report.
func Summarize(l *Ledger) Summary {
	score := l.Score()
	passed := score.Total > 0 && score.Percent >= PassThreshold

	verdict := "Needs reinforcement"
	if passed {
		verdict = "Passed"
	}

	return Summary{
		Score:      score,
		Passed:     passed,
		Verdict:    verdict,
		Rating:     rating(score.Percent),
		Topics:     l.TopicBreakdown(),
		WeakTopics: l.WeakTopics(),
	}
}

func rating(pct int) string {
	switch {
	case pct >= 90:
		return "Excellent"
	case pct >= PassThreshold:
		return "Good"
	default:
		return "Fair"
	}
}
