package progress

import (
	"math"
	"time"

	"github.com/aureus/cardiosim/internal/bank"
)

// Record is one terminal, graded answer. Records are never mutated.
type Record struct {
	QuestionID string
	Topic      string
	Modality   bank.Modality
	Outcome    Outcome
	At         time.Time
}

// TopicCount is the running ok/fail tally for a topic.
type TopicCount struct {
	OK   int
	Fail int
}

// Total returns OK + Fail.
func (c TopicCount) Total() int { return c.OK + c.Fail }

// Score is the overall result of a ledger.
type Score struct {
	Correct int
	Total   int
	Percent int
}

// Ledger is the append-only attempt log with its per-topic aggregate.
// At most one record is kept per question id.
type Ledger struct {
	records []Record
	seen    map[string]bool
	topics  map[string]*TopicCount
	order   []string
	now     func() time.Time
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		seen:   make(map[string]bool),
		topics: make(map[string]*TopicCount),
		now:    time.Now,
	}
}

// Record appends a terminal outcome for a question. It returns false and
// changes nothing if the question already has a record.
func (l *Ledger) Record(questionID, topic string, modality bank.Modality, o Outcome) bool {
	if l.seen[questionID] {
		return false
	}
	l.seen[questionID] = true
	l.records = append(l.records, Record{
		QuestionID: questionID,
		Topic:      topic,
		Modality:   modality,
		Outcome:    o,
		At:         l.now(),
	})

	tc, ok := l.topics[topic]
	if !ok {
		tc = &TopicCount{}
		l.topics[topic] = tc
		l.order = append(l.order, topic)
	}
	if o.Correct {
		tc.OK++
	} else {
		tc.Fail++
	}
	return true
}

// Has reports whether the question already has a terminal record.
func (l *Ledger) Has(questionID string) bool {
	return l.seen[questionID]
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Records returns a copy of the records in insertion order.
func (l *Ledger) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Topic returns the tally for a topic.
func (l *Ledger) Topic(name string) TopicCount {
	if tc, ok := l.topics[name]; ok {
		return *tc
	}
	return TopicCount{}
}

// Score returns the overall correct count and percentage. An empty ledger
// scores 0%.
func (l *Ledger) Score() Score {
	s := Score{Total: len(l.records)}
	for _, r := range l.records {
		if r.Outcome.Correct {
			s.Correct++
		}
	}
	s.Percent = percent(s.Correct, s.Total)
	return s
}

// Reset clears all records.
func (l *Ledger) Reset() {
	l.records = nil
	l.seen = make(map[string]bool)
	l.topics = make(map[string]*TopicCount)
	l.order = nil
}

// percent returns round(100*n/d), or 0 when d is 0. Halves round to even.
func percent(n, d int) int {
	if d <= 0 {
		return 0
	}
	return int(math.RoundToEven(100 * float64(n) / float64(d)))
}
