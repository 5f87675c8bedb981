package progress

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/aureus/cardiosim/internal/bank"
)

func TestScore_EmptyLedger(t *testing.T) {
	l := NewLedger()
	s := l.Score()
	if s.Percent != 0 || s.Total != 0 || s.Correct != 0 {
		t.Errorf("Score() = %+v, want zero", s)
	}
}

func TestRecord_DuplicateSuppressed(t *testing.T) {
	l := NewLedger()
	if !l.Record("q1", "PR", bank.ModalityOpen, Single(true)) {
		t.Fatal("first Record should succeed")
	}
	if l.Record("q1", "PR", bank.ModalityOpen, Single(false)) {
		t.Error("second Record for same id should be suppressed")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if tc := l.Topic("PR"); tc.OK != 1 || tc.Fail != 0 {
		t.Errorf("Topic(PR) = %+v, want {1 0}", tc)
	}
}

func TestAggregateMatchesRecords(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	topics := []string{"PR", "QRS", "QT", "Axis"}

	for run := 0; run < 50; run++ {
		l := NewLedger()
		n := r.IntN(40)
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("q%d", r.IntN(25)) // forces duplicates
			l.Record(id, topics[r.IntN(len(topics))], bank.ModalityChoice, Single(r.IntN(2) == 0))
		}

		sum := 0
		for _, name := range topics {
			sum += l.Topic(name).Total()
		}
		if sum != l.Len() {
			t.Fatalf("run %d: aggregate total %d != records %d", run, sum, l.Len())
		}

		seen := map[string]bool{}
		for _, rec := range l.Records() {
			if seen[rec.QuestionID] {
				t.Fatalf("run %d: duplicate record for %s", run, rec.QuestionID)
			}
			seen[rec.QuestionID] = true
		}
	}
}

func TestScore_Percent(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{1, 1, 100},
		{2, 3, 67},
		{1, 3, 33},
		{1, 8, 12}, // 12.5 rounds to even
		{3, 8, 38}, // 37.5 rounds to even
		{0, 4, 0},
	}
	for _, tt := range tests {
		l := NewLedger()
		for i := 0; i < tt.total; i++ {
			l.Record(fmt.Sprintf("q%d", i), "T", bank.ModalityChoice, Single(i < tt.correct))
		}
		if got := l.Score().Percent; got != tt.want {
			t.Errorf("%d/%d Percent = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		ok, fail int
		want     Level
	}{
		{8, 2, LevelExcellent},
		{3, 1, LevelExcellent},
		{5, 5, LevelAcceptable},
		{1, 9, LevelNeedsReinforcement},
		{0, 0, LevelNeedsReinforcement},
		{74, 26, LevelAcceptable},
		// 74.67% shows as 75% and tiers with it.
		{224, 76, LevelExcellent},
		{149, 151, LevelAcceptable},
		{148, 152, LevelNeedsReinforcement},
	}
	for _, tt := range tests {
		got := LevelFor(TopicCount{OK: tt.ok, Fail: tt.fail})
		if got != tt.want {
			t.Errorf("LevelFor(%d/%d) = %q, want %q", tt.ok, tt.fail, got, tt.want)
		}
	}
}

func TestTopicBreakdown_LevelMatchesPercent(t *testing.T) {
	l := NewLedger()
	fill(l, "Axis", 224, 76)
	rows := l.TopicBreakdown()
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Percent != 75 || rows[0].Level != LevelExcellent {
		t.Errorf("row = %d%% %q, want 75%% excellent", rows[0].Percent, rows[0].Level)
	}
}

func fill(l *Ledger, topic string, ok, fail int) {
	for i := 0; i < ok; i++ {
		l.Record(fmt.Sprintf("%s-ok-%d", topic, i), topic, bank.ModalityVisual, OnAttempt(1, true))
	}
	for i := 0; i < fail; i++ {
		l.Record(fmt.Sprintf("%s-fail-%d", topic, i), topic, bank.ModalityVisual, OnAttempt(2, false))
	}
}

func TestTopicBreakdown(t *testing.T) {
	l := NewLedger()
	fill(l, "A", 8, 2)
	fill(l, "B", 5, 5)
	fill(l, "C", 1, 9)

	rows := l.TopicBreakdown()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	want := []struct {
		topic string
		pct   int
		level Level
	}{
		{"A", 80, LevelExcellent},
		{"B", 50, LevelAcceptable},
		{"C", 10, LevelNeedsReinforcement},
	}
	for i, w := range want {
		if rows[i].Topic != w.topic || rows[i].Percent != w.pct || rows[i].Level != w.level {
			t.Errorf("rows[%d] = %+v, want topic=%s pct=%d level=%s", i, rows[i], w.topic, w.pct, w.level)
		}
	}
}

func TestWeakTopics(t *testing.T) {
	l := NewLedger()
	fill(l, "weak", 2, 3)
	fill(l, "tie", 3, 3)
	fill(l, "strong", 4, 1)

	weak := l.WeakTopics()
	if len(weak) != 1 || weak[0] != "weak" {
		t.Errorf("WeakTopics() = %v, want [weak]", weak)
	}
}

func TestReset(t *testing.T) {
	l := NewLedger()
	fill(l, "A", 2, 1)
	l.Reset()
	if l.Len() != 0 || len(l.TopicBreakdown()) != 0 || l.Has("A-ok-0") {
		t.Error("Reset should clear records, topics and the duplicate guard")
	}
}

func TestOutcomeTag(t *testing.T) {
	tests := map[Outcome]string{
		OnAttempt(1, true):  "correct-first-try",
		OnAttempt(1, false): "failed-first-try",
		OnAttempt(2, true):  "correct-second-try",
		OnAttempt(2, false): "failed-second-try",
		Single(true):        "correct",
		Single(false):       "fail",
	}
	for o, want := range tests {
		if got := o.Tag(); got != want {
			t.Errorf("%+v.Tag() = %q, want %q", o, got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	l := NewLedger()
	fill(l, "A", 7, 3)

	s := Summarize(l)
	if s.Score.Percent != 70 || !s.Passed || s.Verdict != "Passed" || s.Rating != "Good" {
		t.Errorf("Summarize(7/10) = %+v", s)
	}

	l2 := NewLedger()
	fill(l2, "A", 2, 3)
	s2 := Summarize(l2)
	if s2.Passed || s2.Verdict != "Needs reinforcement" || s2.Rating != "Fair" {
		t.Errorf("Summarize(2/5) = %+v", s2)
	}
	if len(s2.WeakTopics) != 1 {
		t.Errorf("WeakTopics = %v, want [A]", s2.WeakTopics)
	}

	empty := Summarize(NewLedger())
	if empty.Passed || empty.Score.Percent != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}
