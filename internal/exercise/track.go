package exercise

import "github.com/aureus/cardiosim/internal/bank"

// Track is the cursor over one modality's question list. It owns the
// per-question states, keyed by question id: a state is built on first
// access and dropped when the cursor moves past its question.
type Track[S any] struct {
	questions []bank.Question
	index     int
	states    map[string]S
	newState  func(*bank.Question) S
}

// NewTrack creates a track positioned on the first question.
func NewTrack[S any](questions []bank.Question, newState func(*bank.Question) S) *Track[S] {
	return &Track[S]{
		questions: questions,
		states:    make(map[string]S),
		newState:  newState,
	}
}

// Current returns the question under the cursor and its state. ok is
// false once the track is done.
func (t *Track[S]) Current() (q *bank.Question, state S, ok bool) {
	if t.Done() {
		return nil, state, false
	}
	q = &t.questions[t.index]
	state, exists := t.states[q.ID]
	if !exists {
		state = t.newState(q)
		t.states[q.ID] = state
	}
	return q, state, true
}

// Index returns the cursor position. It equals Len when done.
func (t *Track[S]) Index() int { return t.index }

// Len returns the number of questions.
func (t *Track[S]) Len() int { return len(t.questions) }

// Done reports whether the cursor has moved past the last question.
func (t *Track[S]) Done() bool { return t.index >= len(t.questions) }

// Questions returns the underlying list.
func (t *Track[S]) Questions() []bank.Question { return t.questions }

// HasState reports whether a state exists for the question id.
func (t *Track[S]) HasState(id string) bool {
	_, ok := t.states[id]
	return ok
}

// Next moves to the following question in list order, finishing the
// track after the last one.
func (t *Track[S]) Next() {
	if t.Done() {
		return
	}
	t.moveTo(t.index + 1)
}

// SameTopic moves to the next question of the current topic.
func (t *Track[S]) SameTopic() bool {
	return t.resolve(SameTopic)
}

// DifferentTopic moves to the next question of another topic.
func (t *Track[S]) DifferentTopic() bool {
	return t.resolve(DifferentTopic)
}

// Continue moves to the same topic if possible, else a different one.
func (t *Track[S]) Continue() bool {
	return t.resolve(Continue)
}

// Finish moves the cursor past the end.
func (t *Track[S]) Finish() {
	t.moveTo(len(t.questions))
}

// Reset rewinds to the first question and drops all states.
func (t *Track[S]) Reset() {
	t.index = 0
	t.states = make(map[string]S)
}

func (t *Track[S]) resolve(policy func([]bank.Question, int) (int, bool)) bool {
	j, ok := policy(t.questions, t.index)
	if !ok {
		return false
	}
	t.moveTo(j)
	return true
}

// moveTo drops the current question's state before repositioning.
func (t *Track[S]) moveTo(j int) {
	if !t.Done() {
		delete(t.states, t.questions[t.index].ID)
	}
	if j > len(t.questions) {
		j = len(t.questions)
	}
	t.index = j
}
