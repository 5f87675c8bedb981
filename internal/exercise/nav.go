package exercise

import "github.com/aureus/cardiosim/internal/bank"

// SameTopic returns the first index after i whose topic equals list[i]'s.
func SameTopic(list []bank.Question, i int) (int, bool) {
	if i < 0 || i >= len(list) {
		return 0, false
	}
	for j := i + 1; j < len(list); j++ {
		if list[j].Topic == list[i].Topic {
			return j, true
		}
	}
	return 0, false
}

// DifferentTopic returns the first index after i whose topic differs from
// list[i]'s.
func DifferentTopic(list []bank.Question, i int) (int, bool) {
	if i < 0 || i >= len(list) {
		return 0, false
	}
	for j := i + 1; j < len(list); j++ {
		if list[j].Topic != list[i].Topic {
			return j, true
		}
	}
	return 0, false
}

// Continue prefers the same topic and falls back to a different one.
func Continue(list []bank.Question, i int) (int, bool) {
	if j, ok := SameTopic(list, i); ok {
		return j, true
	}
	return DifferentTopic(list, i)
}
