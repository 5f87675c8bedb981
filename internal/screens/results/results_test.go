package results

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/store"
)

type fakeRepo struct {
	results []store.Result
	err     error
	limit   int
}

func (f *fakeRepo) AppendResult(context.Context, store.Result) (int, error) { return 0, nil }

func (f *fakeRepo) ListResults(_ context.Context, limit int) ([]store.Result, error) {
	f.limit = limit
	return f.results, f.err
}

func load(t *testing.T, s *ResultsScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should load results")
	}
	s.Update(cmd())
}

func TestResultsScreen_List(t *testing.T) {
	repo := &fakeRepo{results: []store.Result{
		{Name: "Ana Ruiz", Country: "Chile", Modality: "multiple-choice", Correct: 9, Total: 10, Percent: 90, RecordedAt: time.Now()},
		{Name: "Luis Paz", Country: "Peru", Modality: "visual-measurement", Correct: 1, Total: 4, Percent: 25, RecordedAt: time.Now()},
	}}
	s := New(repo)
	load(t, s)

	if repo.limit != listLimit {
		t.Errorf("limit = %d, want %d", repo.limit, listLimit)
	}
	view := s.View(120, 30)
	for _, want := range []string{"Ana Ruiz", "9/10", "Luis Paz", "25%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Peru") {
		t.Error("details should be collapsed")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "Peru") {
		t.Error("enter should expand the selected result")
	}
}

func TestResultsScreen_Empty(t *testing.T) {
	s := New(&fakeRepo{})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "No results yet") {
		t.Error("expected empty message")
	}
}

func TestResultsScreen_Error(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("database is locked")})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "database is locked") {
		t.Error("expected error message")
	}
}

func TestResultsScreen_Esc(t *testing.T) {
	s := New(&fakeRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("María José Fernández", 10); got != "María Jos…" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("Ana", 10); got != "Ana" {
		t.Errorf("truncate() = %q", got)
	}
}
