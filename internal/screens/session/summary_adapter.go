package session

import (
	"github.com/aureus/cardiosim/internal/screen"
	"github.com/aureus/cardiosim/internal/screens/summary"
	sess "github.com/aureus/cardiosim/internal/session"
)

// newSummaryScreen builds the report shown when the session completes.
func newSummaryScreen(s *sess.Session) screen.Screen {
	return summary.New(s)
}
