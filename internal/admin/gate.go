// Package admin is the passcode dialog that turns on a visitor's admin mode.
package admin

import (
	"log/slog"
	"sync"

	"catalog-backend/internal/i18n"
	"catalog-backend/internal/logging"
	"catalog-backend/internal/metrics"
	"catalog-backend/internal/notice"
)

type Checker interface {
	Verify(passcode string) bool
}

const MsgLoggedOut = "Logged out"

// Gate tracks whether the passcode dialog is showing. It never remembers
// what was typed; a rejected attempt leaves the input empty.
type Gate struct {
	checker Checker
	notify  notice.Notifier
	log     *slog.Logger

	mu       sync.Mutex
	open     bool
	rejected bool
}

type GateState struct {
	Open     bool   `json:"open"`
	Rejected bool   `json:"rejected"`
	Input    string `json:"input"`
}

func NewGate(checker Checker, notify notice.Notifier, log *slog.Logger) *Gate {
	return &Gate{checker: checker, notify: notify, log: logging.OrDiscard(log)}
}

func (g *Gate) Open() {
	g.mu.Lock()
	g.open = true
	g.rejected = false
	g.mu.Unlock()
}

func (g *Gate) Close() {
	g.mu.Lock()
	g.open = false
	g.rejected = false
	g.mu.Unlock()
}

// Submit reports whether the passcode matched. The caller owns the admin
// flag and sets it from the result.
func (g *Gate) Submit(passcode string, text i18n.Admin) bool {
	ok := g.checker != nil && g.checker.Verify(passcode)
	metrics.ObserveAdminLogin(ok)

	g.mu.Lock()
	if ok {
		g.open = false
		g.rejected = false
	} else {
		g.rejected = true
	}
	g.mu.Unlock()

	if ok {
		g.log.Info("admin gate: accepted")
		g.notify.Notify(notice.Success, text.Welcome)
		return true
	}
	g.log.Warn("admin gate: rejected")
	g.notify.Notify(notice.Error, text.Error)
	return false
}

func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return GateState{Open: g.open, Rejected: g.rejected}
}
