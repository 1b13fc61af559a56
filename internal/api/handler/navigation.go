package handler

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/domain"
)

// Navigator follows session transitions and keeps the path the console should
// show next: the login page once the session ends, the role home once it
// starts. Handlers read Target to build redirects.
type Navigator struct {
	log zerolog.Logger

	mu     sync.RWMutex
	target string
}

func NewNavigator(logger zerolog.Logger) *Navigator {
	return &Navigator{
		log:    logger.With().Str("component", "navigator").Logger(),
		target: domain.LoginPath,
	}
}

// Observe is registered with SessionController.Subscribe.
func (n *Navigator) Observe(t domain.SessionTransition) {
	var next string
	switch t.To {
	case domain.SessionAnonymous:
		next = domain.LoginPath
	case domain.SessionAuthenticated:
		next = t.Role.HomePath()
	default:
		return
	}

	n.mu.Lock()
	n.target = next
	n.mu.Unlock()

	n.log.Info().
		Str("from", string(t.From)).
		Str("to", string(t.To)).
		Str("redirect", next).
		Msg("navigating")
}

// Target returns the most recent navigation target.
func (n *Navigator) Target() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.target
}
