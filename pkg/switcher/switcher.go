// Package switcher cycles through a fixed set of figures, one activation at
// a time, independent of the UI toolkit that displays them.
package switcher

import (
	"errors"
	"sync"
)

// ErrNoFigures is returned by Show when called without figures.
var ErrNoFigures = errors.New("no figures to switch between")

// Host is the display surface a Switcher drives. Render replaces whatever
// was shown before with content. OnActivate registers the handler that is
// called every time the user asks for the next figure.
type Host[T any] interface {
	Render(content T)
	OnActivate(handler func())
}

// Switcher shows one of a fixed, ordered set of figures and wraps around
// to the first after the last.
type Switcher[T any] struct {
	host Host[T]
	figs []T

	mu    sync.Mutex
	index int
}

// Show registers a switcher on host and renders the first figure right away.
func Show[T any](host Host[T], figs ...T) (*Switcher[T], error) {
	if len(figs) == 0 {
		return nil, ErrNoFigures
	}

	s := &Switcher[T]{
		host: host,
		figs: append([]T(nil), figs...),
	}
	host.OnActivate(s.Next)
	host.Render(s.figs[0])
	return s, nil
}

// Next advances to the following figure and renders it.
func (s *Switcher[T]) Next() {
	s.mu.Lock()
	s.index = (s.index + 1) % len(s.figs)
	fig := s.figs[s.index]
	s.mu.Unlock()

	s.host.Render(fig)
}

// Index returns the position of the figure currently shown.
func (s *Switcher[T]) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Current returns the figure currently shown.
func (s *Switcher[T]) Current() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.figs[s.index]
}

// Len returns the cycle length.
func (s *Switcher[T]) Len() int {
	return len(s.figs)
}
