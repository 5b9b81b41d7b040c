package wm

import (
	"errors"
	"fmt"
	"time"
)

// Content is what a provider puts inside a window.
type Content interface {
	View(width, height int) string
}

// KeyHandler is implemented by content that reacts to keys while focused.
type KeyHandler interface {
	HandleKey(key string) bool
}

// Ticker is implemented by content that advances with time (players).
type Ticker interface {
	Tick(dt time.Duration)
}

// Closer is implemented by content that releases state when its window is removed.
type Closer interface {
	Close()
}

// SizeHint tells the placement engine which preset to use. Non-zero
// Width or Height override the preset on that axis.
type SizeHint struct {
	Kind   Kind
	Width  int
	Height int
}

// Provider builds fresh window content for a title.
type Provider interface {
	Build(title string) (Content, SizeHint)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(title string) (Content, SizeHint)

// Build calls f.
func (f ProviderFunc) Build(title string) (Content, SizeHint) {
	return f(title)
}

// Providers is the title -> provider table, filled once at startup.
type Providers struct {
	table    map[string]Provider
	order    []string
	fallback Provider
}

// NewProviders returns a table whose fallback renders a generic placeholder.
func NewProviders() *Providers {
	return &Providers{
		table:    make(map[string]Provider),
		fallback: ProviderFunc(placeholder),
	}
}

// Register adds p under title.
func (ps *Providers) Register(title string, p Provider) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if _, exists := ps.table[title]; exists {
		return fmt.Errorf("%q: %w", title, ErrDuplicateProvider)
	}
	ps.table[title] = p
	ps.order = append(ps.order, title)
	return nil
}

// SetFallback replaces the provider used for unregistered titles.
func (ps *Providers) SetFallback(p Provider) {
	if p != nil {
		ps.fallback = p
	}
}

// Lookup returns the provider for title, or the fallback with ok == false.
func (ps *Providers) Lookup(title string) (Provider, bool) {
	if p, ok := ps.table[title]; ok {
		return p, true
	}
	return ps.fallback, false
}

// Titles returns the registered titles in registration order.
func (ps *Providers) Titles() []string {
	out := make([]string, len(ps.order))
	copy(out, ps.order)
	return out
}

// Verify checks that every title has a registered provider.
func (ps *Providers) Verify(titles ...string) error {
	var errs []error
	for _, title := range titles {
		if _, ok := ps.table[title]; !ok {
			errs = append(errs, fmt.Errorf("%q: %w", title, ErrMissingProvider))
		}
	}
	return errors.Join(errs...)
}

type placeholderContent struct {
	title string
}

func (p placeholderContent) View(_, _ int) string {
	return p.title + "\n\nNothing here yet."
}

func placeholder(title string) (Content, SizeHint) {
	return placeholderContent{title: title}, SizeHint{Kind: KindSimple}
}
