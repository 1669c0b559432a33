// registry.go
package scopeprefs

import (
	"fmt"
	"sort"
	"sync"
)

// Config holds the internal configuration for a Registry instance.
// It is populated by applying functional Options (e.g., WithLogger)
// when a new Registry is created with NewRegistry().
type Config struct {
	logger Logger
}

// Option defines the signature for a functional option that configures a
// Registry instance.
type Option func(*Config)

// WithLogger is a functional option that sets the Logger implementation for
// the Registry. If not set, a default slog-backed logger writing to
// os.Stderr is used.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

// Registry owns the application's preferences, keyed by identifier. Values
// are moved in on registration, consistent with Preference's move-only
// design; afterwards the Registry is the sole owner and hands out pointers
// to the stored values.
//
// The Registry serializes its own map accesses; mutating a stored
// Preference through a pointer obtained from Get remains a single-owner
// operation and needs external coordination if done from multiple
// goroutines.
type Registry struct {
	mu     sync.RWMutex
	config *Config
	prefs  map[string]*Preference
}

// NewRegistry creates an empty Registry configured by the given options.
func NewRegistry(opts ...Option) *Registry {
	cfg := &Config{
		logger: NewDefaultLogger(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &Registry{
		config: cfg,
		prefs:  make(map[string]*Preference),
	}
}

// Register moves *pref into the registry, leaving the caller's value a
// KindNone husk. It returns ErrInvalidIdentifier for an empty identifier
// and ErrDuplicateIdentifier when the identifier is already registered; in
// both cases pref is left untouched. Registering a moved-from value panics
// with ErrMovedFrom.
func (r *Registry) Register(pref *Preference) error {
	pref.mustLive("Register")

	if pref.identifier == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidIdentifier)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.prefs[pref.identifier]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateIdentifier, pref.identifier)
	}

	stored := new(Preference)
	stored.MoveFrom(pref)
	r.prefs[stored.identifier] = stored

	r.config.logger.Debug("registered preference",
		"identifier", stored.identifier, "kind", stored.kind.String())
	return nil
}

// Get returns the stored Preference for the identifier. The returned
// pointer is the registered value itself: edits through the typed setters
// are visible to every other reader of the registry.
func (r *Registry) Get(identifier string) (*Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pref, exists := r.prefs[identifier]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, identifier)
	}
	return pref, nil
}

// Visible returns the preferences whose visibility flag is set, sorted by
// identifier. This is the enumeration a rendering layer works from.
func (r *Registry) Visible() []*Preference {
	r.mu.RLock()
	defer r.mu.RUnlock()

	visible := make([]*Preference, 0, len(r.prefs))
	for _, pref := range r.prefs {
		if pref.visible {
			visible = append(visible, pref)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].identifier < visible[j].identifier
	})
	return visible
}

// Identifiers returns all registered identifiers in sorted order.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identifiers := make([]string, 0, len(r.prefs))
	for identifier := range r.prefs {
		identifiers = append(identifiers, identifier)
	}
	sort.Strings(identifiers)
	return identifiers
}

// Len returns the number of registered preferences.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prefs)
}
