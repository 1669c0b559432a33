// builder.go
package scopeprefs

import "fmt"

// Builder finalizes optional metadata on a freshly constructed Preference
// before it is handed to its long-term owner. Each configuration step
// returns the builder for chaining; Build is terminal and moves the value
// out. A Builder owns its Preference exclusively and is single-use: any
// call after Build panics with ErrBuilderConsumed.
type Builder struct {
	pref     Preference
	consumed bool
}

// NewBuilder wraps a Preference for chained configuration, taking ownership
// of it. Passing a moved-from value panics with ErrMovedFrom.
func NewBuilder(pref Preference) *Builder {
	b := &Builder{}
	b.pref.MoveFrom(&pref)
	return b
}

// IsVisible sets the visibility flag on the wrapped Preference.
func (b *Builder) IsVisible(visible bool) *Builder {
	b.mustLive("IsVisible")
	b.pref.SetVisible(visible)
	return b
}

// WithUnit attaches a unit of measurement to the wrapped Preference.
func (b *Builder) WithUnit(unitType UnitType) *Builder {
	b.mustLive("WithUnit")
	b.pref.SetUnit(NewUnit(unitType))
	return b
}

// Build yields the configured Preference, consuming the builder.
func (b *Builder) Build() Preference {
	b.mustLive("Build")
	b.consumed = true
	var out Preference
	out.MoveFrom(&b.pref)
	return out
}

func (b *Builder) mustLive(op string) {
	if b.consumed {
		panic(fmt.Errorf("%w: %s", ErrBuilderConsumed, op))
	}
}
