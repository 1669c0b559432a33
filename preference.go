// Package scopeprefs defines the core preference value type.
package scopeprefs

import (
	"fmt"
	"image/color"
	"strconv"
)

// Kind identifies the payload type currently stored in a Preference.
type Kind int

// Payload kinds. KindNone is reserved for moved-from values; it is never
// produced by a constructor.
const (
	KindNone Kind = iota
	KindBoolean
	KindString
	KindReal
	KindColor
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindReal:
		return "real"
	case KindColor:
		return "color"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Preference is a single named, typed configuration value with metadata.
// Exactly one payload is live at a time, and the kind tag always identifies
// which one. Kind is fixed at construction: setters and getters for any
// other kind panic with ErrKindMismatch.
//
// Preference is move-only. It must not be copied by assignment; ownership
// is transferred with MoveFrom, which leaves the source as a KindNone husk.
// The only valid operations on a husk are Kind, being the target of another
// MoveFrom, or being discarded. Anything else panics with ErrMovedFrom.
type Preference struct {
	identifier  string
	label       string
	description string

	kind Kind

	// Payload fields. Only the one selected by kind is live.
	boolVal   bool
	stringVal string
	realVal   float64
	colorVal  Color

	visible bool
	unit    Unit
}

// NewBool constructs a boolean preference.
func NewBool(identifier, label, description string, defaultValue bool) Preference {
	p := newPreference(identifier, label, description, KindBoolean)
	p.boolVal = defaultValue
	return p
}

// NewString constructs a string preference.
func NewString(identifier, label, description string, defaultValue string) Preference {
	p := newPreference(identifier, label, description, KindString)
	p.stringVal = defaultValue
	return p
}

// NewReal constructs a real-number preference.
func NewReal(identifier, label, description string, defaultValue float64) Preference {
	p := newPreference(identifier, label, description, KindReal)
	p.realVal = defaultValue
	return p
}

// NewColor constructs a color preference from a rich external color.
// The color is reduced to three 16-bit channels at construction time;
// the input value is not retained.
func NewColor(identifier, label, description string, defaultValue color.Color) Preference {
	return NewColorRaw(identifier, label, description, ColorFrom(defaultValue))
}

// NewColorRaw constructs a color preference directly from raw channels.
func NewColorRaw(identifier, label, description string, defaultValue Color) Preference {
	p := newPreference(identifier, label, description, KindColor)
	p.colorVal = defaultValue
	return p
}

func newPreference(identifier, label, description string, kind Kind) Preference {
	return Preference{
		identifier:  identifier,
		label:       label,
		description: description,
		kind:        kind,
		visible:     true,
		unit:        NewUnit(UnitCounts),
	}
}

// Identifier returns the stable key of the preference.
func (p *Preference) Identifier() string {
	p.mustLive("Identifier")
	return p.identifier
}

// Label returns the human-readable name of the preference.
func (p *Preference) Label() string {
	p.mustLive("Label")
	return p.label
}

// Description returns the human-readable description of the preference.
func (p *Preference) Description() string {
	p.mustLive("Description")
	return p.description
}

// Kind returns the payload kind. Unlike every other accessor it is valid on
// a moved-from value, where it reports KindNone.
func (p *Preference) Kind() Kind {
	return p.kind
}

// Bool returns the boolean payload.
func (p *Preference) Bool() bool {
	p.mustKind(KindBoolean, "Bool")
	return p.boolVal
}

// Real returns the real-number payload.
func (p *Preference) Real() float64 {
	p.mustKind(KindReal, "Real")
	return p.realVal
}

// StringValue returns the string payload.
func (p *Preference) StringValue() string {
	p.mustKind(KindString, "StringValue")
	return p.stringVal
}

// Color reconstructs the rich external color from the stored channels.
// The alpha channel is always fully opaque.
func (p *Preference) Color() color.Color {
	p.mustKind(KindColor, "Color")
	return p.colorVal.External()
}

// ColorRaw returns the internal three-channel color payload.
func (p *Preference) ColorRaw() Color {
	p.mustKind(KindColor, "ColorRaw")
	return p.colorVal
}

// String renders the payload in a human-readable textual form: booleans and
// reals in their natural strconv forms, strings verbatim, colors as a hex
// channel triple. The real form round-trips through strconv.ParseFloat.
func (p *Preference) String() string {
	p.mustLive("String")
	switch p.kind {
	case KindBoolean:
		return strconv.FormatBool(p.boolVal)
	case KindString:
		return p.stringVal
	case KindReal:
		return strconv.FormatFloat(p.realVal, 'g', -1, 64)
	default:
		return p.colorVal.Hex()
	}
}

// SetBool replaces the boolean payload.
func (p *Preference) SetBool(value bool) {
	p.mustKind(KindBoolean, "SetBool")
	p.boolVal = value
}

// SetReal replaces the real-number payload.
func (p *Preference) SetReal(value float64) {
	p.mustKind(KindReal, "SetReal")
	p.realVal = value
}

// SetString replaces the string payload.
func (p *Preference) SetString(value string) {
	p.mustKind(KindString, "SetString")
	p.stringVal = value
}

// SetColor replaces the color payload from a rich external color.
func (p *Preference) SetColor(value color.Color) {
	p.mustKind(KindColor, "SetColor")
	p.colorVal = ColorFrom(value)
}

// SetColorRaw replaces the color payload from raw channels.
func (p *Preference) SetColorRaw(value Color) {
	p.mustKind(KindColor, "SetColorRaw")
	p.colorVal = value
}

// Visible reports whether the preference should be shown by a rendering
// layer. Defaults to true.
func (p *Preference) Visible() bool {
	p.mustLive("Visible")
	return p.visible
}

// SetVisible updates the visibility flag. Valid on any live kind.
func (p *Preference) SetVisible(visible bool) {
	p.mustLive("SetVisible")
	p.visible = visible
}

// Unit returns the unit of measurement attached to the preference.
func (p *Preference) Unit() Unit {
	p.mustLive("Unit")
	return p.unit
}

// HasUnit reports whether a unit other than the counts default was attached.
func (p *Preference) HasUnit() bool {
	p.mustLive("HasUnit")
	return p.unit.Type() != UnitCounts
}

// SetUnit attaches a unit of measurement. Valid on any live kind.
func (p *Preference) SetUnit(unit Unit) {
	p.mustLive("SetUnit")
	p.unit = unit
}

// MoveFrom transfers src's metadata and payload into p, releasing whatever
// payload p currently holds first. After the call src is a KindNone husk.
// Moving from a husk panics with ErrMovedFrom. p may be a zero Preference
// or a husk; releasing those is a no-op.
func (p *Preference) MoveFrom(src *Preference) {
	src.mustLive("MoveFrom")
	p.release()
	*p = *src
	*src = Preference{}
}

// release drops the live payload. The owned string is cleared so the only
// remaining reference to it travels with the moved value; all other payloads
// are trivial. Idempotent: releasing a KindNone value does nothing.
func (p *Preference) release() {
	if p.kind == KindString {
		p.stringVal = ""
	}
	p.kind = KindNone
}

func (p *Preference) mustLive(op string) {
	if p.kind == KindNone {
		panic(fmt.Errorf("%w: %s on %q", ErrMovedFrom, op, p.identifier))
	}
}

func (p *Preference) mustKind(kind Kind, op string) {
	p.mustLive(op)
	if p.kind != kind {
		panic(fmt.Errorf("%w: %s on %s preference %q", ErrKindMismatch, op, p.kind, p.identifier))
	}
}
