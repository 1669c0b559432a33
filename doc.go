// Package scopeprefs provides typed, move-only preference values for
// instrument and application settings.
//
// A Preference holds exactly one payload of a fixed kind (boolean, string,
// real number, or color) together with metadata: a stable identifier, a
// human-readable label and description, a visibility flag, and an optional
// unit of measurement. Kind-specific accessors enforce the stored kind at
// runtime, and a fluent Builder finalizes optional metadata before a value
// is handed to a Registry.
package scopeprefs
