// Package text is the rule engine: matchers, replacements and preconditions
// applied in a fixed order to an in-memory buffer.
//
// A literal rule applies iff its substring is present; a regex rule applies
// iff it matches at least once. Conditions are evaluated against the current
// buffer, so a later rule sees what earlier rules inserted.
package text
