// Package chord provides the core key chord model for clefd.
//
// This package contains pure state and rendering logic only. It imports
// nothing internal; every other internal package builds on top of it.
// There is no I/O here - device input, name tables, and transports are
// supplied by callers through the Resolver and by the engine package.
//
// A chord is a transient, derived value: zero or more modifier keys held
// together with exactly one non-modifier key. The canonical string form
// is the sorted modifier names followed by the single non-modifier name,
// all space-separated ("Control_L Shift_L a").
//
// Key design constraints:
//   - Keycodes are opaque identities; name resolution is the Resolver's job
//   - Classification is a fixed membership test over keysym names
//   - Rendering is deterministic: the same held set in any order produces
//     byte-identical output
//   - The pressed-key set is bounded and never holds duplicates
package chord
