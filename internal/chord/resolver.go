package chord

// UnknownKeyName is the placeholder name for keycodes the resolver cannot
// map. It matches the name xkbcommon reports for the null keysym, so
// output stays comparable across resolver implementations.
const UnknownKeyName = "NoSymbol"

// Info describes a resolved key: its display name and classification.
type Info struct {
	Name     string
	Modifier bool
}

// Resolver maps keycodes to key descriptions.
//
// Implementations must be deterministic: the same Keycode always yields
// the same Info. Resolve reports ok=false for unknown codes; callers
// treat those as non-modifiers with UnknownKeyName rather than failing.
//
// Implemented by keysym.Table (production) and test stubs.
type Resolver interface {
	Resolve(code Keycode) (Info, bool)
}

// resolve looks up a keycode, substituting the placeholder description
// for unknown codes. Rendering never fails on an unresolvable key.
func resolve(r Resolver, code Keycode) Info {
	info, ok := r.Resolve(code)
	if !ok {
		return Info{Name: UnknownKeyName, Modifier: false}
	}
	return info
}
