package tensor

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Variance tags an index as lower (covariant) or upper (contravariant).
type Variance int

const (
	// Covariant is a lower index, used uniformly for linear functionals.
	Covariant Variance = iota
	// Contravariant is an upper index, used uniformly for n-vectors.
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	}
	return fmt.Sprintf("Variance(%d)", int(v))
}

// Index is a named, sized tensor dimension. It is pure data: validity
// (Size > 0) is enforced by the generator engine, not here.
type Index struct {
	Name     rune
	Size     int
	Variance Variance
}

// Equal reports structural equality: name, size and variance all match.
func (i Index) Equal(other Index) bool {
	return i.Name == other.Name && i.Size == other.Size && i.Variance == other.Variance
}

func (i Index) String() string {
	return fmt.Sprintf("%c[%d]/%s", i.Name, i.Size, i.Variance)
}

// splitNames returns one rune per index. The string is NFC-normalized
// first so a combining sequence the caller sees as one character counts
// as one index.
func splitNames(names string) []rune {
	return []rune(norm.NFC.String(names))
}

// SingleIndexName reports whether names denotes exactly one index, and if
// so returns its rune. Rank-1 front-ends use this to enforce their arity
// before any other work.
func SingleIndexName(names string) (rune, bool) {
	rs := splitNames(names)
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}
