// Package streak fetches and aggregates commit-streak statistics for a
// fixed roster of GitHub users. The upstream stats service renders the
// numbers as markup with no schema contract, so extraction is positional
// and every way it can go wrong is a distinguishable error.
package streak

import "errors"

var (
	// ErrTransport covers HTTP-level failures: connection errors,
	// timeouts, and non-success status codes.
	ErrTransport = errors.New("transport failure")

	// ErrStructure means the document did not have the expected shape
	// at the expected position.
	ErrStructure = errors.New("unexpected document structure")

	// ErrNumericFormat means the structural path resolved but the leaf
	// text was not a non-negative base-10 integer.
	ErrNumericFormat = errors.New("malformed numeric field")
)

// Record holds the two streak values extracted for one roster member.
// Longest is historically expected to be >= Current but the upstream
// never promises that and this package does not check it.
type Record struct {
	User    string
	Current int
	Longest int
}
