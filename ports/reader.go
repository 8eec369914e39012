package ports

import (
	"context"

	"calfit/domain/sample"
)

// SampleReader parses raw coordinate data from a file into a sample set.
// The second return value carries per-line warnings for inputs that were
// skipped (malformed rows); these are non-fatal and the rest of the file is
// still processed.
type SampleReader interface {
	Read(ctx context.Context, path string) (*sample.Set, []string, error)
}
