package ports

import (
	"context"
	"iter"

	"cloudsweep/internal/types"
)

// EnumeratorPort performs the terminal enumeration call for one resource
// type. Pagination is handled internally; items stream out lazily. Scalar
// result lists are normalized to single-field records keyed by the metadata
// id field.
type EnumeratorPort interface {
	Enumerate(ctx context.Context, sess Session, region string, meta types.ResourceMeta, args map[string]any) iter.Seq2[map[string]any, error]
}
