package app

import (
	"context"
	"iter"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cloudsweep/internal/types"
)

type ScanRequest struct {
	Locator string
	Limit   int
}

// Scan parses the locator and returns its lazy resource stream. A positive
// Limit stops the traversal after that many resources; nothing beyond them
// is fetched.
func (s Service) Scan(ctx context.Context, req ScanRequest) (iter.Seq2[types.Resource, error], error) {
	if strings.TrimSpace(req.Locator) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("locator is required")
	}
	locator, err := s.Locator(req.Locator)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().Str("locator", locator.String()).Msg("starting scan")
	resources := locator.Resources(ctx)
	if req.Limit <= 0 {
		return resources, nil
	}
	return func(yield func(types.Resource, error) bool) {
		produced := 0
		for resource, err := range resources {
			if !yield(resource, err) || err != nil {
				return
			}
			produced++
			if produced >= req.Limit {
				return
			}
		}
	}, nil
}
