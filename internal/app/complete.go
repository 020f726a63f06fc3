package app

import (
	"context"
	"strings"
)

type CompleteRequest struct {
	Locator string
}

// Complete returns the candidate values for the last field of a partial
// locator. Fields before it act as the lookup context; an empty last field
// returns every choice at that position.
func (s Service) Complete(ctx context.Context, req CompleteRequest) ([]string, error) {
	partial := req.Locator
	if idx := strings.Index(partial, "|"); idx >= 0 {
		partial = partial[:idx]
	}
	locator, err := s.Locator(partial)
	if err != nil {
		return nil, err
	}
	fields := strings.SplitN(partial, ":", locator.Levels())
	depth := len(fields) - 1
	return locator.Level(depth).Complete(fields[depth], fields[:depth])
}
