package arn

import (
	"context"
	"fmt"
	"iter"
	"maps"

	"github.com/rs/zerolog/log"

	"cloudsweep/internal/types"
)

// Resources walks the level chain depth-first and lazily yields every
// concrete resource the locator matches. Each call starts an independent
// traversal; breaking out of the range stops all further work cleanly. An
// empty match set at any level prunes that branch silently, while account
// resolution, registry and collaborator failures end the stream with the
// error after whatever was already produced.
func (a *ARN) Resources(ctx context.Context) iter.Seq2[types.Resource, error] {
	return func(yield func(types.Resource, error) bool) {
		a.walk(ctx, 0, nil, yield)
	}
}

func (a *ARN) walk(ctx context.Context, depth int, resolved []string, yield func(types.Resource, error) bool) bool {
	if depth == levelResource {
		return a.enumerate(ctx, resolved, yield)
	}
	matches, err := a.levels[depth].Matches(resolved)
	if err != nil {
		yield(types.Resource{}, err)
		return false
	}
	log.Ctx(ctx).Debug().
		Int("depth", depth).
		Strs("resolved", resolved).
		Strs("matches", matches).
		Msg("level matched")
	for _, match := range matches {
		if !a.walk(ctx, depth+1, appendContext(resolved, match), yield) {
			return false
		}
	}
	return true
}

// appendContext copies so sibling branches and concurrent traversals never
// share a backing array.
func appendContext(resolved []string, value string) []string {
	next := make([]string, len(resolved), len(resolved)+1)
	copy(next, resolved)
	return append(next, value)
}

func (a *ARN) enumerate(ctx context.Context, resolved []string, yield func(types.Resource, error) bool) bool {
	scheme := resolved[levelScheme]
	provider := resolved[levelProvider]
	service := resolved[levelService]
	region := resolved[levelRegion]
	account := resolved[levelAccount]

	profile, err := a.directory.Resolve(account)
	if err != nil {
		yield(types.Resource{}, err)
		return false
	}
	sess, err := a.deps.Sessions.Open(ctx, profile)
	if err != nil {
		yield(types.Resource{}, err)
		return false
	}

	_, resourceID := splitResourceToken(a.Resource().Pattern())
	typeMatches, err := a.Resource().Matches(resolved)
	if err != nil {
		yield(types.Resource{}, err)
		return false
	}
	for _, typeName := range typeMatches {
		meta, err := a.deps.Registry.Lookup(provider, service, typeName)
		if err != nil {
			yield(types.Resource{}, err)
			return false
		}
		args := map[string]any{}
		maps.Copy(args, meta.ExtraArgs)
		clientSide := false
		if resourceID != "" && resourceID != "*" {
			switch {
			case meta.FilterName == "":
				clientSide = true
			case meta.FilterKind == types.FilterKindList:
				args[meta.FilterName] = []string{resourceID}
			default:
				args[meta.FilterName] = resourceID
			}
		}
		log.Ctx(ctx).Debug().
			Str("service", service).
			Str("region", region).
			Str("account", account).
			Str("type", typeName).
			Str("op", meta.EnumOp).
			Bool("client_side_filter", clientSide).
			Msg("enumerating")
		for item, err := range a.deps.Enumerator.Enumerate(ctx, sess, region, meta, args) {
			if err != nil {
				yield(types.Resource{}, err)
				return false
			}
			id := itemID(item, meta)
			if clientSide && id != resourceID {
				continue
			}
			resource := types.Resource{
				Scheme:   scheme,
				Provider: provider,
				Service:  service,
				Region:   region,
				Account:  account,
				Type:     typeName,
				ID:       id,
				Data:     item,
				Query:    a.query,
			}
			if !yield(resource, nil) {
				return false
			}
		}
	}
	return true
}

func itemID(item map[string]any, meta types.ResourceMeta) string {
	value, ok := item[meta.ID]
	if !ok {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
