package arn

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cloudsweep/internal/policies"
	"cloudsweep/internal/ports"
	"cloudsweep/internal/registry"
	"cloudsweep/internal/types"
)

const (
	levelScheme = iota
	levelProvider
	levelService
	levelRegion
	levelAccount
	levelResource

	fieldCount = 6
)

// Deps are the external collaborators the level chain queries. Everything
// network-bound lives behind these ports.
type Deps struct {
	Registry   ports.RegistryPort
	Profiles   ports.ProfileStorePort
	Sessions   ports.SessionPort
	Enumerator ports.EnumeratorPort
	Query      ports.QueryCompilerPort
	Regions    policies.RegionPolicy
}

// ARN is a parsed six-field locator and the level chain that resolves it.
// It may be traversed any number of times; each traversal is independent.
type ARN struct {
	levels    [fieldCount]*Level
	deps      Deps
	directory *AccountDirectory
	query     types.Query
	queryExpr string
}

// DefaultLocator matches every resource in every known account.
const DefaultLocator = "arn:aws:*:*:*:*"

// Parse builds a locator from its string form. An optional |expression
// suffix is split off and compiled by the query collaborator; fewer than six
// colon-separated fields default the missing trailing fields to "*", and
// colons beyond the fifth stay part of the resource token verbatim.
func Parse(input string, deps Deps) (*ARN, error) {
	a := &ARN{deps: deps}

	rest := input
	if idx := strings.Index(input, "|"); idx >= 0 {
		expr := input[idx+1:]
		rest = input[:idx]
		if deps.Query == nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("locator has a filter expression but no query compiler is configured")
		}
		query, err := deps.Query.Compile(expr)
		if err != nil {
			return nil, err
		}
		a.query = query
		a.queryExpr = expr
	}

	directory, err := NewAccountDirectory(deps.Profiles)
	if err != nil {
		return nil, err
	}
	a.directory = directory

	patterns := make([]string, fieldCount)
	for i := range patterns {
		patterns[i] = "*"
	}
	copy(patterns, strings.SplitN(rest, ":", fieldCount))
	a.buildLevels(patterns)
	return a, nil
}

func (a *ARN) buildLevels(patterns []string) {
	constant := func(values ...string) choicesFunc {
		return func([]string) ([]string, error) { return values, nil }
	}
	a.levels[levelScheme] = &Level{pattern: patterns[levelScheme], choices: constant("arn")}
	a.levels[levelProvider] = &Level{pattern: patterns[levelProvider], choices: constant(registry.ProviderAWS)}
	a.levels[levelService] = &Level{pattern: patterns[levelService], choices: a.serviceChoices}
	a.levels[levelRegion] = &Level{pattern: patterns[levelRegion], choices: a.regionChoices}
	a.levels[levelAccount] = &Level{pattern: patterns[levelAccount], choices: a.accountChoices}
	a.levels[levelResource] = &Level{
		pattern:  patterns[levelResource],
		choices:  a.resourceChoices,
		matchKey: resourceTypeToken,
	}
}

func (a *ARN) serviceChoices(context []string) ([]string, error) {
	provider := a.Provider().Pattern()
	if len(context) > levelProvider {
		provider = context[levelProvider]
	}
	return a.deps.Registry.Services(provider)
}

func (a *ARN) regionChoices(context []string) ([]string, error) {
	service := a.Service().Pattern()
	if len(context) > levelService {
		service = context[levelService]
	}
	return a.deps.Regions.Regions(service), nil
}

func (a *ARN) accountChoices([]string) ([]string, error) {
	return a.directory.Accounts(), nil
}

// resourceChoices falls back to a lone "*" when the registry lists nothing
// for the service, so a wildcard locator still reaches the terminal metadata
// lookup (and fails there if the type truly cannot be described).
func (a *ARN) resourceChoices(context []string) ([]string, error) {
	provider := a.Provider().Pattern()
	service := a.Service().Pattern()
	if len(context) > levelService {
		provider = context[levelProvider]
		service = context[levelService]
	}
	names, err := a.deps.Registry.Types(provider, service)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return []string{"*"}, nil
	}
	return names, nil
}

func (a *ARN) Scheme() *Level   { return a.levels[levelScheme] }
func (a *ARN) Provider() *Level { return a.levels[levelProvider] }
func (a *ARN) Service() *Level  { return a.levels[levelService] }
func (a *ARN) Region() *Level   { return a.levels[levelRegion] }
func (a *ARN) Account() *Level  { return a.levels[levelAccount] }
func (a *ARN) Resource() *Level { return a.levels[levelResource] }

// Level returns the position by index, Scheme first.
func (a *ARN) Level(index int) *Level {
	return a.levels[index]
}

// Levels returns the number of positions in the chain.
func (a *ARN) Levels() int {
	return fieldCount
}

// Directory exposes the account map built at construction.
func (a *ARN) Directory() *AccountDirectory {
	return a.directory
}

// Query returns the compiled filter expression, if one was supplied.
func (a *ARN) Query() types.Query {
	return a.query
}

// QueryExpression returns the raw filter expression text.
func (a *ARN) QueryExpression() string {
	return a.queryExpr
}

// String joins the six pattern tokens back with colons. The filter
// expression suffix is not part of the locator proper.
func (a *ARN) String() string {
	parts := make([]string, 0, fieldCount)
	for _, level := range a.levels {
		parts = append(parts, level.Pattern())
	}
	return strings.Join(parts, ":")
}
