package ports

import "cloudsweep/internal/types"

// QueryCompilerPort compiles the optional |filter-expression suffix of a
// locator. The compiled query rides along on produced resources; the core
// never evaluates it.
type QueryCompilerPort interface {
	Compile(expression string) (types.Query, error)
}
