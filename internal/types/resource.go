package types

import "strings"

// Query is a compiled filter expression attached to resources produced by a
// scan. Evaluation is driven by the consumer, not by the traversal itself.
type Query interface {
	Evaluate(datum any) (bool, error)
}

// ResourceMeta describes how to enumerate one resource type against the
// provider API: the list operation, where the items live in the response,
// which field identifies an item, and the optional server-side id filter.
type ResourceMeta struct {
	Service    string         `yaml:"service"`
	Type       string         `yaml:"type"`
	EnumOp     string         `yaml:"enum_op"`
	ResultPath string         `yaml:"result_path"`
	ID         string         `yaml:"id"`
	FilterName string         `yaml:"filter_name"`
	FilterKind FilterKind     `yaml:"filter_kind"`
	ExtraArgs  map[string]any `yaml:"extra_args"`
}

// Resource is one fully-resolved coordinate plus the raw item returned by the
// enumeration call.
type Resource struct {
	Scheme   string
	Provider string
	Service  string
	Region   string
	Account  string
	Type     string
	ID       string
	Data     map[string]any
	Query    Query
}

// ARN renders the resource's concrete six-field locator string.
func (r Resource) ARN() string {
	resource := r.Type
	if r.ID != "" {
		resource = r.Type + "/" + r.ID
	}
	return strings.Join([]string{r.Scheme, r.Provider, r.Service, r.Region, r.Account, resource}, ":")
}

// ProfileConfig is the scoped configuration of one credential profile.
type ProfileConfig struct {
	Name          string
	AccountID     string
	Region        string
	RoleARN       string
	SourceProfile string
}
