package types

type FilterKind string

const (
	FilterKindNone   FilterKind = ""
	FilterKindScalar FilterKind = "scalar"
	FilterKindList   FilterKind = "list"
)
