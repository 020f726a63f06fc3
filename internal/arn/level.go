package arn

type choicesFunc func(context []string) ([]string, error)

// Level is one fixed position in the locator hierarchy. Every position
// shares the same matching pipeline and differs only in how it computes its
// candidate values; the Resource position additionally reduces its token to
// the type portion before matching.
type Level struct {
	pattern  string
	choices  choicesFunc
	matchKey func(token string) string
}

func (l *Level) Pattern() string {
	return l.pattern
}

// Choices returns every legal value at this position, optionally narrowed by
// the values already resolved above it.
func (l *Level) Choices(context []string) ([]string, error) {
	return l.choices(context)
}

// Match filters the choices down to those the token's regular expression
// finds a substring match in.
func (l *Level) Match(token string, context []string) ([]string, error) {
	if l.matchKey != nil {
		token = l.matchKey(token)
	}
	choices, err := l.Choices(context)
	if err != nil {
		return nil, err
	}
	return filterPattern(token, choices)
}

// Matches filters the choices by the level's own pattern token.
func (l *Level) Matches(context []string) ([]string, error) {
	return l.Match(l.pattern, context)
}

// Complete returns the choices that literally start with prefix. It bypasses
// the regex pipeline entirely.
func (l *Level) Complete(prefix string, context []string) ([]string, error) {
	choices, err := l.Choices(context)
	if err != nil {
		return nil, err
	}
	return filterPrefix(prefix, choices), nil
}
