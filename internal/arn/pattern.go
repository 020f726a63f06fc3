// Package arn implements the locator matching and traversal core: the
// six-level hierarchy, per-level candidate computation, wildcard/regex
// filtering, and the depth-first lazy walk that resolves a wildcard-bearing
// locator into concrete resources.
package arn

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// compilePattern turns a locator field token into a regular expression.
// "*" means any; everything else compiles verbatim and is matched by
// unanchored substring search.
func compilePattern(token string) (*regexp.Regexp, error) {
	if token == "*" {
		token = ".*"
	}
	re, err := regexp.Compile(token)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid pattern %q", token)).
			WithCause(err)
	}
	return re, nil
}

func filterPattern(token string, choices []string) ([]string, error) {
	re, err := compilePattern(token)
	if err != nil {
		return nil, err
	}
	var matches []string
	for _, choice := range choices {
		if re.MatchString(choice) {
			matches = append(matches, choice)
		}
	}
	return matches, nil
}

func filterPrefix(prefix string, choices []string) []string {
	var matches []string
	for _, choice := range choices {
		if strings.HasPrefix(choice, prefix) {
			matches = append(matches, choice)
		}
	}
	return matches
}
