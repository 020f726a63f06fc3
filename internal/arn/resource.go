package arn

import "strings"

// splitResourceToken splits a composite resource token into its type and id
// portions. "alarm/my-alarm" and "alarm:my-alarm" both split once on the
// first separator; a bare "alarm" has no id and means the full wildcard.
func splitResourceToken(token string) (resourceType string, resourceID string) {
	if i := strings.Index(token, "/"); i >= 0 {
		return token[:i], token[i+1:]
	}
	if i := strings.Index(token, ":"); i >= 0 {
		return token[:i], token[i+1:]
	}
	return token, ""
}

// resourceTypeToken is the matchKey for the Resource level: candidate
// filtering only ever sees the type portion, never the id.
func resourceTypeToken(token string) string {
	resourceType, _ := splitResourceToken(token)
	return resourceType
}
