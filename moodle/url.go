// Package moodle drives the LMS side of the pipeline: login, quiz navigation,
// question discovery, and the in-editor rewrite of each question's rich text.
package moodle

import (
	"fmt"
	"regexp"
)

var quizIDPattern = regexp.MustCompile(`\?id=\d+`)

// ExpandQuizIDs derives sibling quiz URLs from a base URL by substituting its
// id query parameter. The base URL is always first in the result.
func ExpandQuizIDs(baseURL string, otherIDs []string) ([]string, error) {
	urls := []string{baseURL}

	if len(otherIDs) == 0 {
		return urls, nil
	}

	if !quizIDPattern.MatchString(baseURL) {
		return nil, fmt.Errorf("quiz url %q has no ?id= parameter to substitute", baseURL)
	}

	for _, id := range otherIDs {
		urls = append(urls, quizIDPattern.ReplaceAllString(baseURL, "?id="+id))
	}

	return urls, nil
}
