// Package rewrite implements the markup transformation at the heart of the pipeline.
package rewrite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/quizthumb-cli/quizthumb/log"
	"github.com/samber/mo"
)

// ErrImageNotFound reports that the freshly inserted raw image could not be
// located in the markup. This is a structural precondition violation: the
// upstream insertion step did not complete as expected.
var ErrImageNotFound = errors.New("inserted image not found in markup")

// sentenceEnd matches a sentence terminator: a period followed by whitespace or
// the opening of a tag.
var sentenceEnd = regexp.MustCompile(`\.(\s|<)`)

// Rewrite produces new markup in which the freshly inserted raw image
// (identified by imageRef, a substring of its src) is relocated next to the
// given video link, wrapped as a clickable captioned thumbnail.
//
// The pass is idempotent per link: any fragment previously inserted for linkURL
// is removed first, and exactly one image is relocated per invocation. The
// fragment lands immediately after the first sentence terminator following the
// first occurrence of the URL. When the markup holds no terminator, or no
// occurrence of the URL at all, the fragment is appended at the end of the
// document as a fallback.
func Rewrite(markup, linkURL, imageRef string, duration mo.Option[string]) (string, error) {
	markup = Remove(markup, linkURL)

	imgRe := regexp.MustCompile(`<img[^>]*src="[^"]*` + regexp.QuoteMeta(imageRef) + `"[^>]*>`)
	loc := imgRe.FindStringIndex(markup)
	if loc == nil {
		return "", fmt.Errorf("%w (looking for %q)", ErrImageNotFound, imageRef)
	}

	// Detach the image, keeping its full tag and attributes for reuse.
	imgTag := markup[loc[0]:loc[1]]
	markup = markup[:loc[0]] + markup[loc[1]:]

	fragment := Fragment(linkURL, imgTag, duration)

	urlPos := findURL(markup, linkURL)
	if urlPos < 0 {
		log.Warnf("video url %q not found in markup, appending thumbnail at end", linkURL)
		return markup + fragment, nil
	}

	terminator := sentenceEnd.FindStringIndex(markup[urlPos:])
	if terminator == nil {
		log.Warnf("no sentence terminator after %q, appending thumbnail at end", linkURL)
		return markup + fragment, nil
	}

	// +1 places the fragment after the period itself.
	cut := urlPos + terminator[0] + 1
	return markup[:cut] + fragment + markup[cut:], nil
}

// findURL locates the first occurrence of the URL in serialized markup,
// accounting for entity-escaped ampersands.
func findURL(markup, linkURL string) int {
	raw := strings.Index(markup, linkURL)
	escaped := strings.Index(markup, strings.ReplaceAll(linkURL, "&", "&amp;"))

	switch {
	case raw < 0:
		return escaped
	case escaped < 0:
		return raw
	default:
		if raw < escaped {
			return raw
		}
		return escaped
	}
}
