// Package rewrite implements the markup transformation at the heart of the pipeline:
// discovering video links in rich-text content and splicing wrapped, captioned
// thumbnail fragments next to them.
//
// Everything here is pure string/markup work with no browser dependency, so the
// fragment grammar lives in exactly one well-tested place.
package rewrite

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/quizthumb-cli/quizthumb/constant"
)

// Links returns the unique video-link URLs present in the markup, in first-seen
// document order. Duplicate anchors for the same URL collapse to one entry at
// the position of the first occurrence.
func Links(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var urls []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.Contains(href, constant.VideoLinkPath) {
			return
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		urls = append(urls, href)
	})

	return urls
}
