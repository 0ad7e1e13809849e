// Package rewrite implements the markup transformation at the heart of the pipeline.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/mo"
)

// playIcon is an inline SVG overlay centered on the thumbnail.
// Inlined as a data URI so the fragment has no external asset dependencies.
const playIcon = `<img src="data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 64 64'%3E%3Ccircle cx='32' cy='32' r='32' fill='rgba(0,0,0,0.6)'/%3E%3Cpath d='M 26 20 L 26 44 L 44 32 Z' fill='white'/%3E%3C/svg%3E" style="position:absolute;top:50%;left:50%;transform:translate(-50%,-50%);width:64px;height:64px;pointer-events:none;" alt="">`

// durationOverlay formats the duration label pinned to the thumbnail's bottom-right corner.
const durationOverlay = `<span style="position:absolute;bottom:3px;right:3px;background-color:white;border:1px solid darkgray; color:black;padding:2px 6px;font-size:10pt;font-family:Arial,sans-serif;font-style:normal;pointer-events:none;">%s</span>`

// Fragment composes the clickable wrapped-thumbnail markup for a video link:
// an anchor holding a relatively positioned span with the image, the play icon
// and an optional duration label, bracketed by line breaks. This exact shape is
// what Remove matches on subsequent idempotent passes; keep it stable.
func Fragment(linkURL, imgTag string, duration mo.Option[string]) string {
	overlay := ""
	if label, ok := duration.Get(); ok {
		overlay = fmt.Sprintf(durationOverlay, label)
	}

	return fmt.Sprintf(
		`<br><a href="%s" target="_blank" rel="noopener" style="text-decoration:none;"><span style="position:relative;display:inline-block;padding-top:10px">%s%s%s</span></a><br>`,
		linkURL, imgTag, playIcon, overlay,
	)
}

// urlPattern returns a regex fragment matching the URL as it may appear in
// serialized markup: ampersands can be raw or entity-escaped depending on the
// editor's serializer.
func urlPattern(linkURL string) string {
	quoted := regexp.QuoteMeta(linkURL)
	return strings.ReplaceAll(quoted, "&", "(?:&|&amp;)")
}

// fragmentPattern matches a previously inserted fragment for the given link,
// tolerant of optional leading/trailing line breaks.
func fragmentPattern(linkURL string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?:<br>\s*)?<a[^>]*href="` + urlPattern(linkURL) + `"[^>]*>\s*<span[^>]*>(?s:.*?)</span>\s*</a>\s*(?:<br>)?`,
	)
}

// Remove deletes every existing wrapped-thumbnail fragment for the given link.
// Running the rewrite repeatedly therefore converges instead of accumulating
// duplicate thumbnails.
func Remove(markup, linkURL string) string {
	return fragmentPattern(linkURL).ReplaceAllString(markup, "")
}
