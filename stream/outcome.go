// Package stream resolves a video link to a playable SharePoint/Stream resource
// and extracts a full-resolution thumbnail plus an optional duration label.
package stream

import (
	"strings"

	"github.com/quizthumb-cli/quizthumb/constant"
	"github.com/samber/mo"
)

// Asset is the product of one successful fetch: a thumbnail written to disk and
// an optional duration label. Consumed once by the rewrite and then discardable.
type Asset struct {
	// Path of the saved PNG under where.Thumbnails().
	Path string
	// Name is the bare file name, used to find the image in markup after upload.
	Name string
	// Duration label as shown by the player, e.g. "9:30".
	Duration mo.Option[string]
	// Link is the video link the asset was fetched for.
	Link string
}

// Kind discriminates fetch outcomes.
type Kind int

const (
	// KindVideoFound: the link resolved to a video and the thumbnail was captured.
	KindVideoFound Kind = iota
	// KindNotAVideo: the link resolved somewhere else. Most rich-text links
	// are not videos, so this is an expected result and not a failure.
	KindNotAVideo
	// KindFetchFailed: the link looked like a video but extraction broke.
	KindFetchFailed
)

// Outcome is the tagged result of one fetch. Callers branch on Kind explicitly
// instead of catching control-flow errors.
type Outcome struct {
	Kind        Kind
	Asset       Asset
	ResolvedURL string
	Err         error
}

// VideoFound wraps a successful fetch.
func VideoFound(asset Asset) Outcome {
	return Outcome{Kind: KindVideoFound, Asset: asset}
}

// NotAVideo records the resolved location that disqualified the link.
func NotAVideo(resolvedURL string) Outcome {
	return Outcome{Kind: KindNotAVideo, ResolvedURL: resolvedURL}
}

// FetchFailed wraps an unexpected structural failure, including timeouts.
func FetchFailed(err error) Outcome {
	return Outcome{Kind: KindFetchFailed, Err: err}
}

// IsVideoURL reports whether a resolved location matches the video-streaming
// resource shape.
func IsVideoURL(u string) bool {
	return strings.Contains(u, constant.StreamMarker)
}
