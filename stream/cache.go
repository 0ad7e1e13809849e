// Package stream resolves a video link to a playable video resource.
package stream

import (
	"path/filepath"
	"time"

	"github.com/metafates/gache"
	"github.com/quizthumb-cli/quizthumb/filesystem"
	"github.com/quizthumb-cli/quizthumb/key"
	"github.com/quizthumb-cli/quizthumb/msauth"
	"github.com/quizthumb-cli/quizthumb/where"
	"github.com/spf13/viper"
)

// classifications remembers links that resolved to non-video pages, keyed by
// link URL with the resolved location as value. Multi-quiz runs tend to repeat
// the same handout links; skipping their navigation saves a tab round-trip per
// link. A wrong entry only causes a skip, never a bad save, and entries expire.
var classifications = gache.New[map[string]string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "notavideo.json"),
	Lifetime:   time.Hour * 24 * 30,
	FileSystem: &filesystem.GacheFs{},
})

// knownNonVideo reports a cached non-video classification for the link.
func knownNonVideo(link string) (resolvedURL string, known bool) {
	if !viper.GetBool(key.FetchCacheClassification) {
		return "", false
	}

	cached, expired, err := classifications.Get()
	if err != nil || expired || cached == nil {
		return "", false
	}

	resolvedURL, known = cached[link]
	return
}

// markNonVideo records a non-video classification for the link. A link still
// sitting on the identity provider's login page is never recorded: a failed
// auth challenge is transient and the link may well be a video next attempt.
func markNonVideo(link, resolvedURL string) {
	if !viper.GetBool(key.FetchCacheClassification) || msauth.IsLoginURL(resolvedURL) {
		return
	}

	cached, _, err := classifications.Get()
	if err != nil || cached == nil {
		cached = make(map[string]string)
	}

	cached[link] = resolvedURL
	_ = classifications.Set(cached)
}
