// Package stream resolves a video link to a playable video resource.
package stream

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/quizthumb-cli/quizthumb/browser"
	"github.com/quizthumb-cli/quizthumb/filesystem"
	"github.com/quizthumb-cli/quizthumb/icon"
	"github.com/quizthumb-cli/quizthumb/log"
	"github.com/quizthumb-cli/quizthumb/msauth"
	"github.com/quizthumb-cli/quizthumb/where"
	"github.com/samber/mo"
)

// Player affordance selectors on the resolved video page.
const (
	trimIconSelector      = `i[data-icon-name="Cut"]`
	durationInputSelector = `input.fui-SpinButton__input`
	videoSettingsSelector = `button[aria-label="Video settings"]`
	thumbnailButtonSel    = `button[aria-label="Thumbnail"]`
	blobImageSelector     = `#CollapsibleCustomOptions img[src^="blob:"]`
)

// blobReadout fetches the blob URL inside the page at full resolution and
// returns its bytes base64-encoded. Reading the <img> element itself would only
// yield the scaled-down preview.
const blobReadout = `(async () => {
	const response = await fetch(%q);
	const blob = await response.blob();
	return await new Promise((resolve) => {
		const reader = new FileReader();
		reader.onloadend = () => resolve(reader.result.split(',')[1]);
		reader.readAsDataURL(blob);
	});
})()`

// Fetcher turns video links into thumbnail assets using short-lived secondary
// tabs on the shared browser session.
type Fetcher struct {
	session   *browser.Session
	challenge msauth.Challenge
}

// New returns a Fetcher bound to the session and login challenge.
func New(session *browser.Session, challenge msauth.Challenge) *Fetcher {
	return &Fetcher{session: session, challenge: challenge}
}

// Fetch resolves the link and captures its thumbnail. The ephemeral tab opened
// here is closed on every exit path. A failed login challenge does not abort
// the fetch: the video-resource check that follows decides the outcome.
func (f *Fetcher) Fetch(link string) Outcome {
	if resolved, known := knownNonVideo(link); known {
		log.Debugf("classification cache: %s is not a video (%s)", link, resolved)
		return NotAVideo(resolved)
	}

	tab := f.session.NewTab()
	defer tab.Close()

	if err := tab.Navigate(link); err != nil {
		return FetchFailed(fmt.Errorf("navigate %s: %w", link, err))
	}

	resolved, err := tab.URL()
	if err != nil {
		return FetchFailed(err)
	}

	if msauth.IsLoginURL(resolved) {
		if err := f.challenge.Complete(tab); err != nil {
			log.Warnf("microsoft authentication: %v", err)
			fmt.Printf("  %s Warning during Microsoft authentication, attempting to continue...\n", icon.Get(icon.Warn))
		}
		if resolved, err = tab.URL(); err != nil {
			return FetchFailed(err)
		}
	}

	if !IsVideoURL(resolved) {
		markNonVideo(link, resolved)
		return NotAVideo(resolved)
	}

	duration := f.duration(tab)

	path, err := f.thumbnail(tab)
	if err != nil {
		return FetchFailed(err)
	}

	return VideoFound(Asset{
		Path:     path,
		Name:     filepath.Base(path),
		Duration: duration,
		Link:     link,
	})
}

// duration reveals the video length through the trim affordance. Best-effort:
// a missing control yields None, never a failure.
func (f *Fetcher) duration(tab *browser.Tab) mo.Option[string] {
	if err := tab.Click(trimIconSelector, browser.ShortElementTimeout); err != nil {
		log.Debugf("trim affordance unavailable: %v", err)
		return mo.None[string]()
	}

	// The "Video end" field is the last spin button and holds the full length.
	js := fmt.Sprintf(`(() => {
		const inputs = document.querySelectorAll(%q);
		if (!inputs.length) return "";
		return inputs[inputs.length - 1].value || "";
	})()`, durationInputSelector)

	var value string
	if err := tab.Eval(js, &value); err != nil || strings.TrimSpace(value) == "" {
		return mo.None[string]()
	}
	return mo.Some(strings.TrimSpace(value))
}

// thumbnail opens the video-settings panel, reveals the thumbnail preview, and
// saves its full-resolution bytes as a timestamped PNG.
func (f *Fetcher) thumbnail(tab *browser.Tab) (string, error) {
	// The panel may already be open from a previous step; tolerate a miss.
	if err := tab.Click(videoSettingsSelector, browser.ElementTimeout); err != nil {
		log.Debugf("video settings button: %v", err)
	}

	if err := tab.Click(thumbnailButtonSel, browser.ShortElementTimeout); err != nil {
		return "", fmt.Errorf("thumbnail option: %w", err)
	}

	if err := tab.WaitVisible(blobImageSelector, browser.ShortElementTimeout); err != nil {
		return "", fmt.Errorf("thumbnail preview: %w", err)
	}

	blobURL, ok, err := tab.Attribute(blobImageSelector, "src")
	if err != nil || !ok {
		return "", fmt.Errorf("thumbnail blob reference missing: %w", err)
	}

	var encoded string
	if err := tab.EvalAsync(fmt.Sprintf(blobReadout, blobURL), &encoded); err != nil {
		return "", fmt.Errorf("read thumbnail blob: %w", err)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode thumbnail: %w", err)
	}

	path := filepath.Join(where.Thumbnails(), fmt.Sprintf("thumbnail_%d.png", time.Now().UnixMilli()))
	if err := filesystem.API().WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}

	log.Infof("saved thumbnail to %s", path)
	return path, nil
}
