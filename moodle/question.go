package moodle

import (
	"fmt"

	"github.com/quizthumb-cli/quizthumb/browser"
	"github.com/quizthumb-cli/quizthumb/icon"
	"github.com/quizthumb-cli/quizthumb/log"
	"github.com/quizthumb-cli/quizthumb/rewrite"
	"github.com/quizthumb-cli/quizthumb/stream"
	"github.com/quizthumb-cli/quizthumb/style"
	"github.com/quizthumb-cli/quizthumb/util"
)

// Edit-form footer controls. Saving reloads the question bank; cancelling leaves
// the question untouched even if the editor buffer changed.
const (
	saveButtonSelector   = `input[type="submit"][name="updatebutton"], input[type="submit"][name="submitbutton"]`
	cancelButtonSelector = `input[type="submit"][name="cancel"]`
)

// contentEditor is the editing surface a question enhancement runs against.
type contentEditor interface {
	Content() (string, error)
	SetContent(markup string) error
	InsertImage(path, altText string) error
}

// processQuestion rewrites one question's rich text on the already-open edit
// form. Returns whether the question was modified and saved.
func (r *Runner) processQuestion(tab *browser.Tab, name string) (bool, error) {
	ed, err := questionEditor(tab)
	if err != nil {
		return false, err
	}

	modified, err := r.enhance(ed)
	if err != nil {
		return false, err
	}

	if err := r.leaveQuestion(tab, modified); err != nil {
		return modified, err
	}

	if modified {
		fmt.Printf("  %s Question %q saved\n", icon.Get(icon.Success), name)
	}
	return modified, nil
}

// enhance runs the per-link loop against the editing surface and reports
// whether the content changed. The decision to save or cancel belongs to the
// caller and follows this report.
func (r *Runner) enhance(ed contentEditor) (bool, error) {
	markup, err := ed.Content()
	if err != nil {
		return false, err
	}

	links := rewrite.Links(markup)
	if len(links) == 0 {
		fmt.Println(style.Faint("  No video links in this question"))
		return false, nil
	}

	fmt.Printf("  Found %s\n", util.Quantify(len(links), "candidate link", "candidate links"))

	// Later insertions shift earlier offsets; walking the links back to front
	// keeps every already-placed thumbnail stable.
	util.Reverse(links)

	modified := false
	for _, link := range links {
		outcome := r.fetcher.Fetch(link)

		switch outcome.Kind {
		case stream.KindNotAVideo:
			log.Debugf("not a video: %s resolved to %s", link, outcome.ResolvedURL)
			fmt.Printf("  %s Skipping non-video link\n", style.Faint(icon.Get(icon.Progress)))
			continue

		case stream.KindFetchFailed:
			log.Warnf("fetch failed for %s: %v", link, outcome.Err)
			fmt.Printf("  %s Could not fetch video for %s\n", icon.Get(icon.Warn), link)
			continue
		}

		if err := placeThumbnail(ed, outcome.Asset); err != nil {
			log.Warnf("thumbnail placement for %s: %v", link, err)
			fmt.Printf("  %s Could not place thumbnail: %v\n", icon.Get(icon.Warn), err)
			continue
		}

		fmt.Printf("  %s Linked thumbnail for video\n", icon.Get(icon.Video))
		modified = true
	}

	return modified, nil
}

// placeThumbnail uploads the asset through the editor dialog and relocates the
// resulting image into a clickable fragment next to its link.
func placeThumbnail(ed contentEditor, asset stream.Asset) error {
	if err := ed.InsertImage(asset.Path, "Video thumbnail"); err != nil {
		return err
	}

	// Re-read: the upload rewrote the buffer with a draft-file URL for the image.
	markup, err := ed.Content()
	if err != nil {
		return err
	}

	rewritten, err := rewrite.Rewrite(markup, asset.Link, asset.Name, asset.Duration)
	if err != nil {
		return err
	}

	return ed.SetContent(rewritten)
}

// leaveSelector picks the footer control to click: save only when the buffer
// was modified, cancel otherwise so the question's timestamp stays untouched.
func leaveSelector(save bool) string {
	if save {
		return saveButtonSelector
	}
	return cancelButtonSelector
}

// leaveQuestion closes the edit form, saving only when the buffer was modified.
func (r *Runner) leaveQuestion(tab *browser.Tab, save bool) error {
	if err := tab.ScrollBottom(); err != nil {
		log.Debugf("scroll to footer: %v", err)
	}

	if err := tab.Click(leaveSelector(save), browser.ShortElementTimeout); err != nil {
		return fmt.Errorf("leave edit form: %w", err)
	}

	// Both paths land back on the question bank.
	if err := tab.WaitVisible(questionListSelector, browser.ElementTimeout); err != nil {
		return fmt.Errorf("question bank did not reload: %w", err)
	}
	return nil
}
