package moodle

import (
	"fmt"
	"strings"

	"github.com/quizthumb-cli/quizthumb/browser"
	"github.com/quizthumb-cli/quizthumb/key"
	"github.com/quizthumb-cli/quizthumb/log"
	"github.com/spf13/viper"
)

// Rich-text editor selectors on the question edit form.
const (
	editorReadySelector = `.tox-tinymce`
	editorFrameSelector = `iframe[id^="id_questiontext_"]`

	imageButtonSelector = `button[aria-label="Image"]`
	fileInputSelector   = `input[type="file"]`
	altTextSelector     = `textarea.tiny_image_altentry`
	customSizeToggleSel = `button.image-custom-size-toggle`
	customSizeRadioSel  = `input.tiny_image_sizecustom`
	constrainSelector   = `input.tiny_image_constrain`
	widthInputSelector  = `input.tiny_image_widthentry`
	imageSaveSelector   = `button.tiny_image_urlentrysubmit`
	modalSelector       = `.modal-dialog`
)

// editor wraps one TinyMCE instance hosting a question's rich text.
type editor struct {
	tab *browser.Tab
	id  string
}

// questionEditor locates the question-text editor on the current page. The
// instance id is derived from its iframe, which carries an "_ifr" suffix.
func questionEditor(tab *browser.Tab) (*editor, error) {
	if err := tab.WaitVisible(editorReadySelector, browser.ElementTimeout); err != nil {
		return nil, fmt.Errorf("rich-text editor never initialized: %w", err)
	}

	frameID, ok, err := tab.Attribute(editorFrameSelector, "id")
	if err != nil || !ok {
		return nil, fmt.Errorf("question editor frame not found: %w", err)
	}

	return &editor{tab: tab, id: strings.TrimSuffix(frameID, "_ifr")}, nil
}

// Content returns the editor's current markup.
func (e *editor) Content() (string, error) {
	js := fmt.Sprintf(`tinymce.get(%q).getContent()`, e.id)
	var markup string
	if err := e.tab.Eval(js, &markup); err != nil {
		return "", fmt.Errorf("read editor content: %w", err)
	}
	return markup, nil
}

// SetContent replaces the editor's markup wholesale.
func (e *editor) SetContent(markup string) error {
	js := fmt.Sprintf(`tinymce.get(%q).setContent(%q)`, e.id, markup)
	if err := e.tab.Eval(js, nil); err != nil {
		return fmt.Errorf("write editor content: %w", err)
	}
	return nil
}

// InsertImage uploads a local image through the editor's image dialog, setting
// alt text and a fixed width. The image lands at the start of the document; the
// rewrite relocates it afterwards.
func (e *editor) InsertImage(path, altText string) error {
	// Anchor the cursor at the document start so the upload position is known.
	collapse := fmt.Sprintf(`(() => {
		const ed = tinymce.get(%q);
		ed.focus();
		ed.selection.select(ed.getBody(), true);
		ed.selection.collapse(true);
	})()`, e.id)
	if err := e.tab.Eval(collapse, nil); err != nil {
		return fmt.Errorf("position cursor: %w", err)
	}

	if err := e.tab.Click(imageButtonSelector, browser.ShortElementTimeout); err != nil {
		return fmt.Errorf("image toolbar button: %w", err)
	}
	if err := e.tab.WaitVisibleText("Insert image", browser.ShortElementTimeout); err != nil {
		return fmt.Errorf("image dialog: %w", err)
	}

	if err := e.tab.SetFiles(fileInputSelector, path); err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}

	// The dialog switches to the details view once the upload finishes.
	if err := e.tab.WaitVisibleText("Image details", browser.ElementTimeout); err != nil {
		return fmt.Errorf("image details view: %w", err)
	}

	if err := e.tab.Fill(altTextSelector, altText); err != nil {
		return fmt.Errorf("alt text: %w", err)
	}

	if err := e.applyCustomWidth(viper.GetInt(key.ThumbnailWidth)); err != nil {
		return err
	}

	if err := e.tab.Click(imageSaveSelector, browser.ShortElementTimeout); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	if err := e.tab.WaitGone(modalSelector, browser.ShortElementTimeout); err != nil {
		return fmt.Errorf("image dialog did not close: %w", err)
	}

	return nil
}

// applyCustomWidth switches the dialog to custom sizing and sets the width.
// Moodle versions differ in how the custom-size controls are exposed.
func (e *editor) applyCustomWidth(width int) error {
	if e.tab.Exists(customSizeToggleSel) {
		if err := e.tab.Click(customSizeToggleSel, browser.ShortElementTimeout); err != nil {
			return fmt.Errorf("custom size toggle: %w", err)
		}
	} else {
		if err := e.tab.Click(customSizeRadioSel, browser.ShortElementTimeout); err != nil {
			return fmt.Errorf("custom size option: %w", err)
		}
		// Keep the aspect ratio so only the width needs setting.
		if e.tab.Exists(constrainSelector) {
			if err := e.tab.Click(constrainSelector, browser.ShortElementTimeout); err != nil {
				log.Warnf("constrain proportions checkbox: %v", err)
			}
		}
	}

	if err := e.tab.Fill(widthInputSelector, fmt.Sprint(width)); err != nil {
		return fmt.Errorf("width field: %w", err)
	}
	return nil
}
