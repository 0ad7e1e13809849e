// Package browser wraps chromedp behind the narrow capability surface the pipeline drives.
package browser

import (
	"context"
	"time"

	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// Per-condition wait budgets. Every suspension point in the pipeline is a bounded
// wait for an observable condition, never a fixed sleep.
const (
	// NavigateTimeout bounds a full page navigation including redirects.
	NavigateTimeout = 30 * time.Second

	// ElementTimeout bounds a wait for an element to become visible.
	ElementTimeout = 10 * time.Second

	// ShortElementTimeout bounds a wait for an element expected to already be present.
	ShortElementTimeout = 5 * time.Second

	// ProbeTimeout bounds an existence probe that is allowed to fail.
	ProbeTimeout = 3 * time.Second

	// EvalTimeout bounds an in-page script evaluation.
	EvalTimeout = 15 * time.Second
)

// Tab is a single browser tab. All methods take their timeout from the
// per-condition constants above unless an explicit one is passed.
type Tab struct {
	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// run executes chromedp actions against this tab under a bounded deadline.
func (t *Tab) run(timeout time.Duration, actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(t.ctx, timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// Navigate loads the given URL and waits for the load event, allowing redirects to settle.
func (t *Tab) Navigate(url string) error {
	return t.run(NavigateTimeout, chromedp.Navigate(url))
}

// URL returns the tab's current location after any redirects.
func (t *Tab) URL() (string, error) {
	var u string
	err := t.run(ProbeTimeout, chromedp.Location(&u))
	return u, err
}

// WaitVisible blocks until the selector matches a visible element or the timeout elapses.
func (t *Tab) WaitVisible(sel string, timeout time.Duration) error {
	return t.run(timeout, chromedp.WaitVisible(sel, chromedp.ByQuery))
}

// WaitVisibleText blocks until an element containing the exact text is visible.
func (t *Tab) WaitVisibleText(text string, timeout time.Duration) error {
	xpath := `//*[contains(text(),` + xpathLiteral(text) + `)]`
	return t.run(timeout, chromedp.WaitVisible(xpath, chromedp.BySearch))
}

// WaitGone blocks until no element matches the selector.
func (t *Tab) WaitGone(sel string, timeout time.Duration) error {
	return t.run(timeout, chromedp.WaitNotPresent(sel, chromedp.ByQuery))
}

// Fill replaces the value of the first element matching the selector.
func (t *Tab) Fill(sel, value string) error {
	return t.run(ShortElementTimeout,
		chromedp.WaitVisible(sel, chromedp.ByQuery),
		chromedp.SetValue(sel, value, chromedp.ByQuery),
	)
}

// Type focuses the first element matching the selector and sends keystrokes.
// Some login forms ignore programmatic value changes and need key events.
func (t *Tab) Type(sel, value string) error {
	return t.run(ShortElementTimeout,
		chromedp.WaitVisible(sel, chromedp.ByQuery),
		chromedp.SendKeys(sel, value, chromedp.ByQuery),
	)
}

// Click clicks the first element matching the selector.
func (t *Tab) Click(sel string, timeout time.Duration) error {
	return t.run(timeout,
		chromedp.WaitVisible(sel, chromedp.ByQuery),
		chromedp.Click(sel, chromedp.ByQuery),
	)
}

// ClickMatching clicks the first anchor whose href contains hrefPart and whose
// text contains textPart. Returns false when no such anchor exists.
func (t *Tab) ClickMatching(hrefPart, textPart string) (bool, error) {
	js := `(() => {
		const a = [...document.querySelectorAll('a[href*="` + hrefPart + `"]')]
			.find(x => x.textContent.includes("` + textPart + `"));
		if (!a) return false;
		a.click();
		return true;
	})()`
	var clicked bool
	err := t.run(ShortElementTimeout, chromedp.Evaluate(js, &clicked))
	return clicked, err
}

// Text returns the inner text of the first element matching the selector.
func (t *Tab) Text(sel string, timeout time.Duration) (string, error) {
	var text string
	err := t.run(timeout,
		chromedp.WaitVisible(sel, chromedp.ByQuery),
		chromedp.Text(sel, &text, chromedp.ByQuery),
	)
	return text, err
}

// Attribute returns the value of an attribute on the first matching element.
func (t *Tab) Attribute(sel, name string) (string, bool, error) {
	var value string
	var ok bool
	err := t.run(ShortElementTimeout, chromedp.AttributeValue(sel, name, &value, &ok, chromedp.ByQuery))
	return value, ok, err
}

// Exists probes for the presence of a selector without waiting for visibility.
func (t *Tab) Exists(sel string) bool {
	js := `document.querySelector(` + jsLiteral(sel) + `) !== null`
	var present bool
	if err := t.run(ProbeTimeout, chromedp.Evaluate(js, &present)); err != nil {
		return false
	}
	return present
}

// Eval evaluates a script in the page and unmarshals its result into res.
// Pass nil when the result is irrelevant.
func (t *Tab) Eval(js string, res any) error {
	return t.run(EvalTimeout, chromedp.Evaluate(js, res))
}

// EvalAsync evaluates a promise-returning script and waits for it to resolve.
func (t *Tab) EvalAsync(js string, res any) error {
	return t.run(EvalTimeout, chromedp.Evaluate(js, res,
		func(p *cdpruntime.EvaluateParams) *cdpruntime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}))
}

// SetFiles assigns local files to a file input, visible or not.
func (t *Tab) SetFiles(sel string, paths ...string) error {
	return t.run(ShortElementTimeout, chromedp.SetUploadFiles(sel, paths, chromedp.ByQuery))
}

// ScrollBottom scrolls the page to its full height, bringing footer controls into view.
func (t *Tab) ScrollBottom() error {
	return t.Eval(`window.scrollTo(0, document.body.scrollHeight)`, nil)
}

// Close releases the tab. Safe to call exactly once per tab on every exit path;
// repeated calls are no-ops.
func (t *Tab) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.cancel()
}

// jsLiteral quotes a string for safe embedding in an evaluated script.
func jsLiteral(s string) string {
	out := make([]rune, 0, len(s)+2)
	out = append(out, '"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			out = append(out, '\\', r)
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, r)
		}
	}
	return string(append(out, '"'))
}

// xpathLiteral quotes a string for embedding in an XPath expression.
func xpathLiteral(s string) string {
	return `'` + s + `'`
}
