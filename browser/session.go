// Package browser wraps chromedp behind the narrow capability surface the pipeline drives:
// navigation, element lookup, form fill, click, script evaluation, and explicit bounded waits.
//
// One Session owns one Chrome process and one primary tab for the whole run.
// Thumbnail fetches open short-lived secondary tabs that are always closed before returning.
package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/quizthumb-cli/quizthumb/key"
	"github.com/spf13/viper"
)

// Session owns the browser process and its primary tab.
// Created once by the runner, torn down once at the end of the run.
type Session struct {
	allocCtx    context.Context
	cancelAlloc context.CancelFunc
	primary     *Tab
}

// Launch starts the browser and opens the primary tab.
// This is the only unrecoverable failure in the pipeline: without a browser there is no run.
func Launch(headless bool) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.WindowSize(
			viper.GetInt(key.BrowserViewportWidth),
			viper.GetInt(key.BrowserViewportHeight),
		),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	// Running an empty task list forces the browser process to start now,
	// so launch failures surface here instead of on the first navigation.
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return &Session{
		allocCtx:    allocCtx,
		cancelAlloc: cancelAlloc,
		primary:     &Tab{ctx: tabCtx, cancel: cancelTab},
	}, nil
}

// Tab returns the primary tab shared by all LMS navigation and editing.
func (s *Session) Tab() *Tab {
	return s.primary
}

// NewTab opens an ephemeral secondary tab scoped to one fetch.
// The caller must Close it on every exit path.
func (s *Session) NewTab() *Tab {
	ctx, cancel := chromedp.NewContext(s.primary.ctx)
	return &Tab{ctx: ctx, cancel: cancel}
}

// Close tears down the primary tab and the browser process.
func (s *Session) Close() {
	s.primary.Close()
	s.cancelAlloc()
}
