package verifier

import (
	"errors"
	"fmt"
	"io"
	"os"

	"zoomguard/internal/viewport"

	"github.com/playwright-community/playwright-go"
)

const viewportSelector = `meta[name="viewport"]`

// Options configure a verification run.
type Options struct {
	DocumentURL        string
	RequiredDirectives []string
	ScreenshotPath     string
	Headless           bool
	Log                *Logger   // optional; discards when nil
	DiagWriter         io.Writer // destination of the diagnostic line; defaults to stdout
}

// Report describes a successful verification.
type Report struct {
	Content    string
	Screenshot string
}

// Verify loads the document in headless Chromium, reads the viewport
// meta tag's content attribute, prints it, asserts every required
// directive is present as a substring, and captures a screenshot.
// The playwright driver and browser are released on every exit path.
func Verify(opts Options) (Report, error) {
	if opts.DocumentURL == "" {
		return Report{}, errors.New("DocumentURL is required")
	}
	if len(opts.RequiredDirectives) == 0 {
		return Report{}, errors.New("at least one required directive is needed")
	}
	if opts.ScreenshotPath == "" {
		return Report{}, errors.New("ScreenshotPath is required")
	}
	log := opts.Log
	if log == nil {
		log = NewLogger(io.Discard)
	}
	diag := opts.DiagWriter
	if diag == nil {
		diag = os.Stdout
	}

	log.Info("verifier", "installing playwright browsers", nil)
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return Report{}, fmt.Errorf("install playwright: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return Report{}, fmt.Errorf("start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     []string{"--disable-dev-shm-usage"},
	})
	if err != nil {
		return Report{}, fmt.Errorf("launch browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return Report{}, fmt.Errorf("new page: %w", err)
	}

	log.Info("browser", "navigating", map[string]any{"url": opts.DocumentURL})
	if _, err := page.Goto(opts.DocumentURL); err != nil {
		return Report{}, &NavigationError{URL: opts.DocumentURL, Err: err}
	}

	tag := page.Locator(viewportSelector)
	count, err := tag.Count()
	if err != nil {
		return Report{}, fmt.Errorf("locate viewport tag: %w", err)
	}
	if count == 0 {
		return Report{}, &MissingElementError{Selector: viewportSelector}
	}
	content, err := tag.GetAttribute("content")
	if err != nil {
		return Report{}, fmt.Errorf("read content attribute: %w", err)
	}
	if content == "" {
		return Report{}, &MissingElementError{Selector: viewportSelector}
	}

	fmt.Fprintf(diag, "Viewport content: %s\n", content)

	if missing := viewport.Missing(content, opts.RequiredDirectives); len(missing) > 0 {
		log.Warn("assert", "required directive missing", map[string]any{"directive": missing[0]})
		return Report{}, &DirectiveError{Directive: missing[0], Content: content}
	}
	log.Info("assert", "all required directives present", map[string]any{"count": len(opts.RequiredDirectives)})

	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(opts.ScreenshotPath),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return Report{}, fmt.Errorf("write screenshot %s: %w", opts.ScreenshotPath, err)
	}
	log.Info("artifact", "screenshot written", map[string]any{"path": opts.ScreenshotPath})

	return Report{Content: content, Screenshot: opts.ScreenshotPath}, nil
}
