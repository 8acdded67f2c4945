package main

import (
	"log"
	"os"
	"path/filepath"

	"zoomguard/internal/verifier"
)

const (
	documentURL    = "file:///app/index.html"
	screenshotPath = "/home/jules/verification/verification.png"
)

var requiredDirectives = []string{"maximum-scale=1.0", "user-scalable=no"}

func main() {
	logger := verifier.NewLogger(os.Stderr)

	if err := os.MkdirAll(filepath.Dir(screenshotPath), 0o755); err != nil {
		log.Fatalf("create screenshot dir: %v", err)
	}

	report, err := verifier.Verify(verifier.Options{
		DocumentURL:        documentURL,
		RequiredDirectives: requiredDirectives,
		ScreenshotPath:     screenshotPath,
		Headless:           true,
		Log:                logger,
	})
	if err != nil {
		log.Fatalf("verification failed: %v", err)
	}

	logger.Info("verifier", "verification passed", map[string]any{"screenshot": report.Screenshot})
}
