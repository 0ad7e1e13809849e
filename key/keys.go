// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Thumbnail Composition - these keys control how fetched thumbnails are sized and embedded.
const (
	ThumbnailWidth = "thumbnail.width"
)

// Browser Session - these keys govern the single Chrome session driven for the whole run.
const (
	BrowserHeadless       = "browser.headless"
	BrowserViewportWidth  = "browser.viewport_width"
	BrowserViewportHeight = "browser.viewport_height"
)

// Fetch Behavior - these keys tune the per-link thumbnail retrieval.
const (
	FetchCacheClassification = "fetch.cache_classification"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
