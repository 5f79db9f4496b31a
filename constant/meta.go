// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Incread is the canonical application identifier used for filesystem paths and CLI branding.
	Incread = "incread"

	// Version is the current application semantic version string.
	Version = "0.8.0"

	// ProjectURL points at the canonical repository and is embedded in the default user agent.
	ProjectURL = "https://github.com/incread/incread"

	// UserAgent identifies the plugin on outbound feed requests.
	UserAgent = Incread + "/" + Version + " (+" + ProjectURL + ")"

	// SettingsFileName is the per-profile settings document, stored inside the
	// profile's media directory so the host's sync layer carries it along.
	SettingsFileName = "_ir.json"
)

// Build metadata, injected at release time via ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
