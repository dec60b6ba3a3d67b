package config

// Config is the optional CLI config file. It supplies the device key and
// server so they don't have to be typed on every invocation, plus
// per-notification defaults that individual flags override.
type Config struct {
	// Server is the Bark server base URL. Empty means the public endpoint.
	Server string `json:"server,omitempty"`

	// Key is the device key from the Bark iOS app.
	Key string `json:"key,omitempty"`

	Defaults DefaultsConfig `json:"defaults,omitempty"`
	Logging  LoggingConfig  `json:"logging,omitempty"`
}

// DefaultsConfig holds notification fields applied when the matching
// flag is not given. Body is deliberately absent: each invocation must
// say what it is sending.
type DefaultsConfig struct {
	Title string `json:"title,omitempty"`
	Group string `json:"group,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Sound string `json:"sound,omitempty"`
	Level string `json:"level,omitempty"`

	// IsArchive is a pointer so "omitted" stays distinct from an
	// explicit false.
	IsArchive *bool `json:"is_archive,omitempty"`
}

// LoggingConfig mirrors logx.Config.
//
// Console is a pointer so an omitted field defaults to true without
// clobbering an explicit false.
type LoggingConfig struct {
	Level   string     `json:"level,omitempty"`
	Console *bool      `json:"console,omitempty"`
	File    FileConfig `json:"file,omitempty"`
}

type FileConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	Path    string `json:"path,omitempty"`
}

// ConsoleEnabled applies the default-true rule.
func (l LoggingConfig) ConsoleEnabled() bool {
	return l.Console == nil || *l.Console
}
