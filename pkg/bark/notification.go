package bark

import "net/url"

// Level classifies notification urgency for the receiving OS.
type Level string

const (
	LevelActive        Level = "active"
	LevelTimeSensitive Level = "timeSensitive"
	LevelPassive       Level = "passive"
	LevelCritical      Level = "critical"
)

// Levels returns the accepted level values in a fixed order.
func Levels() []Level {
	return []Level{LevelActive, LevelTimeSensitive, LevelPassive, LevelCritical}
}

// Valid reports whether l is one of the accepted level values.
// The empty level is not valid; callers treat empty as "absent".
func (l Level) Valid() bool {
	switch l {
	case LevelActive, LevelTimeSensitive, LevelPassive, LevelCritical:
		return true
	default:
		return false
	}
}

// Notification holds the content and delivery options of a single push.
// Only Body is required. Empty strings and nil pointers mean "absent":
// absent fields are left out of the request entirely.
type Notification struct {
	// Body is the main notification content.
	Body string `json:"body"`

	// Title and Subtitle are shown above the body.
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`

	// URL to open when the notification is tapped.
	URL string `json:"url,omitempty"`

	// Group identifier; notifications with the same group stack together.
	Group string `json:"group,omitempty"`

	// Icon is a custom icon URL (iOS 15+).
	Icon string `json:"icon,omitempty"`

	// Sound is a custom notification sound name.
	Sound string `json:"sound,omitempty"`

	// Call plays the sound repeatedly for 30 seconds.
	Call *bool `json:"call,omitempty"`

	// Level is the urgency classification. Empty means server default.
	Level Level `json:"level,omitempty"`

	// IsArchive controls whether the device archives the notification.
	IsArchive *bool `json:"isArchive,omitempty"`

	// Copy is text placed on the clipboard when the notification is pressed.
	Copy string `json:"copy,omitempty"`

	// Ciphertext is pre-encrypted content, passed through unchanged.
	Ciphertext string `json:"ciphertext,omitempty"`
}

// Bool returns a pointer to v, for the tri-state boolean fields.
func Bool(v bool) *bool { return &v }

func (n Notification) validate() error {
	if n.Body == "" {
		return ErrEmptyBody
	}
	if n.Level != "" && !n.Level.Valid() {
		return ErrInvalidLevel
	}
	return nil
}

// pathSegments returns the segments appended to the device endpoint, in
// order: title and subtitle only combine when both are set.
func (n Notification) pathSegments() []string {
	segs := make([]string, 0, 3)
	if n.Title != "" {
		segs = append(segs, n.Title)
		if n.Subtitle != "" {
			segs = append(segs, n.Subtitle)
		}
	}
	return append(segs, n.Body)
}

// queryParams encodes the optional fields for the GET endpoint.
// Tri-state booleans serialize as the literal 1/0.
func (n Notification) queryParams() url.Values {
	q := url.Values{}
	setStr := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	setStr("url", n.URL)
	setStr("group", n.Group)
	setStr("icon", n.Icon)
	setStr("sound", n.Sound)
	if n.Call != nil {
		q.Set("call", boolParam(*n.Call))
	}
	if n.Level != "" {
		q.Set("level", string(n.Level))
	}
	if n.IsArchive != nil {
		q.Set("isArchive", boolParam(*n.IsArchive))
	}
	setStr("copy", n.Copy)
	setStr("ciphertext", n.Ciphertext)
	return q
}

func boolParam(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
