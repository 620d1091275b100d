package domain

import "strings"

// AccessCodePrefix is prepended to every gallery access code.
const AccessCodePrefix = "CM"

// GalleryPhoto is one delivered asset with time-limited links.
type GalleryPhoto struct {
	Filename     string `json:"filename"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Gallery is assembled on demand from a list of filenames and never stored.
// Rebuilding it re-issues every URL with a fresh expiry.
type Gallery struct {
	EventID    string         `json:"event_id"`
	CreatedAt  string         `json:"created_at"`
	PhotoCount int            `json:"photo_count"`
	Photos     []GalleryPhoto `json:"photos"`
	AccessCode string         `json:"access_code"`
}

// AccessCodeFor derives the shareable code for an event: the prefix followed
// by the last six characters of the event id, upper-cased. Ids shorter than
// six characters are used whole.
func AccessCodeFor(eventID string) string {
	tail := eventID
	if r := []rune(eventID); len(r) > 6 {
		tail = string(r[len(r)-6:])
	}
	return AccessCodePrefix + strings.ToUpper(tail)
}
