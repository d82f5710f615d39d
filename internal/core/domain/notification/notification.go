package notification

import "context"

// Notifier delivers a plain text message to a single preconfigured
// destination. Implementations map every transport, protocol, or unexpected
// failure to a false return and a log entry, so callers never handle errors
// from a send.
type Notifier interface {
	SendMessage(ctx context.Context, text string) bool
}

// TruncationMarker is appended to messages shortened by Truncate.
const TruncationMarker = "…"

// Truncate shortens text so that it fits into limit characters, appending
// TruncationMarker when the text had to be cut. The returned text is never
// longer than limit, marker included.
func Truncate(text string, limit int) (truncated string, wasTruncated bool) {
	runes := []rune(text)
	if len(runes) <= limit {
		return text, false
	}
	marker := []rune(TruncationMarker)
	if limit <= len(marker) {
		return string(runes[:limit]), true
	}
	return string(runes[:limit-len(marker)]) + TruncationMarker, true
}
