package search

import (
	"fmt"
	"net/url"
)

// BuildSearchURL returns the canonical navigation target the host app acts on
// when a result (or a platform fallback) is chosen. The widget never
// navigates itself.
func BuildSearchURL(platform Platform, category Category, identifier string) string {
	return fmt.Sprintf("/search/%s/%s/%s?refresh=false&postCount=200",
		platform, category, url.PathEscape(identifier))
}
