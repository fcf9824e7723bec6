package collage

import (
	"net/url"
	"strings"

	"github.com/ItsNotGoodName/x-collage/internal/core"
)

// ResolveURI returns what a loader should show for uri. Empty URIs, URIs that
// do not parse and local paths that do not exist resolve to placeholder.
func ResolveURI(uri, placeholder string) string {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return placeholder
	}

	u, err := url.Parse(uri)
	if err != nil {
		return placeholder
	}

	path := uri
	switch u.Scheme {
	case "":
	case "file":
		path = u.Path
	default:
		return uri
	}

	exists, err := core.FileExists(path)
	if err != nil || !exists {
		return placeholder
	}
	return path
}
