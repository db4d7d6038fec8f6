package citation

import (
	"net/url"
	"strings"
)

// ContentPrefix is the path segment under which cited documents are served.
const ContentPrefix = "/content/"

// Resolver maps a citation label to the path of the cited resource.
type Resolver interface {
	Resolve(label string) string
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(label string) string

// Resolve calls f(label).
func (f ResolverFunc) Resolve(label string) string {
	return f(label)
}

// ContentResolver resolves labels to BasePath + "/content/" + label.
type ContentResolver struct {
	// BasePath is prepended to every path, without a trailing slash.
	BasePath string
}

// Resolve implements Resolver. The label is escaped as a single path segment.
func (r ContentResolver) Resolve(label string) string {
	return strings.TrimRight(r.BasePath, "/") + ContentPrefix + url.PathEscape(label)
}
