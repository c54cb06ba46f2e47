package nav

import (
	"fmt"
	"strings"
)

// DefaultAdminBasePath prefixes every generated admin href unless a custom
// resolver is installed.
const DefaultAdminBasePath = "/admin"

// AdminPathResolver builds admin panel hrefs for discovered entries.
type AdminPathResolver interface {
	CollectionPath(slug string) string
	GlobalPath(slug string) string
	ViewPath(path string) string
}

type defaultPathResolver struct {
	base string
}

// NewDefaultPathResolver returns a resolver that joins paths under the given
// admin base path.
func NewDefaultPathResolver(base string) AdminPathResolver {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	if trimmed == "" {
		trimmed = DefaultAdminBasePath
	}
	return &defaultPathResolver{base: trimmed}
}

func (r *defaultPathResolver) CollectionPath(slug string) string {
	return fmt.Sprintf("%s/collections/%s", r.base, slug)
}

func (r *defaultPathResolver) GlobalPath(slug string) string {
	return fmt.Sprintf("%s/globals/%s", r.base, slug)
}

func (r *defaultPathResolver) ViewPath(path string) string {
	return r.base + "/" + strings.TrimLeft(path, "/")
}
