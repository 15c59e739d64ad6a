package domain

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ResolveLink returns the address of an item path relative to site.
// URL sites resolve like a browser would; directory sites join the
// path onto the directory. An absolute href is returned unchanged.
func ResolveLink(site, href string) string {
	if ref, err := url.Parse(href); err == nil && ref.IsAbs() {
		return href
	}

	base, err := url.Parse(site)
	if err == nil && len(base.Scheme) > 1 {
		if base.Scheme == "file" {
			return "file://" + filepath.ToSlash(filepath.Join(base.Path, href)+trailingSep(href))
		}
		ref, err := url.Parse(href)
		if err != nil {
			return href
		}
		return base.ResolveReference(ref).String()
	}

	return filepath.Join(site, filepath.FromSlash(href)) + trailingSep(href)
}

// trailingSep keeps a directory href's trailing slash, which
// filepath.Join drops.
func trailingSep(href string) string {
	if strings.HasSuffix(href, "/") {
		return string(filepath.Separator)
	}
	return ""
}
