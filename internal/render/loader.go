package render

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"htmlblock/internal/domain"
)

//go:embed assets
var embeddedAssets embed.FS

// DefaultAssets is the packaged asset tree shipped with the binary.
func DefaultAssets() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		panic("render: embedded assets missing: " + err.Error())
	}
	return sub
}

// Loader resolves packaged assets for the render functions. It is an
// explicit dependency of the views rather than ambient global state, so
// tests and alternate deployments can substitute their own tree.
type Loader struct {
	fsys          fs.FS
	staticBaseURL string
}

// NewLoader creates a loader over the given asset tree. staticBaseURL is
// the URL prefix under which the same tree is served to browsers.
func NewLoader(fsys fs.FS, staticBaseURL string) *Loader {
	return &Loader{fsys: fsys, staticBaseURL: staticBaseURL}
}

// FS exposes the underlying asset tree, e.g. for template parsing or an
// HTTP file server.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// Resource returns the text of a packaged asset. A missing or unreadable
// asset is a not-found failure: callers rendering a view propagate it
// rather than silently omitting the resource.
func (l *Loader) Resource(name string) (string, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return "", fmt.Errorf("resource %s: %w", name, domain.ErrNotFound)
	}
	return string(data), nil
}

// Exists reports whether a packaged asset is present.
func (l *Loader) Exists(name string) bool {
	_, err := fs.Stat(l.fsys, name)
	return err == nil
}

// URL returns the servable URL for a packaged asset path.
func (l *Loader) URL(name string) string {
	return l.staticBaseURL + "/" + name
}

// PluginURL returns the servable URL for an editor plugin's script.
func (l *Loader) PluginURL(plugin string) string {
	return l.URL(path.Join("plugins", plugin, "plugin.min.js"))
}
