package render

import (
	"bytes"
	"fmt"
	"html/template"
	"path"

	"htmlblock/internal/domain/models"
)

// editorPlugins are the rich-text editor extensions whose scripts are
// served from the packaged plugin tree.
var editorPlugins = []string{"codesample", "image", "link", "lists", "textcolor", "codemirror"}

// Renderer builds the learner-facing and author-facing fragments of a
// block. Asset resolution goes through the injected Loader; template
// parsing happens once at construction.
type Renderer struct {
	loader *Loader
	tmpl   *template.Template
}

// NewRenderer parses the packaged view templates and returns a renderer.
func NewRenderer(loader *Loader) (*Renderer, error) {
	tmpl, err := template.ParseFS(loader.FS(), "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse view templates: %w", err)
	}
	return &Renderer{loader: loader, tmpl: tmpl}, nil
}

// StudentView renders the learner-facing fragment. effectiveHTML is the
// already-gated body (raw or sanitized); the template treats it as markup,
// not text.
func (r *Renderer) StudentView(block *models.Block, effectiveHTML string) (*Fragment, error) {
	var buf bytes.Buffer
	data := struct {
		DisplayName string
		HTML        template.HTML
	}{
		DisplayName: block.DisplayName,
		HTML:        template.HTML(effectiveHTML),
	}
	if err := r.tmpl.ExecuteTemplate(&buf, "lms.html", data); err != nil {
		return nil, fmt.Errorf("render student view: %w", err)
	}

	frag := &Fragment{Content: buf.String()}

	css, err := r.loader.Resource("static/css/html.css")
	if err != nil {
		return nil, err
	}
	frag.AddCSS(css)

	// Code-highlighting resources for <pre><code> content
	highlightCSS, err := r.loader.Resource("plugins/codesample/css/prism.css")
	if err != nil {
		return nil, err
	}
	frag.AddCSS(highlightCSS)
	highlightJS, err := r.loader.Resource("plugins/codesample/js/prism.js")
	if err != nil {
		return nil, err
	}
	frag.AddJS(highlightJS)

	return frag, nil
}

// StudioView renders the author-facing fragment: the editing form built
// from the static field schema, the content editor, and the script
// resources the editor needs. locale selects the translation bundle, with
// fallback; no bundle at all just renders untranslated.
func (r *Renderer) StudioView(block *models.Block, locale string) (*Fragment, error) {
	fields, err := EditForm(block)
	if err != nil {
		return nil, fmt.Errorf("build edit form: %w", err)
	}

	var settings bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&settings, "studio_edit.html", struct {
		Fields []FormField
	}{fields}); err != nil {
		return nil, fmt.Errorf("render settings form: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Block        *models.Block
		SettingsPage template.HTML
	}{
		Block:        block,
		SettingsPage: template.HTML(settings.String()),
	}
	if err := r.tmpl.ExecuteTemplate(&buf, "studio.html", data); err != nil {
		return nil, fmt.Errorf("render studio view: %w", err)
	}

	frag := &Fragment{Content: buf.String()}

	css, err := r.loader.Resource("static/css/html.css")
	if err != nil {
		return nil, err
	}
	frag.AddCSS(css)

	for _, name := range []string{"static/js/html_block.js", "static/js/studio_edit.js"} {
		js, err := r.loader.Resource(name)
		if err != nil {
			return nil, err
		}
		frag.AddJS(js)
	}

	if path, ok := r.loader.TranslationPath(locale); ok {
		frag.AddJSURL(r.loader.URL(path))
	}

	// URL-referenced scripts are only advertised when the packaged tree
	// actually holds them, like translation bundles above.
	if block.Editor == models.EditorRaw {
		for _, name := range []string{"plugins/codemirror/lib/codemirror.js", "plugins/codemirror/mode/xml/xml.js"} {
			if r.loader.Exists(name) {
				frag.AddJSURL(r.loader.URL(name))
			}
		}
	}

	plugins := make(map[string]any, len(editorPlugins))
	for _, plugin := range editorPlugins {
		if r.loader.Exists(path.Join("plugins", plugin, "plugin.min.js")) {
			plugins[plugin] = r.loader.PluginURL(plugin)
		}
	}
	frag.InitializeJS("HTMLBlockStudio", map[string]any{
		"editor":           string(block.Editor),
		"skin_url":         r.loader.URL("skin"),
		"external_plugins": plugins,
	})

	return frag, nil
}
