package render

// Fragment is one renderable view of a block: markup plus the style and
// script resources the host page needs to mount it. Inline CSS/JS carry
// asset contents; JSURLs reference scripts the host loads itself.
type Fragment struct {
	Content  string         `json:"content"`
	CSS      []string       `json:"css,omitempty"`
	JS       []string       `json:"js,omitempty"`
	JSURLs   []string       `json:"js_urls,omitempty"`
	InitFn   string         `json:"init_fn,omitempty"`
	InitArgs map[string]any `json:"init_args,omitempty"`
}

// AddCSS attaches inline stylesheet content to the fragment.
func (f *Fragment) AddCSS(css string) {
	f.CSS = append(f.CSS, css)
}

// AddJS attaches inline script content to the fragment.
func (f *Fragment) AddJS(js string) {
	f.JS = append(f.JS, js)
}

// AddJSURL attaches a script reference to the fragment.
func (f *Fragment) AddJSURL(url string) {
	f.JSURLs = append(f.JSURLs, url)
}

// InitializeJS names the client-side initializer the host calls once the
// fragment is mounted, with its JSON arguments.
func (f *Fragment) InitializeJS(fn string, args map[string]any) {
	f.InitFn = fn
	f.InitArgs = args
}
