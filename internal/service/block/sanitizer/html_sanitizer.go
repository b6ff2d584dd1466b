package sanitizer

import (
	_ "embed"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var policyConfig []byte

// policyFile is the on-disk shape of the embedded allow/deny policy.
type policyFile struct {
	Elements          []string `yaml:"elements"`
	GlobalAttrs       []string `yaml:"global_attrs"`
	URLSchemes        []string `yaml:"url_schemes"`
	AllowRelativeURLs bool     `yaml:"allow_relative_urls"`
	AllowImages       bool     `yaml:"allow_images"`
	AllowTables       bool     `yaml:"allow_tables"`
	AllowLists        bool     `yaml:"allow_lists"`
}

// HTMLSanitizer removes script-capable HTML constructs from author-submitted
// content before it reaches a learner's browser.
//
// Thread-safe for concurrent use.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer creates a sanitizer from the embedded policy file.
// The resulting policy keeps benign structural and formatting markup while
// stripping <script> elements (with their contents), every on* event
// handler attribute, and href/src values outside the allowed URL schemes
// (javascript:, data:, and friends).
func NewHTMLSanitizer() (*HTMLSanitizer, error) {
	var pf policyFile
	if err := yaml.Unmarshal(policyConfig, &pf); err != nil {
		return nil, fmt.Errorf("unmarshal sanitizer policy: %w", err)
	}

	policy := bluemonday.NewPolicy()
	policy.AllowElements(pf.Elements...)
	policy.AllowAttrs(pf.GlobalAttrs...).Globally()
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowStandardAttributes()
	policy.AllowURLSchemes(pf.URLSchemes...)
	policy.RequireParseableURLs(true)
	if pf.AllowRelativeURLs {
		policy.AllowRelativeURLs(true)
	}
	if pf.AllowImages {
		// img with src restricted to the scheme list above; data: image
		// URIs stay disallowed since they can smuggle script
		policy.AllowImages()
	}
	if pf.AllowTables {
		policy.AllowTables()
	}
	if pf.AllowLists {
		policy.AllowLists()
	}
	// AllowImages pulls in AllowStandardURLs, which turns on nofollow
	// annotation of anchors. Clean links must round-trip byte-exact, so
	// switch it back off.
	policy.RequireNoFollowOnLinks(false)

	return &HTMLSanitizer{policy: policy}, nil
}

// MustNewHTMLSanitizer is NewHTMLSanitizer for initialization paths where
// a bad embedded policy is a programming error.
func MustNewHTMLSanitizer() *HTMLSanitizer {
	s, err := NewHTMLSanitizer()
	if err != nil {
		panic("sanitizer: bad embedded policy: " + err.Error())
	}
	return s
}

// NewStrictHTMLSanitizer creates a sanitizer that strips all markup,
// leaving only escaped text. Used where HTML formatting is not wanted at
// all, e.g. plain-text derivation for word counts.
func NewStrictHTMLSanitizer() *HTMLSanitizer {
	return &HTMLSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize removes dangerous HTML while preserving safe content.
// The transformation is pure and idempotent: re-sanitizing clean output is
// a no-op. Malformed or unclosed markup never fails the caller; the
// tokenizer is tolerant, and text that cannot be interpreted as markup is
// emitted escaped.
func (s *HTMLSanitizer) Sanitize(html string) (string, error) {
	return s.policy.Sanitize(html), nil
}
