package markdown

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips script vectors from rendered HTML. It is only applied
// when ParseOptions.Sanitize is set; the default pipeline trusts CMS content.
//
// Safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds a sanitizer on the bluemonday UGC policy, keeping the
// heading ids goldmark generates so in-page anchors survive.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").Globally()
	return &Sanitizer{policy: policy}
}

// SanitizeBytes returns a sanitised copy of html.
func (s *Sanitizer) SanitizeBytes(html []byte) []byte {
	return s.policy.SanitizeBytes(html)
}
