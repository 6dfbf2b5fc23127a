package body

import (
	"io"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/render"
)

var (
	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy
)

// Policy returns the shared bluemonday policy used for untrusted bodies:
// the UGC policy with rel="nofollow" on links and tel: URLs permitted so
// bodies can link to the same targets the table does.
func Policy() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowURLSchemes("http", "https", "mailto", "tel")
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
		bodyPolicy = policy
	})
	return bodyPolicy
}

// SanitizedOption configures Sanitized and Markdown.
type SanitizedOption func(*sanitizeConfig)

type sanitizeConfig struct {
	policy *bluemonday.Policy
}

// WithPolicy replaces the default sanitisation policy.
func WithPolicy(policy *bluemonday.Policy) SanitizedOption {
	return func(cfg *sanitizeConfig) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

func newSanitizeConfig(options []SanitizedOption) sanitizeConfig {
	cfg := sanitizeConfig{policy: Policy()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Sanitized treats the body as untrusted HTML and strips anything the policy
// does not allow before writing it.
func Sanitized(options ...SanitizedOption) BodyRenderer {
	cfg := newSanitizeConfig(options)
	return Func(func(_ render.ElementContext, contact model.Contact, out io.Writer) error {
		raw, err := model.ReadBody(contact.Body)
		if err != nil {
			return err
		}
		if raw == "" {
			return nil
		}
		_, err = io.WriteString(out, cfg.policy.Sanitize(raw))
		return err
	})
}
