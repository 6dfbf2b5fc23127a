package body_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-contact/pkg/body"
	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/render"
)

func renderBody(t *testing.T, renderer body.BodyRenderer, contact model.Contact) string {
	t.Helper()
	var buf bytes.Buffer
	if err := renderer.RenderBody(render.ElementContext{}, contact, &buf); err != nil {
		t.Fatalf("render body: %v", err)
	}
	return buf.String()
}

func TestTrustedWritesVerbatim(t *testing.T) {
	contact := model.Contact{Body: model.TextBody(`<p class="note">Call <em>after</em> 5pm</p>`)}
	if got := renderBody(t, body.Trusted, contact); got != `<p class="note">Call <em>after</em> 5pm</p>` {
		t.Fatalf("unexpected trusted output %q", got)
	}
	if got := renderBody(t, body.Trusted, model.Contact{}); got != "" {
		t.Fatalf("nil body should render nothing, got %q", got)
	}
}

func TestTextEscapes(t *testing.T) {
	contact := model.Contact{Body: model.TextBody("Ask for Jane & <Bob>")}
	if got := renderBody(t, body.Text(nil), contact); got != "Ask for Jane &amp; &lt;Bob&gt;" {
		t.Fatalf("unexpected text output %q", got)
	}
}

func TestSanitizedStripsScripts(t *testing.T) {
	contact := model.Contact{Body: model.TextBody(`<p onclick="x()">Hi<script>alert(1)</script> <a href="tel:555-1234">call</a></p>`)}
	got := renderBody(t, body.Sanitized(), contact)
	if strings.Contains(got, "script") || strings.Contains(got, "onclick") {
		t.Fatalf("unsafe markup survived: %q", got)
	}
	if !strings.Contains(got, `href="tel:555-1234"`) {
		t.Fatalf("expected tel link to survive: %q", got)
	}
	if !strings.Contains(got, "<p>Hi") {
		t.Fatalf("expected paragraph to survive: %q", got)
	}
}

func TestSanitizedWithPolicy(t *testing.T) {
	contact := model.Contact{Body: model.TextBody(`<b>bold</b> text`)}
	got := renderBody(t, body.Sanitized(body.WithPolicy(bluemonday.StrictPolicy())), contact)
	if got != "bold text" {
		t.Fatalf("strict policy: got %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	contact := model.Contact{Body: model.TextBody("**Office hours** at [HQ](https://example.com)\n\n<script>alert(1)</script>\n")}
	got := renderBody(t, body.Markdown(), contact)
	if !strings.Contains(got, "<strong>Office hours</strong>") {
		t.Fatalf("expected strong text, got %q", got)
	}
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Fatalf("expected link, got %q", got)
	}
	if strings.Contains(got, "<script") {
		t.Fatalf("script survived markdown conversion: %q", got)
	}
	if got := renderBody(t, body.Markdown(), model.Contact{Body: model.TextBody("")}); got != "" {
		t.Fatalf("empty markdown: got %q", got)
	}
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"", "trusted", "text", "sanitized", "html", "markdown", "md"} {
		if _, ok := body.Named(name); !ok {
			t.Fatalf("expected %q to resolve", name)
		}
	}
	if _, ok := body.Named("pdf"); ok {
		t.Fatalf("expected unknown renderer to fail")
	}
}

func TestBodyWriteErrorsPropagate(t *testing.T) {
	boom := errors.New("closed pipe")
	contact := model.Contact{Body: model.TextBody("hello")}
	for name, renderer := range map[string]body.BodyRenderer{
		"trusted":   body.Trusted,
		"text":      body.Text(nil),
		"sanitized": body.Sanitized(),
	} {
		if err := renderer.RenderBody(render.ElementContext{}, contact, failingWriter{boom}); !errors.Is(err, boom) {
			t.Fatalf("%s: expected sink error, got %v", name, err)
		}
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

var _ io.Writer = failingWriter{}
