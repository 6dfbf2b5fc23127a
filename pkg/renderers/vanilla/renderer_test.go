package vanilla_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contact/pkg/body"
	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/pageindex"
	"github.com/goliatone/go-contact/pkg/render"
	"github.com/goliatone/go-contact/pkg/renderers/table"
	"github.com/goliatone/go-contact/pkg/renderers/vanilla"
	"github.com/goliatone/go-contact/pkg/testsupport"
)

func streamed(t *testing.T, indexer pageindex.PageIndexer, style any, contact model.Contact) string {
	t.Helper()
	var buf bytes.Buffer
	if err := table.WriteContactTable(indexer, &buf, render.ElementContext{}, style, contact); err != nil {
		t.Fatalf("write contact table: %v", err)
	}
	return buf.String()
}

func TestRenderer_MatchesTableOutput(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	sample := testsupport.SampleContact()
	addresses := []model.Address{{Type: model.AddressWork, City: model.String("Lisbon"), Comment: model.String("Back door")}}
	cases := []struct {
		name    string
		contact model.Contact
		indexer pageindex.PageIndexer
		style   any
	}{
		{"sample", sample, pageindex.New(sample.Page), "width: 50%"},
		{"empty shell", model.Contact{ID: "c1"}, nil, nil},
		{"address only", model.Contact{ID: "hq", Addresses: addresses}, nil, nil},
		{"escaping", model.Contact{
			ID:       `x"y`,
			Company:  model.String("Jane & Co"),
			WebPages: []string{`https://example.com/?a=1&b="2"`},
			IMs:      []model.IM{{Type: model.IMJabber, Handle: "<jane>", Comment: model.String("a & b")}},
		}, nil, map[string]string{"color": "red"}},
		{"phone comment", model.Contact{PhoneNumbers: []model.PhoneNumber{
			{Type: model.PhoneMobile, Number: "555 123 4567", Comment: model.String("evenings")},
			{Type: model.PhoneFax, Number: "555 000"},
		}}, nil, nil},
		{"body", model.Contact{Last: model.String("Doe"), Body: model.TextBody("<p>Hi</p>")}, nil, nil},
	}

	for _, tc := range cases {
		want := streamed(t, tc.indexer, tc.style, tc.contact)
		got, err := renderer.Render(testsupport.Context(), tc.contact, render.RenderOptions{
			Style:   tc.style,
			Indexer: tc.indexer,
		})
		if err != nil {
			t.Fatalf("%s: render: %v", tc.name, err)
		}
		if diff := testsupport.CompareGolden(want, string(got)); diff != "" {
			t.Fatalf("%s: output mismatch (-table +vanilla):\n%s", tc.name, diff)
		}
	}
}

func TestRenderer_ThemeStyle(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), model.Contact{ID: "c1"}, render.RenderOptions{
		Theme: &theme.RendererConfig{Theme: "acme", CSSVars: map[string]string{"--brand": "#123456"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `style="--brand: #123456;"`) {
		t.Fatalf("expected theme vars in style attribute, got %s", out)
	}
}

func TestRenderer_WithTemplatesFS(t *testing.T) {
	files := fstest.MapFS{
		vanilla.TemplatePath: &fstest.MapFile{Data: []byte(`<p id="{{ id|safe }}">{{ label|safe }}</p>`)},
	}

	renderer, err := vanilla.New(vanilla.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), model.Contact{ID: "c1", Company: model.String("A & B")}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, want := string(out), `<p id="c1">A &amp; B</p>`; got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, data any, out ...io.Writer) (string, error) {
			if name != vanilla.TemplatePath {
				return "", errors.New("unexpected template " + name)
			}
			view, ok := data.(map[string]any)
			if !ok {
				return "", errors.New("unexpected view model")
			}
			if view["header"] != false {
				return "", errors.New("expected header to be suppressed")
			}
			return "custom-output", nil
		},
	}

	renderer, err := vanilla.New(vanilla.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	contact := model.Contact{Addresses: []model.Address{{Type: model.AddressHome, City: model.String("Porto")}}}
	out, err := renderer.Render(testsupport.Context(), contact, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "custom-output" {
		t.Fatalf("unexpected output: %s", out)
	}
	if !stub.called {
		t.Fatalf("expected render template to be called")
	}
}

func TestRenderer_TemplateErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(string, any, ...io.Writer) (string, error) {
			return "", boom
		},
	}

	renderer, err := vanilla.New(vanilla.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = renderer.Render(testsupport.Context(), model.Contact{}, render.RenderOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped template error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "vanilla renderer: render template") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestRenderer_BodyRendererReceivesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(testsupport.Context(), key{}, "marker")

	var seen any
	spy := body.Func(func(element render.ElementContext, contact model.Contact, out io.Writer) error {
		seen = element.Ctx().Value(key{})
		_, err := io.WriteString(out, "<em>body</em>")
		return err
	})

	renderer, err := vanilla.New(vanilla.WithBodyRenderer(spy))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(ctx, model.Contact{Body: model.TextBody("ignored")}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if seen != "marker" {
		t.Fatalf("expected render context to reach body renderer, got %v", seen)
	}
	if !strings.Contains(string(out), `<tr><td class="contactBody" colspan="3"><em>body</em></td></tr>`) {
		t.Fatalf("missing body row: %s", out)
	}
}

func TestRenderer_CanceledContext(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, model.Contact{}, render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != vanilla.Name {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

type stubTemplateRenderer struct {
	called             bool
	renderTemplateFunc func(name string, data any, out ...io.Writer) (string, error)
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	s.called = true
	if s.renderTemplateFunc != nil {
		return s.renderTemplateFunc(name, data, out...)
	}
	return "", nil
}

func (s *stubTemplateRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(data any) error {
	return nil
}
