package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-contact/pkg/prompt"
)

const contactsYAML = `contacts:
  - id: jane
    page: {book: /site, path: /team.html}
    first: Jane
    phoneNumbers:
      - {type: mobile, number: "555 123 4567"}
    body: "<b>hi</b><script>x</script>"
  - id: hq
    page: {book: /site, path: /about.html}
    addresses:
      - {type: work, city: Lisbon}
`

func resetFlags(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	contactID, rendererID, outputPath, style, bodyFormat = "", "table", "", "", ""
	cssVars = nil
	pageIndex = true
	t.Cleanup(func() {
		contactID, rendererID, outputPath, style, bodyFormat = "", "table", "", "", ""
		cssVars = nil
		pageIndex = true
	})
}

func writeContacts(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.yaml")
	if err := os.WriteFile(path, []byte(contactsYAML), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	if err := fn(cmd, args); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	return buf.String()
}

func TestRenderCmd_AllContacts(t *testing.T) {
	resetFlags(t)
	out := run(t, runRender, writeContacts(t))

	if !strings.Contains(out, `<table id="page0-jane" class="thinTable contactTable">`) {
		t.Fatalf("missing jane table:\n%s", out)
	}
	if !strings.Contains(out, `<table id="page1-hq" class="thinTable contactTable">`) {
		t.Fatalf("missing hq table:\n%s", out)
	}
	if strings.Count(out, "<table ") != 2 {
		t.Fatalf("expected two tables:\n%s", out)
	}
}

func TestRenderCmd_Flags(t *testing.T) {
	resetFlags(t)
	contactID = "jane"
	rendererID = "vanilla"
	style = "width: 50%"
	bodyFormat = "sanitized"
	pageIndex = false

	out := run(t, runRender, writeContacts(t))

	if !strings.HasPrefix(out, `<table id="jane" class="thinTable contactTable" style="width: 50%">`) {
		t.Fatalf("unexpected table open:\n%s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("sanitized body kept script:\n%s", out)
	}
	if !strings.Contains(out, "<b>hi</b>") {
		t.Fatalf("sanitized body dropped allowed markup:\n%s", out)
	}
	if strings.Contains(out, `id="hq"`) {
		t.Fatalf("--id should restrict output:\n%s", out)
	}
}

func TestRenderCmd_CSSVars(t *testing.T) {
	resetFlags(t)
	contactID = "hq"
	cssVars = map[string]string{"--accent": "teal"}

	out := run(t, runRender, writeContacts(t))
	if !strings.Contains(out, `style="--accent: teal;"`) {
		t.Fatalf("expected css vars in style:\n%s", out)
	}
}

func TestRenderCmd_OutputFile(t *testing.T) {
	resetFlags(t)
	contactID = "hq"
	outputPath = filepath.Join(t.TempDir(), "out.html")

	if out := run(t, runRender, writeContacts(t)); out != "" {
		t.Fatalf("expected nothing on stdout, got %q", out)
	}
	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), `<table id="page1-hq"`) {
		t.Fatalf("unexpected file contents: %s", data)
	}
}

func TestRenderCmd_Directory(t *testing.T) {
	resetFlags(t)
	path := writeContacts(t)

	out := run(t, runRender, filepath.Dir(path))
	if strings.Count(out, "<table ") != 2 {
		t.Fatalf("expected two tables from directory:\n%s", out)
	}
}

func TestRenderCmd_ContactsWithoutID(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "anon.yaml")
	doc := `contacts:
  - first: Anon
    page: {path: /a}
  - id: notes
    page: {path: /b}
    last: Doe
    body: "**hours** 9-5"
    bodyFormat: markdown
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out := run(t, runRender, path)

	if !strings.Contains(out, `<table id="" class="thinTable contactTable">`) {
		t.Fatalf("missing id-less table:\n%s", out)
	}
	if !strings.Contains(out, `<div>Anon</div>`) {
		t.Fatalf("missing id-less contact header:\n%s", out)
	}
	if !strings.Contains(out, `<table id="page1-notes"`) {
		t.Fatalf("missing notes table:\n%s", out)
	}
	if !strings.Contains(out, `<strong>hours</strong>`) {
		t.Fatalf("record body format not applied:\n%s", out)
	}
}

func TestRenderCmd_Errors(t *testing.T) {
	resetFlags(t)
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	if err := runRender(cmd, []string{filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected missing file error")
	}

	contactID = "nobody"
	if err := runRender(cmd, []string{writeContacts(t)}); err == nil || !strings.Contains(err.Error(), `"nobody" not found`) {
		t.Fatalf("expected unknown contact error, got %v", err)
	}
}

func TestNewCmd(t *testing.T) {
	resetFlags(t)
	driver := &scriptedDriver{
		inputs:  []string{"c9", "", "Ada", "", "", "Lovelace", "", "", "", "", ""},
		confirm: []bool{false, false, false, false, false, false},
	}
	previous := newPromptDriver
	newPromptDriver = func() prompt.PromptDriver { return driver }
	t.Cleanup(func() { newPromptDriver = previous })

	out := run(t, runNew)
	if !strings.Contains(out, `<div>Ada Lovelace</div>`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.HasPrefix(out, `<table id="c9"`) {
		t.Fatalf("unexpected table id:\n%s", out)
	}
}

func TestNewCmd_Aborted(t *testing.T) {
	resetFlags(t)
	previous := newPromptDriver
	newPromptDriver = func() prompt.PromptDriver { return &scriptedDriver{err: prompt.ErrAborted} }
	t.Cleanup(func() { newPromptDriver = previous })

	cmd := &cobra.Command{}
	if err := runNew(cmd, nil); !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

type scriptedDriver struct {
	inputs  []string
	confirm []bool
	err     error
}

func (d *scriptedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	if len(d.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	val := d.inputs[0]
	d.inputs = d.inputs[1:]
	return val, nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	if len(d.confirm) == 0 {
		return false, errors.New("no confirm scripted")
	}
	val := d.confirm[0]
	d.confirm = d.confirm[1:]
	return val, nil
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 0, errors.New("no select scripted")
}

func (d *scriptedDriver) TextArea(context.Context, prompt.TextAreaConfig) (string, error) {
	return "", errors.New("no textarea scripted")
}

func (d *scriptedDriver) Info(context.Context, string) error {
	return nil
}
