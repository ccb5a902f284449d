package layout

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestBaseRendersProvidedBody(t *testing.T) {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := w.Write([]byte("<main>content</main>"))
		return err
	})

	var buf bytes.Buffer
	if err := Base("Celebrations", body).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render layout: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<title>Celebrations</title>") {
		t.Fatalf("expected document title to be rendered: %s", out)
	}
	if !strings.Contains(out, "<main>content</main>") {
		t.Fatalf("expected body to be rendered: %s", out)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("expected a full document, got: %.40s", out)
	}
}

func TestBaseEscapesTitle(t *testing.T) {
	empty := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return nil
	})

	var buf bytes.Buffer
	if err := Base(`<script>`, empty).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render layout: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatalf("expected title to be escaped: %s", buf.String())
	}
}
