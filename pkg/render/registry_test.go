package render

import (
	"context"
	"testing"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, []Node, Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}

	renderer, err := reg.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer %s", renderer.Name())
	}

	if _, err := reg.Get("pdf"); err == nil {
		t.Fatalf("expected error for unregistered name")
	}
}

func TestRegistry_ListSortedAndHas(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubRenderer{name: "text"})
	reg.MustRegister(stubRenderer{name: "html"})

	names := reg.List()
	if len(names) != 2 || names[0] != "html" || names[1] != "text" {
		t.Fatalf("unexpected listing: %v", names)
	}
	if !reg.Has("text") || reg.Has("pdf") {
		t.Fatalf("Has answers wrong")
	}
}

func TestRegistry_RejectsInvalidRenderers(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
