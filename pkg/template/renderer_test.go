package template

import (
	"strings"
	"testing"
)

func TestRenderStaticOnly(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	html, err := r.RenderToString(Html([]string{"<p>hi</p>"}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<p>hi</p>" {
		t.Errorf("got %q, want %q", html, "<p>hi</p>")
	}
}

func TestRenderMalformedResult(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	_, err := r.RenderToString(Html([]string{"a"}, []any{1}))
	if err == nil {
		t.Fatal("expected error for fragment/value count mismatch")
	}
}

func TestRenderNodeTextEscaping(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	res := Html([]string{"<div>", "</div>"}, []any{"<script>alert('x')</script>"})
	html, err := r.RenderToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("node text should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderNodeScalars(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 42, "<p>42</p>"},
		{"float", 1.5, "<p>1.5</p>"},
		{"bool", true, "<p>true</p>"},
		{"nil", nil, "<p></p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.RenderToString(Html([]string{"<p>", "</p>"}, []any{tt.value}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderNestedResult(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	inner := Html([]string{"<b>", "</b>"}, []any{"x & y"})
	outer := Html([]string{"<div>", "</div>"}, []any{inner})

	html, err := r.RenderToString(outer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div><b>x &amp; y</b></div>"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderValueList(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	items := []any{
		Html([]string{"<li>a</li>"}, nil),
		Html([]string{"<li>b</li>"}, nil),
	}
	res := Html([]string{"<ul>", "</ul>"}, []any{items})

	html, err := r.RenderToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<ul><li>a</li><li>b</li></ul>"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderPropertyBinding(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	res := Html([]string{"<input .value=", ">"}, []any{`a "quoted" value`})
	html, err := r.RenderToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<input value="a &quot;quoted&quot; value">`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderNilPropertySkipped(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	res := Html([]string{"<input .value=", ">"}, []any{nil})
	html, err := r.RenderToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<input >" {
		t.Errorf("got %q, want %q", html, "<input >")
	}
}

func TestRenderEventBinding(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	handler := func() {}
	res := Html([]string{"<button @click=", ">Go</button>"}, []any{handler})

	html, err := r.RenderToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<button data-on-click="true" data-hid="h1">Go</button>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
	if r.GetHandlers()["h1_onclick"] == nil {
		t.Error("handler should be registered under h1_onclick")
	}
}

func TestRenderTwoEventsShareHID(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	res := Html(
		[]string{"<button @click=", " @focus=", ">x</button>"},
		[]any{func() {}, func() {}},
	)

	html, err := r.RenderToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<button data-on-click="true" data-hid="h1" data-on-focus="true">x</button>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}

	handlers := r.GetHandlers()
	if handlers["h1_onclick"] == nil || handlers["h1_onfocus"] == nil {
		t.Errorf("both handlers should share h1, got %v", handlers)
	}
}

func TestRenderEventHIDsAcrossElements(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	res := Html(
		[]string{"<a @click=", "></a><b @click=", "></b>"},
		[]any{func() {}, func() {}},
	)

	html, err := r.RenderToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `data-hid="h1"`) || !strings.Contains(html, `data-hid="h2"`) {
		t.Errorf("each element should get its own hid, got %q", html)
	}
}

func TestRenderDisableHydrationIDs(t *testing.T) {
	r := NewRenderer(RendererConfig{DisableHydrationIDs: true})

	res := Html([]string{"<button @click=", ">x</button>"}, []any{func() {}})
	html, err := r.RenderToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "data-hid") {
		t.Errorf("hids disabled, got %q", html)
	}
	if len(r.GetHandlers()) != 0 {
		t.Error("handlers should not be collected when hids are disabled")
	}
}

func TestRenderDirectiveBinding(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	res := Html(
		[]string{"<input ", ">"},
		[]any{ClassMap(map[string]bool{"b": true, "a": true, "off": false})},
	)

	html, err := r.RenderToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<input class="a b">`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderDirectivePositionFallbacks(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"raw string", `data-x="1"`, `<i data-x="1">`},
		{"nil dropped", nil, "<i >"},
		{"non-directive dropped", 42, "<i >"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.RenderToString(Html([]string{"<i ", ">"}, []any{tt.value}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRendererReset(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	res := Html([]string{"<a @click=", "></a>"}, []any{func() {}})
	if _, err := r.RenderToString(res); err != nil {
		t.Fatal(err)
	}
	if len(r.GetHandlers()) != 1 {
		t.Fatalf("got %d handlers, want 1", len(r.GetHandlers()))
	}

	r.Reset()
	if len(r.GetHandlers()) != 0 {
		t.Error("Reset should clear the handler registry")
	}

	html, err := r.RenderToString(res)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, `data-hid="h1"`) {
		t.Errorf("hid counter should restart at h1 after Reset, got %q", html)
	}
}

func BenchmarkRender(b *testing.B) {
	r := NewRenderer(RendererConfig{})
	inner := Html([]string{"<li>", "</li>"}, []any{"item"})
	res := Html(
		[]string{"<ul class=\"x\">", "", "</ul>"},
		[]any{inner, inner},
	)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := r.RenderToString(res); err != nil {
			b.Fatal(err)
		}
	}
}
