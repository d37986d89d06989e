package preview

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mizushino/lit-builder/pkg/builder"
	"github.com/mizushino/lit-builder/pkg/template"
)

func testSource() (*template.Result, error) {
	return builder.Build(&builder.Element{
		Tag:      "main",
		Attrs:    map[string]any{"class": "demo"},
		Children: []any{"hello"},
	}), nil
}

func TestServeIndex(t *testing.T) {
	s := NewServer(Config{
		Source:     testSource,
		Title:      "Demo",
		LiveReload: true,
	})

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	html := string(body)
	for _, want := range []string{
		`<main class="demo">hello</main>`,
		"<title>Demo</title>",
		"_reload/ws", // injected live-reload client
	} {
		if !strings.Contains(html, want) {
			t.Errorf("body should contain %q, got:\n%s", want, html)
		}
	}
}

func TestServeIndexWithoutLiveReload(t *testing.T) {
	s := NewServer(Config{Source: testSource})

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "_reload/ws") {
		t.Error("reload client should not be injected when disabled")
	}

	// The websocket route is not mounted either.
	wsResp, err := srv.Client().Get(srv.URL + "/_reload/ws")
	if err != nil {
		t.Fatal(err)
	}
	wsResp.Body.Close()
	if wsResp.StatusCode == 200 {
		t.Error("reload websocket should not be mounted when disabled")
	}
}

func TestServeIndexSourceError(t *testing.T) {
	s := NewServer(Config{
		Source: func() (*template.Result, error) {
			return nil, errors.New("bad descriptor")
		},
	})

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 500 {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestServeMetrics(t *testing.T) {
	s := NewServer(Config{Source: testSource})

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	// Serve one page so the counter has a sample.
	resp, err := srv.Client().Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	resp, err = srv.Client().Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	metrics := string(body)
	for _, want := range []string{
		"litbuilder_preview_builds_total",
		"litbuilder_preview_build_duration_seconds",
		"litbuilder_preview_reload_clients",
	} {
		if !strings.Contains(metrics, want) {
			t.Errorf("metrics should contain %q", want)
		}
	}
}

func TestServeHealth(t *testing.T) {
	s := NewServer(Config{Source: testSource})

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
}
