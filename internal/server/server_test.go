package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
	"github.com/goliatone/go-briefwizard/pkg/projection"
)

func newTestServer(t *testing.T, options ...Option) *httptest.Server {
	t.Helper()
	fixed := func() time.Time { return time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC) }
	opts := append([]Option{WithClock(fixed)}, options...)
	ts := httptest.NewServer(New(opts...).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(payload)
}

func TestServer_ViewRendersValidSnapshot(t *testing.T) {
	ts := newTestServer(t)
	record := brief.Template()
	record.ID = "f47ac10b-58cc-4372-8567-0e02b2c3d479"

	link, err := projection.ShareLink(ts.URL, record)
	if err != nil {
		t.Fatalf("share link: %v", err)
	}

	resp, body := get(t, link)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
	if !strings.Contains(body, record.Step1.FullName) {
		t.Fatalf("rendered page must contain the brief data")
	}
	if !strings.Contains(body, "NUEVO BRAND BRIEF COMPLETADO") {
		t.Fatalf("rendered page must carry the document title")
	}
}

func TestServer_ViewRejectsGarbageToken(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/brief/view?data=%25%25not-base64%25%25")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Brief no encontrado") {
		t.Fatalf("expected the not-found page, got %q", body)
	}
}

func TestServer_ViewRejectsInvalidRecord(t *testing.T) {
	ts := newTestServer(t)

	// Decodes and parses but fails validation: an empty record must never
	// render partial data.
	token, err := projection.EncodeSnapshot(brief.New())
	if err != nil {
		t.Fatalf("encode snapshot: %v", err)
	}
	resp, body := get(t, ts.URL+"/brief/view?data="+token)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if strings.Contains(body, "Datos básicos") {
		t.Fatalf("invalid snapshot must not render document sections")
	}
}

func TestServer_ViewMissingToken(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := get(t, ts.URL+"/brief/view")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestServer_NotFoundPageLocale(t *testing.T) {
	ts := newTestServer(t, WithLocale(i18n.LocaleEN))

	resp, body := get(t, ts.URL+"/brief/view?data=nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Brief not found") {
		t.Fatalf("expected the english not-found page")
	}
}
