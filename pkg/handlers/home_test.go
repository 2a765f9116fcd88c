package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"marinelle/pkg/models"
	"marinelle/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func newTestRouter(t *testing.T, backend http.HandlerFunc) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	return NewRouter(Options{
		Site:       services.DefaultSite(),
		Lang:       "it",
		BackendURL: srv.URL,
		Now:        func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) },
	})
}

func jsonBackend(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHomePageRendersContent(t *testing.T) {
	imgs := make([]string, 20)
	for i := range imgs {
		imgs[i] = fmt.Sprintf("https://cdn.example.com/img-%02d.jpg", i)
	}
	payload, _ := json.Marshal(models.ContentDocument{Description: "Cucina casalinga", Images: imgs})
	r := newTestRouter(t, jsonBackend(string(payload)))

	rr := get(r, "/")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()

	if !strings.Contains(body, "Cucina casalinga") {
		t.Error("description missing")
	}
	if got := strings.Count(body, `alt="Galleria"`); got != 4+12 {
		t.Errorf("rendered %d images, want 16", got)
	}
	if strings.Contains(body, imgs[12]) {
		t.Errorf("image %s should not be rendered", imgs[12])
	}
	if strings.Count(body, imgs[3]) != 2 || strings.Count(body, imgs[4]) != 1 {
		t.Error("presentation should show the first 4 images, gallery the first 12")
	}
	if strings.Contains(body, "content-loading") || strings.Contains(body, "content-error") {
		t.Error("loading/error block should not be rendered")
	}
	if !strings.Contains(body, `href="tel:&#43;393407040530"`) && !strings.Contains(body, `href="tel:+393407040530"`) {
		t.Error("tel link missing")
	}
	if !strings.Contains(body, "© 2025 Ristorante Pizzeria Le Marinelle") {
		t.Error("footer copyright missing")
	}
}

func TestHomePageFallbackDescription(t *testing.T) {
	r := newTestRouter(t, jsonBackend(`{"images": []}`))

	body := get(r, "/").Body.String()

	want := template.HTMLEscapeString("Cucina di mare e di terra con ingredienti di qualità e ospitalità familiare.")
	if !strings.Contains(body, want) {
		t.Error("fallback description missing")
	}
}

func TestHomePageBackendFailure(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rr := get(r, "/")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, template.HTMLEscapeString(services.FetchFailedMessage)) {
		t.Error("error message missing")
	}
	if strings.Contains(body, `id="galleria"`) {
		t.Error("gallery should be replaced by the error")
	}
	if strings.Contains(body, `id="description"`) {
		t.Error("presentation should be replaced by the error")
	}
	// static sections stay
	for _, marker := range []string{"<h1", `id="specialita"`, `id="contatti"`, "<footer"} {
		if !strings.Contains(body, marker) {
			t.Errorf("%s should render regardless of the load outcome", marker)
		}
	}
}

func TestHomePageStaticSectionsWithContent(t *testing.T) {
	r := newTestRouter(t, jsonBackend(`{"description": "x"}`))

	body := get(r, "/").Body.String()

	for _, marker := range []string{`id="description"`, `id="specialita"`, `id="galleria"`, `id="contatti"`} {
		if !strings.Contains(body, marker) {
			t.Errorf("%s missing", marker)
		}
	}
}

func TestHomePageClientGone(t *testing.T) {
	started := make(chan struct{})
	r := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	go func() {
		<-started
		cancel()
	}()
	r.ServeHTTP(rr, req)

	if rr.Body.Len() != 0 {
		t.Errorf("nothing should be written for a gone client, got %d bytes", rr.Body.Len())
	}
}

func TestContentAPI(t *testing.T) {
	r := newTestRouter(t, jsonBackend(`{"description": "Test", "images": ["a.jpg","b.jpg"]}`))

	rr := get(r, "/api/content")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var state models.LoadState
	if err := json.Unmarshal(rr.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Status != models.StatusSucceeded || state.Data == nil || state.Data.Description != "Test" {
		t.Errorf("state = %+v", state)
	}
	snaps.MatchSnapshot(t, rr.Body.String())
}

func TestContentAPIFailure(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	var state models.LoadState
	if err := json.Unmarshal(get(r, "/api/content").Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Status != models.StatusFailed || state.Error != services.FetchFailedMessage || state.Data != nil {
		t.Errorf("state = %+v", state)
	}
}

func TestEachRequestGetsFreshLoader(t *testing.T) {
	var created int
	r := NewRouter(Options{
		Site: services.DefaultSite(),
		NewLoader: func() *services.ContentLoader {
			created++
			return services.NewContentLoader("http://127.0.0.1:1")
		},
	})

	get(r, "/api/content")
	get(r, "/api/content")

	if created != 2 {
		t.Errorf("loaders created = %d, want 2", created)
	}
}

func TestHealthAndSecurityHeaders(t *testing.T) {
	r := NewRouter(Options{Site: services.DefaultSite()})

	rr := get(r, "/healthz")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
}

func TestEnglishPage(t *testing.T) {
	srv := httptest.NewServer(jsonBackend(`{}`))
	t.Cleanup(srv.Close)
	r := NewRouter(Options{Site: services.DefaultSite(), Lang: "en", BackendURL: srv.URL})

	body := get(r, "/").Body.String()

	if !strings.Contains(body, `<html lang="en">`) || !strings.Contains(body, "Our specialties") {
		t.Error("page should be rendered in English")
	}
}
