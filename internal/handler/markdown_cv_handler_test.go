package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/db"
)

func TestMarkdownCVLifecycle(t *testing.T) {
	r, _ := newTestServer(t)
	cookies := loginAdmin(t, r)

	// 没有激活文档时返回 null 而不是 404
	w := doJSON(t, r, http.MethodGet, "/api/cv-markdown/documents/active", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for missing active document, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Fatalf("expected null body, got %q", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/cv-markdown/documents", gin.H{
		"title":   "Academic CV",
		"content": "# Education\n\n**Ph.D.**",
	}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("failed to create document: %d %s", w.Code, w.Body.String())
	}
	var doc db.MarkdownCV
	decodeBody(t, w, &doc)
	if doc.Version != 1 || doc.IsActive {
		t.Fatalf("unexpected new document state: %+v", doc)
	}

	w = doJSON(t, r, http.MethodPost, "/api/cv-markdown/documents", gin.H{"content": "no title"}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/cv-markdown/documents/1/set-active", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("failed to set active: %d %s", w.Code, w.Body.String())
	}
	var msg map[string]string
	decodeBody(t, w, &msg)
	if msg["message"] != "Document 'Academic CV' is now active" {
		t.Fatalf("unexpected message: %q", msg["message"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/cv-markdown/documents/active/html", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("failed to render active document: %d", w.Code)
	}
	var rendered struct {
		Title   string `json:"title"`
		Version int    `json:"version"`
		HTML    string `json:"html"`
	}
	decodeBody(t, w, &rendered)
	if rendered.Title != "Academic CV" || !strings.Contains(rendered.HTML, "<strong>Ph.D.</strong>") {
		t.Fatalf("unexpected rendered document: %+v", rendered)
	}
}

func TestMarkdownCVExport(t *testing.T) {
	r, _ := newTestServer(t)
	cookies := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/cv-markdown/documents", gin.H{
		"title":   "Academic CV 2026",
		"content": "# CV body",
	}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("failed to create document: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/cv-markdown/documents/1/export", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("failed to export document: %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=Academic_CV_2026.md" {
		t.Fatalf("unexpected content disposition: %q", cd)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if w.Body.String() != "# CV body" {
		t.Fatalf("unexpected export body: %q", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/cv-markdown/documents/999/export", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing document, got %d", w.Code)
	}
}
