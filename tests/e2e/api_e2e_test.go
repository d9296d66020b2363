package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/config"
	"github.com/joohoonkim/portfolio-backend/internal/db"
	"github.com/joohoonkim/portfolio-backend/internal/handler"
	"github.com/joohoonkim/portfolio-backend/internal/logger"
	"github.com/joohoonkim/portfolio-backend/internal/router"
	"github.com/joohoonkim/portfolio-backend/internal/service"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	baseURL       = "http://portfolio.test"
	adminPassword = "e2e-password"
)

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(h http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: h, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

type e2eSuite struct {
	handler http.Handler
	public  *localClient
	admin   *localClient
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	cfg := config.AppConfig{
		SessionSecret:     "e2e-secret",
		UploadDir:         t.TempDir(),
		UploadURLPath:     "/static/uploads",
		SiteBaseURL:       "https://example.org",
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		AllowedOrigins:    []string{"http://localhost:5173"},
	}

	api := handler.NewAPI(gdb, logger.NewNop(), cfg)
	engine := router.Setup(cfg, logger.NewNop(), api)

	return &e2eSuite{
		handler: engine,
		public:  newLocalClient(engine, false),
		admin:   newLocalClient(engine, true),
	}
}

func (s *e2eSuite) request(t *testing.T, client *localClient, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, data
}

func (s *e2eSuite) mustJSON(t *testing.T, client *localClient, method, path string, body interface{}, wantStatus int, dst interface{}) {
	t.Helper()

	resp, data := s.request(t, client, method, path, body)
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d: %s", method, path, wantStatus, resp.StatusCode, data)
	}
	if dst != nil {
		if err := json.Unmarshal(data, dst); err != nil {
			t.Fatalf("%s %s: failed to decode %q: %v", method, path, data, err)
		}
	}
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	s.mustJSON(t, s.admin, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin",
		"password": adminPassword,
	}, http.StatusOK, nil)
}

func TestHealthEndpoint(t *testing.T) {
	s := newE2ESuite(t)

	var body map[string]string
	s.mustJSON(t, s.public, http.MethodGet, "/health", nil, http.StatusOK, &body)
	if body["status"] != "healthy" {
		t.Fatalf("unexpected health status: %q", body["status"])
	}
}

func TestPublicationLifecycle(t *testing.T) {
	s := newE2ESuite(t)

	// 未登录的写操作一律被拒绝
	resp, _ := s.request(t, s.public, http.MethodPost, "/api/publications", gin.H{"title": "x"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous create, got %d", resp.StatusCode)
	}

	s.login(t)

	var created db.Publication
	s.mustJSON(t, s.admin, http.MethodPost, "/api/publications", gin.H{
		"number":          1,
		"title":           "Epitaxial oxide films",
		"year":            "2024",
		"is_first_author": true,
	}, http.StatusOK, &created)
	if created.ID == 0 || created.Status != service.PublicationStatusPublished {
		t.Fatalf("unexpected created publication: %+v", created)
	}

	s.mustJSON(t, s.admin, http.MethodPost, "/api/publications", gin.H{
		"number": 2,
		"title":  "Domain wall motion",
		"year":   "2025",
		"status": service.PublicationStatusUnderSubmission,
	}, http.StatusOK, nil)

	var listed []db.Publication
	s.mustJSON(t, s.public, http.MethodGet, "/api/publications", nil, http.StatusOK, &listed)
	if len(listed) != 2 || listed[0].Number != 2 {
		t.Fatalf("unexpected publication list: %+v", listed)
	}

	s.mustJSON(t, s.public, http.MethodGet, "/api/publications?contribution=first-author", nil, http.StatusOK, &listed)
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("unexpected filter result: %+v", listed)
	}

	var stats service.PublicationStats
	s.mustJSON(t, s.public, http.MethodGet, "/api/publications/stats", nil, http.StatusOK, &stats)
	if stats.Total != 2 || stats.FirstAuthor != 1 || stats.UnderSubmission != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	var updated db.Publication
	s.mustJSON(t, s.admin, http.MethodPut, fmt.Sprintf("/api/publications/%d", created.ID),
		gin.H{"journal": "Nature Materials"}, http.StatusOK, &updated)
	if updated.Journal != "Nature Materials" || updated.Title != "Epitaxial oxide films" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	s.mustJSON(t, s.admin, http.MethodDelete, fmt.Sprintf("/api/publications/%d", created.ID),
		nil, http.StatusOK, nil)
	s.mustJSON(t, s.public, http.MethodGet, "/api/publications", nil, http.StatusOK, &listed)
	if len(listed) != 1 {
		t.Fatalf("expected 1 publication after delete, got %d", len(listed))
	}
}

func TestResearchAreaAndSitemap(t *testing.T) {
	s := newE2ESuite(t)
	s.login(t)

	var area db.ResearchArea
	s.mustJSON(t, s.admin, http.MethodPost, "/api/research-areas", gin.H{
		"title":     "Oxide epitaxy",
		"slug":      "oxide-epitaxy",
		"is_active": true,
	}, http.StatusOK, &area)

	var got db.ResearchArea
	s.mustJSON(t, s.public, http.MethodGet, "/api/research-areas/oxide-epitaxy", nil, http.StatusOK, &got)
	if got.ID != area.ID {
		t.Fatalf("unexpected area by slug: %+v", got)
	}

	resp, data := s.request(t, s.public, http.MethodGet, "/api/search/sitemap.xml", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 sitemap, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(data), "<loc>https://example.org/research/oxide-epitaxy</loc>") {
		t.Fatalf("expected sitemap to list active area, got %s", data)
	}
}

func TestCVProfileReplace(t *testing.T) {
	s := newE2ESuite(t)
	s.login(t)

	resp, _ := s.request(t, s.public, http.MethodGet, "/api/cv/profile", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 without profile, got %d", resp.StatusCode)
	}

	s.mustJSON(t, s.admin, http.MethodPost, "/api/cv/profile", gin.H{
		"name":  "Joohoon Kim",
		"title": "Assistant Professor",
		"contact_info": []gin.H{
			{"label": "Email", "value": "kim@example.edu", "data_type": "email", "order_index": 1},
		},
		"cv_sections": []gin.H{
			{"title": "Education", "content": "Ph.D. in Materials Science", "order_index": 1},
		},
	}, http.StatusOK, nil)

	s.mustJSON(t, s.admin, http.MethodPost, "/api/cv/profile", gin.H{
		"name": "Joohoon Kim",
		"bio":  "Updated bio",
	}, http.StatusOK, nil)

	var profile struct {
		db.CVProfile
		ContactInfo []db.ContactInfo `json:"contact_info"`
		CVSections  []db.CVSection   `json:"cv_sections"`
	}
	s.mustJSON(t, s.public, http.MethodGet, "/api/cv/profile", nil, http.StatusOK, &profile)
	if profile.Bio != "Updated bio" {
		t.Fatalf("expected latest profile to be active: %+v", profile.CVProfile)
	}
	if len(profile.ContactInfo) != 0 || len(profile.CVSections) != 0 {
		t.Fatalf("expected replacement to drop old children")
	}

	resp, _ = s.request(t, s.admin, http.MethodPost, "/api/cv/profile", gin.H{"name": " "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", resp.StatusCode)
	}
}

func TestMarkdownCVActivationFlow(t *testing.T) {
	s := newE2ESuite(t)
	s.login(t)

	var first db.MarkdownCV
	s.mustJSON(t, s.admin, http.MethodPost, "/api/cv-markdown/documents", gin.H{
		"title":   "CV 2025",
		"content": "# Old",
	}, http.StatusOK, &first)

	var second db.MarkdownCV
	s.mustJSON(t, s.admin, http.MethodPost, "/api/cv-markdown/documents", gin.H{
		"title":   "CV 2026",
		"content": "# New",
	}, http.StatusOK, &second)

	s.mustJSON(t, s.admin, http.MethodPost, fmt.Sprintf("/api/cv-markdown/documents/%d/set-active", first.ID),
		nil, http.StatusOK, nil)

	var msg map[string]string
	s.mustJSON(t, s.admin, http.MethodPost, fmt.Sprintf("/api/cv-markdown/documents/%d/set-active", second.ID),
		nil, http.StatusOK, &msg)
	if msg["message"] != "Document 'CV 2026' is now active" {
		t.Fatalf("unexpected message: %q", msg["message"])
	}

	var active db.MarkdownCV
	s.mustJSON(t, s.public, http.MethodGet, "/api/cv-markdown/documents/active", nil, http.StatusOK, &active)
	if active.ID != second.ID {
		t.Fatalf("expected second document to be active, got %d", active.ID)
	}

	// 内容更新递增版本号
	var updated db.MarkdownCV
	s.mustJSON(t, s.admin, http.MethodPut, fmt.Sprintf("/api/cv-markdown/documents/%d", second.ID),
		gin.H{"content": "# Newer"}, http.StatusOK, &updated)
	if updated.Version != 2 {
		t.Fatalf("expected version 2 after content update, got %d", updated.Version)
	}
}

func TestGalleryUploadAndStaticServing(t *testing.T) {
	s := newE2ESuite(t)
	s.login(t)

	img := image.NewRGBA(image.Rect(0, 0, 8, 5))
	for x := 0; x < 8; x++ {
		for y := 0; y < 5; y++ {
			img.Set(x, y, color.RGBA{R: 10, G: 120, B: 240, A: 255})
		}
	}
	pngBuf := &bytes.Buffer{}
	if err := png.Encode(pngBuf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="lab photo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write(pngBuf.Bytes()); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/gallery-images/upload-image", body)
	if err != nil {
		t.Fatalf("failed to build upload request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := s.admin.Do(req)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 upload, got %d: %s", resp.StatusCode, data)
	}

	var uploaded struct {
		ImagePath   string `json:"image_path"`
		ImageWidth  int    `json:"image_width"`
		ImageHeight int    `json:"image_height"`
	}
	if err := json.Unmarshal(data, &uploaded); err != nil {
		t.Fatalf("failed to decode upload response: %v", err)
	}
	if uploaded.ImageWidth != 8 || uploaded.ImageHeight != 5 {
		t.Fatalf("unexpected dimensions: %dx%d", uploaded.ImageWidth, uploaded.ImageHeight)
	}
	if !strings.HasPrefix(uploaded.ImagePath, "/static/uploads/gallery/") {
		t.Fatalf("unexpected image path: %q", uploaded.ImagePath)
	}

	// 上传后的文件可以通过静态路径取回
	staticResp, staticData := s.request(t, s.public, http.MethodGet, uploaded.ImagePath, nil)
	if staticResp.StatusCode != http.StatusOK {
		t.Fatalf("expected static file to be served, got %d", staticResp.StatusCode)
	}
	if !bytes.Equal(staticData, pngBuf.Bytes()) {
		t.Fatalf("static file content mismatch")
	}
}

func TestRepresentativeWorkActiveFilter(t *testing.T) {
	s := newE2ESuite(t)
	s.login(t)

	var visible db.RepresentativeWork
	s.mustJSON(t, s.admin, http.MethodPost, "/api/representative-works", gin.H{
		"title":       "Flexible memristor array",
		"is_active":   true,
		"order_index": 1,
	}, http.StatusOK, &visible)

	var hidden db.RepresentativeWork
	s.mustJSON(t, s.admin, http.MethodPost, "/api/representative-works", gin.H{
		"title":       "Unpublished work",
		"order_index": 2,
	}, http.StatusOK, &hidden)
	s.mustJSON(t, s.admin, http.MethodPut, fmt.Sprintf("/api/representative-works/%d", hidden.ID),
		gin.H{"is_active": false}, http.StatusOK, nil)

	var works []db.RepresentativeWork
	s.mustJSON(t, s.public, http.MethodGet, "/api/representative-works", nil, http.StatusOK, &works)
	if len(works) != 1 || works[0].ID != visible.ID {
		t.Fatalf("expected default listing to hide inactive works: %+v", works)
	}

	s.mustJSON(t, s.public, http.MethodGet, "/api/representative-works?active_only=false", nil, http.StatusOK, &works)
	if len(works) != 2 {
		t.Fatalf("expected 2 works without filter, got %d", len(works))
	}
}
