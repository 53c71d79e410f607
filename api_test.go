package folio

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct horse"

// newTestApp wires a full App against a throwaway database, routed but
// not listening. Requests go through a.Echo.ServeHTTP directly.
func newTestApp(t *testing.T) *App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}

	a := New(SiteConfig{
		Name:              "Test Site",
		URL:               "http://localhost:8080",
		DatabasePath:      filepath.Join(t.TempDir(), "api_test.db"),
		AdminPasswordHash: string(hash),
		SessionSecret:     "test-session-secret",
	})

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	a.Store = store
	a.Cache = NewContentCache(store, a.Config.ContentCacheTTL)
	a.loginLimiter = NewIPLimiter(100, time.Minute)
	a.contactLimiter = NewIPLimiter(100, time.Minute)
	a.authenticators = []Authenticator{sessionAuth{}, tokenAuth{store: store}}
	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// adminToken issues a bearer token straight through the store, skipping
// the login round trip.
func adminToken(t *testing.T, a *App) string {
	t.Helper()
	if err := a.Store.IssueToken("test-admin-token"); err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	return "test-admin-token"
}

func doJSON(t *testing.T, a *App, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestMutationsRequireAuth(t *testing.T) {
	a := newTestApp(t)

	cases := []struct {
		method, target string
		body           any
	}{
		{http.MethodPost, "/api/blogs", Blog{Title: "t", Excerpt: "e", Content: "c"}},
		{http.MethodPut, "/api/blogs", Blog{ID: "x", Title: "t"}},
		{http.MethodDelete, "/api/blogs?id=x", nil},
		{http.MethodPost, "/api/projects", Project{Title: "t", Description: "d"}},
		{http.MethodDelete, "/api/stats?id=x", nil},
		{http.MethodPost, "/api/speaking-publications", map[string]any{"speakingEngagements": []any{}, "publications": []any{}}},
		{http.MethodGet, "/api/contact-messages", nil},
		{http.MethodPut, "/api/contact-messages", map[string]string{"id": "x", "status": "read"}},
	}
	for _, tc := range cases {
		rec := doJSON(t, a, tc.method, tc.target, "", tc.body)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tc.method, tc.target, rec.Code)
		}
		resp := decode[map[string]string](t, rec)
		if resp["error"] != "Unauthorized" {
			t.Errorf("%s %s: error = %q, want Unauthorized", tc.method, tc.target, resp["error"])
		}
	}

	// Nothing should have been written.
	blogs, err := a.Store.ListBlogs()
	if err != nil {
		t.Fatalf("ListBlogs failed: %v", err)
	}
	if len(blogs) != 0 {
		t.Errorf("rejected requests must not create rows, got %d blogs", len(blogs))
	}
}

func TestPublicReadsNeedNoAuth(t *testing.T) {
	a := newTestApp(t)
	for _, target := range []string{"/api/blogs", "/api/projects", "/api/experiences", "/api/stats", "/api/speaking-publications", "/api/activity"} {
		rec := doJSON(t, a, http.MethodGet, target, "", nil)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: status = %d, want 200", target, rec.Code)
		}
	}
}

func TestLoginFlow(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, http.MethodPost, "/api/auth/login", "", map[string]string{"password": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, a, http.MethodPost, "/api/auth/login", "", map[string]string{"password": testPassword})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decode[loginResponse](t, rec)
	if resp.AccessToken == "" {
		t.Fatal("login should return an access token")
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token_type = %q, want bearer", resp.TokenType)
	}

	rec = doJSON(t, a, http.MethodGet, "/api/auth/me", resp.AccessToken, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("me with token: status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, a, http.MethodPost, "/api/auth/logout", resp.AccessToken, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("logout: status = %d, want 200", rec.Code)
	}
	rec = doJSON(t, a, http.MethodGet, "/api/auth/me", resp.AccessToken, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("me after logout: status = %d, want 401", rec.Code)
	}
}

func TestSessionCookieAuthorizes(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, http.MethodPost, "/api/auth/login", "", map[string]string{"password": testPassword})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login should set a session cookie")
	}

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", strings.NewReader(`{"title":"t","excerpt":"e","content":"c"}`))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusCreated {
		t.Errorf("cookie-authorized create: status = %d, body = %s", rec2.Code, rec2.Body.String())
	}
}

func TestBlogCreateAndSingleRead(t *testing.T) {
	a := newTestApp(t)
	token := adminToken(t, a)

	rec := doJSON(t, a, http.MethodPost, "/api/blogs", token, Blog{Title: "Hello"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing fields: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, a, http.MethodPost, "/api/blogs", token, Blog{
		Title:   "Hello",
		Excerpt: "A greeting",
		Content: "# Heading\n\nSome *markdown*.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	created := decode[Blog](t, rec)
	if created.ID == "" {
		t.Fatal("created blog should carry an id")
	}
	if _, err := time.Parse("Jan 2, 2006", created.Date); err != nil {
		t.Errorf("date = %q, want Jan 2, 2006 layout", created.Date)
	}

	rec = doJSON(t, a, http.MethodGet, "/api/blogs?id="+created.ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("single read: status = %d", rec.Code)
	}
	single := decode[Blog](t, rec)
	if !strings.Contains(single.ContentHTML, "<h1") {
		t.Errorf("contentHtml = %q, want rendered markdown", single.ContentHTML)
	}

	rec = doJSON(t, a, http.MethodGet, "/api/blogs", "", nil)
	list := decode[[]Blog](t, rec)
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if list[0].ContentHTML != "" {
		t.Error("list responses should not include rendered HTML")
	}
}

func TestBlogUpdateMissingID(t *testing.T) {
	a := newTestApp(t)
	token := adminToken(t, a)

	rec := doJSON(t, a, http.MethodPut, "/api/blogs", token, Blog{Title: "no id"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, a, http.MethodPut, "/api/blogs", token, Blog{ID: "missing", Title: "x", Excerpt: "e", Content: "c"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", rec.Code)
	}
}

func TestProjectUpdateKeepsTechOrder(t *testing.T) {
	a := newTestApp(t)
	token := adminToken(t, a)

	rec := doJSON(t, a, http.MethodPost, "/api/projects", token, Project{
		Title:       "Folio",
		Description: "engine",
		Tech:        []string{"Go", "Echo"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	created := decode[Project](t, rec)

	created.Tech = []string{"SQLite", "Go", "Echo"}
	created.Featured = true
	rec = doJSON(t, a, http.MethodPut, "/api/projects", token, created)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	updated := decode[Project](t, rec)
	if len(updated.Tech) != 3 || updated.Tech[0] != "SQLite" || updated.Tech[1] != "Go" || updated.Tech[2] != "Echo" {
		t.Errorf("tech = %v, want caller order preserved", updated.Tech)
	}
	if !updated.Featured {
		t.Error("featured flag should persist")
	}
}

func TestExperienceTypeValidation(t *testing.T) {
	a := newTestApp(t)
	token := adminToken(t, a)

	rec := doJSON(t, a, http.MethodPost, "/api/experiences", token, Experience{
		Type: "vacation", Title: "Beach", Company: "Self", Period: "2024",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid type: status = %d, want 400", rec.Code)
	}

	for _, typ := range []string{"work", "education"} {
		rec := doJSON(t, a, http.MethodPost, "/api/experiences", token, Experience{
			Type: typ, Title: "T", Company: "C", Period: "2024",
		})
		if rec.Code != http.StatusCreated {
			t.Errorf("type %q: status = %d, want 201", typ, rec.Code)
		}
	}
}

func TestStatValueCoercion(t *testing.T) {
	a := newTestApp(t)
	token := adminToken(t, a)

	rec := doJSON(t, a, http.MethodPost, "/api/stats", token, map[string]any{"label": "Talks", "value": "12", "suffix": "+"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("string value: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	created := decode[Stat](t, rec)
	if created.Value != 12 {
		t.Errorf("value = %d, want string %q coerced to 12", created.Value, "12")
	}

	rec = doJSON(t, a, http.MethodPost, "/api/stats", token, map[string]any{"label": "Years", "value": 7})
	if rec.Code != http.StatusCreated {
		t.Fatalf("number value: status = %d", rec.Code)
	}
	if got := decode[Stat](t, rec); got.Value != 7 {
		t.Errorf("value = %d, want 7", got.Value)
	}

	rec = doJSON(t, a, http.MethodDelete, "/api/stats?id=does-not-exist", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete unknown: status = %d, want 404", rec.Code)
	}
}

func TestSpeakingPublicationsReplaceEndpoint(t *testing.T) {
	a := newTestApp(t)
	token := adminToken(t, a)

	// Missing publications key is a format error, not an empty list.
	rec := doJSON(t, a, http.MethodPost, "/api/speaking-publications", token,
		map[string]any{"speakingEngagements": []any{}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing key: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, a, http.MethodPost, "/api/speaking-publications", token, map[string]any{
		"speakingEngagements": []map[string]any{
			{"title": "Talk A", "event": "Conf", "date": "2024-03-01", "location": "Berlin", "type": "talk"},
		},
		"publications": []map[string]any{
			{"title": "Paper", "journal": "IEEE", "date": "2023-11-01", "authors": "A. Dev", "link": "https://example.com"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("replace: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decode[speakingPublicationsResponse](t, rec)
	if !resp.Success || resp.Message != "Data saved successfully" {
		t.Errorf("resp = %+v, want success envelope", resp)
	}
	if len(resp.Data.SpeakingEngagements) != 1 || resp.Data.SpeakingEngagements[0].ID == 0 {
		t.Errorf("engagements = %+v, want one with assigned id", resp.Data.SpeakingEngagements)
	}
	if len(resp.Data.Publications) != 1 || resp.Data.Publications[0].ID == 0 {
		t.Errorf("publications = %+v, want one with assigned id", resp.Data.Publications)
	}

	rec = doJSON(t, a, http.MethodGet, "/api/speaking-publications", "", nil)
	got := decode[SpeakingPublications](t, rec)
	if len(got.SpeakingEngagements) != 1 || len(got.Publications) != 1 {
		t.Errorf("persisted aggregate = %+v, want both halves stored", got)
	}
}

func TestContactFormSubmission(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, http.MethodPost, "/api/contact-messages", "", ContactMessage{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing message: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, a, http.MethodPost, "/api/contact-messages", "", ContactMessage{
		Name: "Ada", Email: "not-an-email", Subject: "Hi", Message: "Hello",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad email: status = %d, want 400", rec.Code)
	}
	resp := decode[map[string]string](t, rec)
	if resp["error"] != "Invalid email format" {
		t.Errorf("error = %q, want Invalid email format", resp["error"])
	}

	rec = doJSON(t, a, http.MethodPost, "/api/contact-messages", "", ContactMessage{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello",
		Status: StatusReplied, // ignored
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("valid submission: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	created := decode[ContactMessage](t, rec)
	if created.Status != StatusUnread {
		t.Errorf("status = %q, want %q", created.Status, StatusUnread)
	}
	if created.ID == "" {
		t.Error("created message should carry an id")
	}
}

func TestContactFormRateLimit(t *testing.T) {
	a := newTestApp(t)
	a.contactLimiter = NewIPLimiter(2, time.Minute)

	msg := ContactMessage{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	for i := 0; i < 2; i++ {
		rec := doJSON(t, a, http.MethodPost, "/api/contact-messages", "", msg)
		if rec.Code != http.StatusCreated {
			t.Fatalf("submission %d: status = %d", i+1, rec.Code)
		}
	}
	rec := doJSON(t, a, http.MethodPost, "/api/contact-messages", "", msg)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("over limit: status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("429 response should carry a Retry-After header")
	}
}

func TestMessageStatusUpdateAndDelete(t *testing.T) {
	a := newTestApp(t)
	token := adminToken(t, a)

	rec := doJSON(t, a, http.MethodPost, "/api/contact-messages", "", ContactMessage{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello",
	})
	created := decode[ContactMessage](t, rec)

	rec = doJSON(t, a, http.MethodPut, "/api/contact-messages", token,
		map[string]string{"id": created.ID, "status": StatusRead})
	if rec.Code != http.StatusOK {
		t.Fatalf("status update: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	updated := decode[ContactMessage](t, rec)
	if updated.Status != StatusRead {
		t.Errorf("status = %q, want %q", updated.Status, StatusRead)
	}

	rec = doJSON(t, a, http.MethodDelete, "/api/contact-messages?id="+created.ID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", rec.Code)
	}
	rec = doJSON(t, a, http.MethodDelete, "/api/contact-messages?id="+created.ID, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", rec.Code)
	}
}

func TestActivityEndpoints(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, http.MethodGet, "/api/activity", "", nil)
	empty := decode[map[string]any](t, rec)
	if empty["lastActivity"] != nil {
		t.Errorf("lastActivity = %v, want null before any ping", empty["lastActivity"])
	}

	rec = doJSON(t, a, http.MethodPost, "/api/activity", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ping: status = %d", rec.Code)
	}

	rec = doJSON(t, a, http.MethodGet, "/api/activity", "", nil)
	got := decode[map[string]any](t, rec)
	if got["lastActivity"] == nil {
		t.Error("lastActivity should be set after a ping")
	}
}

func TestFeedSitemapRobots(t *testing.T) {
	a := newTestApp(t)
	token := adminToken(t, a)

	rec := doJSON(t, a, http.MethodPost, "/api/blogs", token, Blog{Title: "Post", Excerpt: "e", Content: "c"})
	created := decode[Blog](t, rec)

	rec = doJSON(t, a, http.MethodGet, "/feed.xml", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("feed: status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<rss") || !strings.Contains(rec.Body.String(), "Post") {
		t.Error("feed should be RSS and include the post title")
	}

	rec = doJSON(t, a, http.MethodGet, "/sitemap.xml", "", nil)
	if !strings.Contains(rec.Body.String(), "/blog/"+created.ID) {
		t.Error("sitemap should list the blog URL")
	}

	rec = doJSON(t, a, http.MethodGet, "/robots.txt", "", nil)
	if !strings.Contains(rec.Body.String(), "Disallow: /admin/") {
		t.Error("robots.txt should disallow the admin panel")
	}
}
