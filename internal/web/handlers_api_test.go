package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nikaum-js/CodeTheKey/internal/auth"
	"github.com/Nikaum-js/CodeTheKey/internal/catalog"
	"github.com/Nikaum-js/CodeTheKey/internal/progress"
)

// fakeCatalog implements CatalogService for testing.
type fakeCatalog struct {
	courses []catalog.Course
	lessons map[string][]catalog.Lesson
	err     error
}

func (f *fakeCatalog) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

func (f *fakeCatalog) GetCourse(ctx context.Context, id string) (catalog.Course, error) {
	if f.err != nil {
		return catalog.Course{}, f.err
	}
	id = strings.ToLower(id)
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return catalog.Course{}, catalog.ErrCourseNotFound
}

func (f *fakeCatalog) ListLessons(ctx context.Context, playlistID string) ([]catalog.Lesson, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lessons[playlistID], nil
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		courses: []catalog.Course{
			{
				ID:           "plpython",
				Title:        "Curso de Python",
				Description:  "linguagem moderna",
				Instructor:   catalog.Instructor{Name: "Curso em Vídeo"},
				PlaylistID:   "PLpython",
				Category:     catalog.CategoryFundamentos,
				TotalLessons: 3,
			},
			{
				ID:           "pldocker",
				Title:        "Docker completo",
				Description:  "containers",
				Instructor:   catalog.Instructor{Name: "Hora de Codar"},
				PlaylistID:   "PLdocker",
				Category:     catalog.CategoryDevOps,
				TotalLessons: 2,
			},
		},
		lessons: map[string][]catalog.Lesson{
			"PLpython": {
				{ID: "l1", Title: "Aula 1"},
				{ID: "l2", Title: "Aula 2"},
				{ID: "l3", Title: "Aula 3"},
			},
			"PLdocker": {
				{ID: "d1", Title: "Docker 1"},
				{ID: "d2", Title: "Docker 2"},
			},
		},
	}
}

func newTestServer(cat CatalogService) *Server {
	store := progress.NewStore(context.Background(), progress.NewMemoryStorage())
	authSvc := auth.NewService(auth.Config{}, []byte("test-secret"))
	return NewServer(cat, store, authSvc)
}

func doRequest(s *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestHandleListCourses(t *testing.T) {
	srv := newTestServer(testCatalog())

	rr := doRequest(srv, "GET", "/api/courses")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body struct {
		Items []catalog.Course `json:"items"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body.Items) != 2 {
		t.Errorf("expected 2 courses, got %d", len(body.Items))
	}
}

func TestHandleListCourses_Filters(t *testing.T) {
	srv := newTestServer(testCatalog())

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantLen  int
	}{
		{"by category", "/api/courses?categoria=devops", http.StatusOK, 1},
		{"by query", "/api/courses?q=python", http.StatusOK, 1},
		{"no match", "/api/courses?q=rust", http.StatusOK, 0},
		{"unknown category", "/api/courses?categoria=gaming", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(srv, "GET", tt.target)
			if rr.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rr.Code)
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			var body struct {
				Items []catalog.Course `json:"items"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if len(body.Items) != tt.wantLen {
				t.Errorf("expected %d courses, got %d", tt.wantLen, len(body.Items))
			}
		})
	}
}

func TestHandleListCourses_UpstreamFailure(t *testing.T) {
	srv := newTestServer(&fakeCatalog{err: &catalog.FetchError{Endpoint: "playlists", Status: 500}})

	rr := doRequest(srv, "GET", "/api/courses")
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestHandleListLessons(t *testing.T) {
	srv := newTestServer(testCatalog())

	rr := doRequest(srv, "GET", "/api/courses/plpython/lessons")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body struct {
		CourseID string           `json:"courseId"`
		Items    []catalog.Lesson `json:"items"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.CourseID != "plpython" {
		t.Errorf("expected courseId plpython, got %s", body.CourseID)
	}
	if len(body.Items) != 3 {
		t.Errorf("expected 3 lessons, got %d", len(body.Items))
	}
}

func TestHandleListLessons_UnknownCourse(t *testing.T) {
	srv := newTestServer(testCatalog())

	rr := doRequest(srv, "GET", "/api/courses/plnope/lessons")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestProgressFlow(t *testing.T) {
	srv := newTestServer(testCatalog())

	decode := func(rr *httptest.ResponseRecorder) progressResponse {
		var resp progressResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		return resp
	}

	rr := doRequest(srv, "POST", "/api/progress/plpython/l1?total=3")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	resp := decode(rr)
	if resp.WatchedCount != 1 {
		t.Errorf("expected watchedCount 1, got %d", resp.WatchedCount)
	}
	if resp.Percentage == nil || *resp.Percentage != 33 {
		t.Errorf("expected percentage 33, got %v", resp.Percentage)
	}

	rr = doRequest(srv, "POST", "/api/progress/plpython/l2?total=3")
	resp = decode(rr)
	if resp.WatchedCount != 2 || resp.Percentage == nil || *resp.Percentage != 67 {
		t.Errorf("expected 2 watched at 67%%, got %+v", resp)
	}

	rr = doRequest(srv, "GET", "/api/progress/plpython?total=3")
	resp = decode(rr)
	if len(resp.Lessons) != 2 || resp.Lessons[0] != "l1" {
		t.Errorf("expected watched lessons [l1 l2], got %v", resp.Lessons)
	}

	rr = doRequest(srv, "DELETE", "/api/progress/plpython/l1?total=3")
	resp = decode(rr)
	if resp.WatchedCount != 1 {
		t.Errorf("expected watchedCount 1 after unmark, got %d", resp.WatchedCount)
	}

	// progress of an untouched course is empty, not an error
	rr = doRequest(srv, "GET", "/api/progress/pldocker")
	resp = decode(rr)
	if resp.WatchedCount != 0 || resp.Percentage != nil {
		t.Errorf("expected empty progress, got %+v", resp)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(testCatalog())

	rr := doRequest(srv, "GET", "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "codethekey") {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
}

func TestHandleSession_SignedOut(t *testing.T) {
	srv := newTestServer(testCatalog())

	rr := doRequest(srv, "GET", "/api/session")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var sess auth.Session
	if err := json.Unmarshal(rr.Body.Bytes(), &sess); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if sess.SignedIn {
		t.Error("expected signed-out session")
	}
}
