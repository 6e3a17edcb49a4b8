package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Nikaum-js/CodeTheKey/internal/auth"
	"github.com/Nikaum-js/CodeTheKey/internal/catalog"
	"github.com/Nikaum-js/CodeTheKey/internal/progress"
)

//go:embed templates/*.gohtml
var tplFS embed.FS

//go:embed all:static
var staticFS embed.FS

// CatalogService is the slice of the catalog the web layer consumes.
type CatalogService interface {
	ListCourses(ctx context.Context) ([]catalog.Course, error)
	GetCourse(ctx context.Context, id string) (catalog.Course, error)
	ListLessons(ctx context.Context, playlistID string) ([]catalog.Lesson, error)
}

type Server struct {
	catalog  CatalogService
	progress *progress.Store
	auth     *auth.Service
}

func NewServer(cat CatalogService, store *progress.Store, authSvc *auth.Service) *Server {
	return &Server{
		catalog:  cat,
		progress: store,
		auth:     authSvc,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	// pages
	r.Get("/", s.handleHomePage)
	r.Get("/cursos", s.handleCoursesPage)
	r.Get("/cursos/{courseID}", s.handleCoursePage)
	r.Get("/cursos/{courseID}/aulas/{lessonID}", s.handleLessonPage)

	// auth (delegated to Google)
	r.Get("/auth/google/login", s.auth.HandleLogin)
	r.Get("/auth/google/callback", s.auth.HandleCallback)
	r.Get("/logout", s.auth.HandleLogout)
	r.Get("/api/session", s.handleSession)

	// JSON API
	r.Get("/api/courses", s.handleListCourses)
	r.Get("/api/courses/{courseID}/lessons", s.handleListLessons)
	r.Get("/api/progress/{courseID}", s.handleGetProgress)
	r.Post("/api/progress/{courseID}/{lessonID}", s.handleMarkWatched)
	r.Delete("/api/progress/{courseID}/{lessonID}", s.handleUnmarkWatched)

	r.Get("/static/*", s.handleStatic)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "codethekey",
	})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.auth.Session(r))
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(r.URL.Path, "/static/")
	b, err := staticFS.ReadFile(path.Join("static", p))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if strings.HasSuffix(p, ".js") {
		w.Header().Set("content-type", "application/javascript")
	}
	if strings.HasSuffix(p, ".css") {
		w.Header().Set("content-type", "text/css")
	}
	if strings.HasSuffix(p, ".svg") {
		w.Header().Set("content-type", "image/svg+xml")
	}
	w.Write(b)
}

// render parses base + page per request, the same way the templates are
// organised everywhere else in this codebase.
func (s *Server) render(w http.ResponseWriter, status int, name string, data map[string]any) {
	tpl, err := template.ParseFS(tplFS, "templates/base.gohtml", "templates/"+name)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tpl.ExecuteTemplate(w, "base", data); err != nil {
		// headers are gone already; nothing better to do than log upstream
		return
	}
}

func (s *Server) pageData(r *http.Request) map[string]any {
	return map[string]any{
		"Session":     s.auth.Session(r),
		"AuthEnabled": s.auth.Enabled(),
		"Path":        r.URL.Path,
	}
}
