package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nikaum-js/CodeTheKey/internal/catalog"
)

type courseView struct {
	catalog.Course
	WatchedCount int
	Percentage   int
}

type lessonView struct {
	catalog.Lesson
	Number  int
	Watched bool
}

func (s *Server) handleHomePage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "home.gohtml", s.pageData(r))
}

func (s *Server) handleCoursesPage(w http.ResponseWriter, r *http.Request) {
	category := catalog.Category(r.URL.Query().Get("categoria"))
	if !catalog.ValidCategory(category) {
		category = ""
	}
	query := r.URL.Query().Get("q")

	courses, err := s.catalog.ListCourses(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	courses = catalog.Filter(courses, category, query)

	views := make([]courseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, courseView{
			Course:       c,
			WatchedCount: s.progress.WatchedCount(c.ID),
			Percentage:   s.progress.WatchedPercentage(c.ID, c.TotalLessons),
		})
	}

	data := s.pageData(r)
	data["Courses"] = views
	data["Categories"] = catalog.Categories
	data["Selected"] = category
	data["Query"] = query
	s.render(w, http.StatusOK, "courses.gohtml", data)
}

func (s *Server) handleCoursePage(w http.ResponseWriter, r *http.Request) {
	course, err := s.catalog.GetCourse(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	lessons, err := s.catalog.ListLessons(r.Context(), course.PlaylistID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	views := make([]lessonView, 0, len(lessons))
	for i, l := range lessons {
		views = append(views, lessonView{
			Lesson:  l,
			Number:  i + 1,
			Watched: s.progress.IsWatched(course.ID, l.ID),
		})
	}

	data := s.pageData(r)
	data["Course"] = course
	data["Lessons"] = views
	data["WatchedCount"] = s.progress.WatchedCount(course.ID)
	data["Percentage"] = s.progress.WatchedPercentage(course.ID, len(lessons))
	s.render(w, http.StatusOK, "course.gohtml", data)
}

func (s *Server) handleLessonPage(w http.ResponseWriter, r *http.Request) {
	lessonID := chi.URLParam(r, "lessonID")

	course, err := s.catalog.GetCourse(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	lessons, err := s.catalog.ListLessons(r.Context(), course.PlaylistID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	current := -1
	for i, l := range lessons {
		if l.ID == lessonID {
			current = i
			break
		}
	}
	if current < 0 {
		s.renderError(w, r, catalog.ErrCourseNotFound)
		return
	}

	var prev, next *catalog.Lesson
	if current > 0 {
		prev = &lessons[current-1]
	}
	if current < len(lessons)-1 {
		next = &lessons[current+1]
	}

	sidebar := make([]lessonView, 0, len(lessons))
	for i, l := range lessons {
		sidebar = append(sidebar, lessonView{
			Lesson:  l,
			Number:  i + 1,
			Watched: s.progress.IsWatched(course.ID, l.ID),
		})
	}

	data := s.pageData(r)
	data["Course"] = course
	data["Lesson"] = lessons[current]
	data["Number"] = current + 1
	data["Total"] = len(lessons)
	data["EmbedURL"] = catalog.EmbedURL(lessons[current].ID)
	data["Watched"] = s.progress.IsWatched(course.ID, lessonID)
	data["Prev"] = prev
	data["Next"] = next
	data["Sidebar"] = sidebar
	s.render(w, http.StatusOK, "lesson.gohtml", data)
}

// renderError shows a visible failure state: the page level owns the
// distinction between "not found" and "upstream broke".
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	data := s.pageData(r)
	var fe *catalog.FetchError
	switch {
	case errors.Is(err, catalog.ErrCourseNotFound):
		data["Title"] = "Conteúdo não encontrado"
		data["Message"] = "O curso ou aula que você procura não existe ou não está mais disponível."
		s.render(w, http.StatusNotFound, "error.gohtml", data)
	case errors.As(err, &fe):
		data["Title"] = "Erro ao carregar conteúdo"
		data["Message"] = "Não foi possível buscar os dados no YouTube. Tente novamente em instantes."
		s.render(w, http.StatusBadGateway, "error.gohtml", data)
	default:
		data["Title"] = "Erro interno"
		data["Message"] = "Algo deu errado. Tente novamente."
		s.render(w, http.StatusInternalServerError, "error.gohtml", data)
	}
}
