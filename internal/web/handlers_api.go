package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Nikaum-js/CodeTheKey/internal/catalog"
)

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	category := catalog.Category(r.URL.Query().Get("categoria"))
	if category != "" && !catalog.ValidCategory(category) {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}

	courses, err := s.catalog.ListCourses(r.Context())
	if err != nil {
		apiError(w, err)
		return
	}

	courses = catalog.Filter(courses, category, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{
		"items": courses,
	})
}

func (s *Server) handleListLessons(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	course, err := s.catalog.GetCourse(r.Context(), courseID)
	if err != nil {
		apiError(w, err)
		return
	}

	lessons, err := s.catalog.ListLessons(r.Context(), course.PlaylistID)
	if err != nil {
		apiError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"courseId": course.ID,
		"items":    lessons,
	})
}

type progressResponse struct {
	CourseID     string   `json:"courseId"`
	WatchedCount int      `json:"watchedCount"`
	Percentage   *int     `json:"percentage,omitempty"`
	Lessons      []string `json:"lessons"`
}

func (s *Server) progressFor(r *http.Request, courseID string) progressResponse {
	resp := progressResponse{
		CourseID:     courseID,
		WatchedCount: s.progress.WatchedCount(courseID),
		Lessons:      s.progress.WatchedLessons(courseID),
	}
	// percentage is only meaningful when the caller knows the lesson total
	if totalStr := r.URL.Query().Get("total"); totalStr != "" {
		if total, err := strconv.Atoi(totalStr); err == nil && total >= 0 {
			pct := s.progress.WatchedPercentage(courseID, total)
			resp.Percentage = &pct
		}
	}
	return resp
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	courseID := strings.ToLower(chi.URLParam(r, "courseID"))
	writeJSON(w, http.StatusOK, s.progressFor(r, courseID))
}

func (s *Server) handleMarkWatched(w http.ResponseWriter, r *http.Request) {
	courseID := strings.ToLower(chi.URLParam(r, "courseID"))
	lessonID := chi.URLParam(r, "lessonID")

	s.progress.MarkWatched(r.Context(), courseID, lessonID)
	writeJSON(w, http.StatusOK, s.progressFor(r, courseID))
}

func (s *Server) handleUnmarkWatched(w http.ResponseWriter, r *http.Request) {
	courseID := strings.ToLower(chi.URLParam(r, "courseID"))
	lessonID := chi.URLParam(r, "lessonID")

	s.progress.UnmarkWatched(r.Context(), courseID, lessonID)
	writeJSON(w, http.StatusOK, s.progressFor(r, courseID))
}
