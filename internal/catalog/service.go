package catalog

import (
	"context"
	"errors"
	"strings"
)

// ErrCourseNotFound is returned when a course id is absent from the freshly
// fetched catalog. Distinct from a FetchError: the fetch itself worked.
var ErrCourseNotFound = errors.New("course not found")

// PlaylistAPI is the slice of the YouTube client the service needs.
type PlaylistAPI interface {
	FetchPlaylists(ctx context.Context, ids []string) ([]PlaylistInfo, error)
	FetchPlaylistItems(ctx context.Context, playlistID string) ([]Lesson, error)
}

// Service merges the static curation table with live playlist data. It holds
// no state beyond the table; every call hits the API fresh.
type Service struct {
	api     PlaylistAPI
	curated []CuratedCourse
}

func NewService(api PlaylistAPI) *Service {
	return &Service{
		api:     api,
		curated: curatedPlaylists,
	}
}

// ListCourses resolves the whole curation table in one batched request.
// Curated playlists the platform no longer reports (deleted, made private)
// are silently dropped: a dead playlist must not break the catalog.
func (s *Service) ListCourses(ctx context.Context) ([]Course, error) {
	ids := make([]string, len(s.curated))
	for i, cur := range s.curated {
		ids[i] = cur.ID
	}

	infos, err := s.api.FetchPlaylists(ctx, ids)
	if err != nil {
		return nil, err
	}

	courses := make([]Course, 0, len(infos))
	for _, info := range infos {
		// The join is case-sensitive on the original-case id.
		cur, ok := s.curatedFor(info.ID)

		description := defaultDescription
		category := CategoryFundamentos
		if ok {
			if cur.Description != "" {
				description = cur.Description
			}
			if cur.Category != "" {
				category = cur.Category
			}
		}

		courses = append(courses, Course{
			ID:          strings.ToLower(info.ID),
			Title:       info.Title,
			Description: description,
			Instructor: Instructor{
				Name:        info.ChannelTitle,
				Description: "Professor do curso " + info.Title,
			},
			PlaylistID:   info.ID,
			Thumbnail:    info.Thumbnails.High.URL,
			Category:     category,
			TotalLessons: info.ItemCount,
		})
	}
	return courses, nil
}

// GetCourse finds one course by its lowercase catalog id.
func (s *Service) GetCourse(ctx context.Context, id string) (Course, error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return Course{}, err
	}
	id = strings.ToLower(id)
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return Course{}, ErrCourseNotFound
}

// ListLessons fetches the ordered lesson list of one playlist. Order is
// page-concatenation order as returned by the API.
func (s *Service) ListLessons(ctx context.Context, playlistID string) ([]Lesson, error) {
	return s.api.FetchPlaylistItems(ctx, playlistID)
}

func (s *Service) curatedFor(id string) (CuratedCourse, bool) {
	for _, cur := range s.curated {
		if cur.ID == id {
			return cur, true
		}
	}
	return CuratedCourse{}, false
}

// Filter narrows a course list by category and by a case-insensitive
// substring match on title and description. Empty arguments match all.
func Filter(courses []Course, category Category, query string) []Course {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if category != "" && c.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Title), query) &&
			!strings.Contains(strings.ToLower(c.Description), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}
