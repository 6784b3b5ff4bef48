package main

import (
	"bytes"
	"clasi/internal/apperrors"
	"clasi/internal/catalog"
	"clasi/internal/model"
	"clasi/internal/review"
	"clasi/internal/view"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/newrelic/go-agent/v3/newrelic"
	log "github.com/sirupsen/logrus"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"prereqs": func(p []string) string {
		if len(p) == 0 {
			return "None"
		}
		return strings.Join(p, ", ")
	},
}).ParseFS(templateFS, "templates/*.html"))

type Server struct {
	port          int
	courses       catalog.Catalog
	reviews       review.Store
	selector      catalog.Selector
	strictCourses bool
	nr            *newrelic.Application
	httpServer    *http.Server
}

type ServerOption func(*Server)

func WithNewRelic(app *newrelic.Application) ServerOption {
	return func(s *Server) { s.nr = app }
}

// WithStrictCourses makes detail pages for unknown course ids answer 404.
func WithStrictCourses(strict bool) ServerOption {
	return func(s *Server) { s.strictCourses = strict }
}

func NewServer(port int, courses catalog.Catalog, reviews review.Store, selector catalog.Selector, opts ...ServerOption) *Server {
	s := &Server{
		port:     port,
		courses:  courses,
		reviews:  reviews,
		selector: selector,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Server) routes() http.Handler {
	router := mux.NewRouter()
	router.UseEncodedPath()

	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, "/", s.catalogPage)).Methods(http.MethodGet)
	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, "/course/{id}", s.detailPage)).Methods(http.MethodGet)
	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, "/course/{id}/reviews", s.submitReviewForm)).Methods(http.MethodPost)

	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, "/api/courses", s.listCourses)).Methods(http.MethodGet)
	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, "/api/courses/{id}", s.getCourse)).Methods(http.MethodGet)
	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, "/api/courses/{id}/reviews", s.listReviews)).Methods(http.MethodGet)
	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, "/api/courses/{id}/reviews", s.submitReview)).Methods(http.MethodPost)
	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, "/api/filters", s.listFilters)).Methods(http.MethodGet)
	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, "/api/departments", s.listDepartments)).Methods(http.MethodGet)
	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, "/api/professors", s.suggestProfessors)).Methods(http.MethodGet)

	router.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)

	return s.recoverPanics(s.logRequests(router))
}

func (s *Server) Run() error {
	address := "0.0.0.0"

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%v:%v", address, s.port),
		Handler: s.routes(),
	}

	log.Printf("listening requests at %v:%v", address, s.port)

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) catalogPage(w http.ResponseWriter, r *http.Request) {
	state := view.DecodeCatalogState(r.URL.Query(), s.selector.Categories)

	courses, err := s.courses.ListCourses(r.Context())
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	s.render(w, "catalog", view.BuildCatalogPage(state, courses, s.selector))
}

func (s *Server) detailPage(w http.ResponseWriter, r *http.Request) {
	id := courseID(r)
	newrelic.FromContext(r.Context()).AddAttribute("course_id", id)

	course, known, err := s.resolveCourse(r.Context(), id)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	reviews, err := s.reviews.ListReviews(r.Context(), id)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	state := view.DecodeDetailState(id, r.URL.Query())
	page := view.BuildDetailPage(state, course, known, reviews)
	page.Submitted = r.URL.Query().Get("submitted") != ""

	s.render(w, "detail", page)
}

func (s *Server) submitReviewForm(w http.ResponseWriter, r *http.Request) {
	id := courseID(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, _, err := s.resolveCourse(r.Context(), id); err != nil {
		s.pageError(w, r, err)
		return
	}

	state := view.DecodeDetailState(id, r.PostForm)
	if _, err := state.SubmitReview(r.Context(), s.reviews); err != nil {
		s.pageError(w, r, err)
		return
	}

	http.Redirect(w, r, view.DetailPath(id)+"?"+url.Values{"submitted": {"1"}}.Encode(), http.StatusSeeOther)
}

func (s *Server) listCourses(w http.ResponseWriter, r *http.Request) {
	state := view.DecodeCatalogState(r.URL.Query(), s.selector.Categories)

	courses, err := s.courses.ListCourses(r.Context())
	if err != nil {
		s.jsonError(w, err)
		return
	}

	query := r.URL.Query()
	courses = catalog.ByDepartment(courses, query.Get("department"))
	courses = catalog.ByInstructor(courses, query.Get("professor"))

	visible := s.selector.Select(courses, state.Selected, state.SearchQuery, state.Sort)
	s.writeJSON(w, http.StatusOK, CourseListResponse{
		Count:   len(visible),
		Filters: state.Selected.Labels(),
		Courses: visible,
	})
}

func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(courseID(r))
	if err != nil {
		s.jsonError(w, fmt.Errorf("course id %q: %w", courseID(r), apperrors.ErrCourseNotFound))
		return
	}

	course, err := s.courses.GetCourse(r.Context(), id)
	if err != nil {
		s.jsonError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, course)
}

func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.reviews.ListReviews(r.Context(), courseID(r))
	if err != nil {
		s.jsonError(w, err)
		return
	}

	if reviews == nil {
		reviews = []model.Review{}
	}
	s.writeJSON(w, http.StatusOK, reviews)
}

func (s *Server) submitReview(w http.ResponseWriter, r *http.Request) {
	id := courseID(r)

	var request SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if _, _, err := s.resolveCourse(r.Context(), id); err != nil {
		s.jsonError(w, err)
		return
	}

	state := view.NewDetailState(id)
	if request.Rating != 0 {
		if err := state.SetRating(request.Rating); err != nil {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}
	state.SetReviewText(request.Text)

	sub, err := state.SubmitReview(r.Context(), s.reviews)
	if err != nil {
		s.jsonError(w, err)
		return
	}

	s.writeJSON(w, http.StatusAccepted, SubmitReviewResponse{ID: sub.ID, Status: "received"})
}

func (s *Server) listFilters(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.selector.Categories)
}

func (s *Server) listDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := s.courses.ListDepartments(r.Context())
	if err != nil {
		s.jsonError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, departments)
}

func (s *Server) suggestProfessors(w http.ResponseWriter, r *http.Request) {
	names, err := s.courses.SuggestInstructors(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		s.jsonError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, names)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// courseID reads the {id} path segment. Routes match on the escaped path
// so that ids may contain a slash.
func courseID(r *http.Request) string {
	raw := mux.Vars(r)["id"]
	id, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return id
}

// resolveCourse finds the course behind a path id. Unless strict, ids the
// catalog does not know resolve to a placeholder course.
func (s *Server) resolveCourse(ctx context.Context, id string) (model.Course, bool, error) {
	n, convErr := strconv.Atoi(id)
	if convErr == nil {
		course, err := s.courses.GetCourse(ctx, n)
		if err == nil {
			return course, true, nil
		}
		if !errors.Is(err, apperrors.ErrCourseNotFound) {
			return model.Course{}, false, fmt.Errorf("resolving course %s: %w", id, err)
		}
	}

	if s.strictCourses {
		return model.Course{}, false, fmt.Errorf("course %q: %w", id, apperrors.ErrCourseNotFound)
	}

	return catalog.Placeholder(n), false, nil
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.Errorf("rendering %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	if err != nil {
		log.Errorf("writing %s: %v", name, err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Errorf("encoding response: %v", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrSubmissionFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) pageError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithField("path", r.URL.Path).Errorf("serving page: %v", err)
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func (s *Server) jsonError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Errorf("serving api: %v", err)
		msg = http.StatusText(status)
	}
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}
