package app

import (
	"academy_backend/internal/config"
	"academy_backend/internal/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// Routes are registered against empty controllers; the auth middleware
// answers before any handler runs, so a 401 proves the path exists while a
// 404 proves it does not.
func newRouteTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "route-test-secret"

	a := &App{Config: cfg}
	router := gin.New()
	a.registerRoutes(router, &controllers{
		auth:       &controller.AuthController{},
		user:       &controller.UserController{},
		course:     &controller.CourseController{},
		exam:       &controller.ExamController{},
		submission: &controller.SubmissionController{},
		enrollment: &controller.EnrollmentController{},
		comment:    &controller.CommentController{},
		video:      &controller.VideoController{},
		content:    &controller.ContentController{},
		health:     &controller.HealthController{},
	}, &repositories{}, cfg)
	return router
}

func TestSubmitAndSecureURLPaths(t *testing.T) {
	router := newRouteTestEngine(t)

	cases := []struct {
		path string
		want int
	}{
		{"/api/exams/submit", http.StatusUnauthorized},
		{"/api/submit-exam", http.StatusUnauthorized},
		{"/api/videos/secure-url", http.StatusUnauthorized},
		{"/api/video/getMinioSecureUrl", http.StatusUnauthorized},
		{"/api/enroll", http.StatusUnauthorized},
		{"/api/enroll/status", http.StatusUnauthorized},
		{"/api/no-such-route", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, tc.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("POST %s status = %d, want %d", tc.path, w.Code, tc.want)
		}
	}
}
