package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pjeseza-web/domain/dto"
	"pjeseza-web/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAdminRouter(dashboard *stubDashboardUsecase, session *model.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAdminHandler(dashboard)

	router := gin.New()
	router.Use(withTestSession(session))
	router.GET("/api/admin/stats", handler.Stats)
	router.GET("/api/admin/users", handler.Users)
	return router
}

func TestAdminHandler(t *testing.T) {
	dashboard := &stubDashboardUsecase{
		stats: &dto.AdminStats{TotalUsers: 7, TotalClips: 20},
		users: []model.User{{ID: "u1", Username: "alex"}},
	}

	t.Run("admin_gets_stats", func(t *testing.T) {
		session := &model.Session{Token: "t", User: &model.User{Role: "admin"}}
		router := newAdminRouter(dashboard, session)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_users":7`)
	})

	t.Run("non_admin_is_forbidden", func(t *testing.T) {
		session := &model.Session{Token: "t", User: &model.User{Role: "user"}}
		router := newAdminRouter(dashboard, session)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
