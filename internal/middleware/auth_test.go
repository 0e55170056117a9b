package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/model"
	"unilink.id/campusclubs/internal/token"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Update(ctx context.Context, user *model.User) error { return nil }

func newTestRouter(t *testing.T, user *model.User, roles ...string) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := token.NewService("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{}}

	signed := ""
	if user != nil {
		repo.users[user.ID] = user
		var err error
		signed, _, err = tokens.Issue(user.ID, user.Email, user.Role)
		require.NoError(t, err)
	}

	auth := NewAuthMiddleware(tokens, repo)

	router := gin.New()
	group := router.Group("/", auth.RequireAuth())
	if len(roles) > 0 {
		group.Use(auth.RequireRoles(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		current := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": current.ID})
	})

	return router, signed
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "jane@campus.edu", Role: model.RoleStudent}
	router, signed := newTestRouter(t, user)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_TokenInQuery(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "jane@campus.edu", Role: model.RoleStudent}
	router, signed := newTestRouter(t, user)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+signed, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_DeletedUser(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "jane@campus.edu", Role: model.RoleStudent}
	router, _ := newTestRouter(t, user)

	tokens := token.NewService("test-secret", time.Hour)
	ghost, _, err := tokens.Issue(uuid.New(), "ghost@campus.edu", model.RoleStudent)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+ghost)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles_Forbidden(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "jane@campus.edu", Role: model.RoleStudent}
	router, signed := newTestRouter(t, user, model.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoles_Allowed(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "head@campus.edu", Role: model.RoleClubHead}
	router, signed := newTestRouter(t, user, model.RoleClubHead, model.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
