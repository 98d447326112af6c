package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danielfrrokaj/datarifish-menu/internal/auth"
	"github.com/danielfrrokaj/datarifish-menu/internal/catalog"
	"github.com/danielfrrokaj/datarifish-menu/internal/category"
	"github.com/danielfrrokaj/datarifish-menu/internal/icon"
	"github.com/danielfrrokaj/datarifish-menu/internal/menu"
	"github.com/danielfrrokaj/datarifish-menu/internal/rating"
)

type memoryIconRepo struct {
	icons []*icon.Icon
}

func (r *memoryIconRepo) List(ctx context.Context) ([]*icon.Icon, error) {
	return r.icons, nil
}

func (r *memoryIconRepo) Insert(ctx context.Context, ic *icon.Icon) error {
	if ic.ID == "" {
		ic.ID = uuid.New().String()
	}
	r.icons = append(r.icons, ic)
	return nil
}

func (r *memoryIconRepo) Delete(ctx context.Context, id string) error {
	for i, ic := range r.icons {
		if ic.ID == id {
			r.icons = append(r.icons[:i], r.icons[i+1:]...)
			return nil
		}
	}
	return icon.ErrNotFound
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	gin.SetMode(gin.TestMode)

	sessions := auth.NewSessionRegistry()
	authService := auth.NewService(auth.NewInMemoryUserRepository(), sessions)

	catRepo := category.NewInMemoryRepository()
	itemRepo := menu.NewInMemoryRepository()
	catService := category.NewService(catRepo)
	itemService := menu.NewService(itemRepo, catRepo)

	return New(Deps{
		Sessions:   sessions,
		Auth:       auth.NewHandler(authService),
		Catalog:    catalog.NewHandler(catalog.NewService(catRepo, itemRepo)),
		Categories: category.NewHandler(catService),
		Items:      menu.NewHandler(itemService),
		Ratings:    rating.NewHandler(rating.NewService(rating.NewInMemoryRepository())),
		Icons:      icon.NewHandler(&memoryIconRepo{}),
	})
}

func postJSON(r *gin.Engine, path, token string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	r := testRouter(t)

	w := postJSON(r, "/admin/categories", "", gin.H{
		"translations": gin.H{"en": "Starters"},
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}
}

func TestLoginCreateAndBrowseFlow(t *testing.T) {
	r := testRouter(t)

	if w := postJSON(r, "/auth/register", "", gin.H{
		"email":    "admin@example.com",
		"password": "Password@123",
	}); w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	w := postJSON(r, "/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "Password@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil || login.Token == "" {
		t.Fatalf("expected token in login response, got %s", w.Body.String())
	}

	w = postJSON(r, "/admin/categories", login.Token, gin.H{
		"translations": gin.H{"en": "Seafood", "sq": "Fruta Deti"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)

	w = postJSON(r, "/admin/items", login.Token, gin.H{
		"category_id": created.ID,
		"price":       950,
		"translations": gin.H{
			"en": gin.H{"name": "Fish Soup"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create item: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	// Public menu, Albanian requested via the alias the old site used.
	req := httptest.NewRequest(http.MethodGet, "/menu/categories?lang=al", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("public categories: expected 200, got %d", rec.Code)
	}
	var cats []struct {
		Name string `json:"name"`
	}
	json.Unmarshal(rec.Body.Bytes(), &cats)
	if len(cats) != 1 || cats[0].Name != "Fruta Deti" {
		t.Fatalf("expected Albanian category name, got %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/menu/categories/"+created.ID+"/items?lang=it&search=fish", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("public items: expected 200, got %d", rec.Code)
	}
	var items []struct {
		Name string `json:"name"`
	}
	json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 1 || items[0].Name != "Fish Soup" {
		t.Fatalf("expected fallback-resolved item match, got %s", rec.Body.String())
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r := testRouter(t)

	postJSON(r, "/auth/register", "", gin.H{"email": "admin@example.com", "password": "Password@123"})
	w := postJSON(r, "/auth/login", "", gin.H{"email": "admin@example.com", "password": "Password@123"})
	var login struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &login)

	if w := postJSON(r, "/auth/logout", login.Token, nil); w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}

	w = postJSON(r, "/admin/categories", login.Token, gin.H{
		"translations": gin.H{"en": "Starters"},
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestRatingSubmission(t *testing.T) {
	r := testRouter(t)

	if w := postJSON(r, "/ratings", "", gin.H{
		"waiter_rating": 5,
		"food_rating":   4,
		"comments":      "fresh fish",
	}); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	if w := postJSON(r, "/ratings", "", gin.H{
		"waiter_rating": 6,
		"food_rating":   4,
	}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range rating, got %d", w.Code)
	}
}
