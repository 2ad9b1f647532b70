package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/bayzedahmedandthe/bistro-boss-server/helpers"
	"github.com/bayzedahmedandthe/bistro-boss-server/middleware"
	"github.com/bayzedahmedandthe/bistro-boss-server/models"
	"github.com/bayzedahmedandthe/bistro-boss-server/store"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const secret = "gate-test-secret"

func seedUser(t *testing.T, st store.Store, email, role string) {
	t.Helper()
	name := "Someone"
	user := models.User{Name: &name, Email: &email}
	if role != "" {
		user.Role = &role
	}
	if _, err := st.InsertOne(context.Background(), store.CollUsers, user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
}

func signed(t *testing.T, email string) string {
	t.Helper()
	token, err := helpers.NewTokenHelper(secret).SignToken(map[string]interface{}{"email": email})
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

// expiredToken signs a token whose expiry is already in the past.
func expiredToken(t *testing.T, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}
	return token
}

func gateRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	tokens := helpers.NewTokenHelper(secret)
	router := gin.New()
	router.GET("/protected", middleware.Authenticate(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})

	otherSecret, err := helpers.NewTokenHelper("some-other-secret").SignToken(map[string]interface{}{"email": "a@b.c"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"bare token without scheme", signed(t, "a@b.c"), http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"wrong signing secret", "Bearer " + otherSecret, http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken(t, "a@b.c"), http.StatusUnauthorized},
		{"valid token", "Bearer " + signed(t, "a@b.c"), http.StatusOK},
		{"lowercase bearer", "bearer " + signed(t, "a@b.c"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := gateRequest(router, tt.header)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestAuthenticate_ExposesClaims(t *testing.T) {
	tokens := helpers.NewTokenHelper(secret)
	router := gin.New()

	var gotEmail string
	router.GET("/protected", middleware.Authenticate(tokens), func(c *gin.Context) {
		gotEmail = c.GetString("email")
		c.Status(http.StatusOK)
	})

	gateRequest(router, "Bearer "+signed(t, "claims@example.com"))
	if gotEmail != "claims@example.com" {
		t.Errorf("email in context = %q, want claims@example.com", gotEmail)
	}
}

func TestRequireAdmin(t *testing.T) {
	st := store.NewMemoryStore()
	seedUser(t, st, "admin@example.com", models.RoleAdmin)
	seedUser(t, st, "customer@example.com", "")

	tokens := helpers.NewTokenHelper(secret)
	router := gin.New()
	router.GET("/protected",
		middleware.Authenticate(tokens),
		middleware.RequireAdmin(st),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"admin caller", "Bearer " + signed(t, "admin@example.com"), http.StatusOK},
		{"non-admin caller", "Bearer " + signed(t, "customer@example.com"), http.StatusForbidden},
		{"caller with no user document", "Bearer " + signed(t, "nobody@example.com"), http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := gateRequest(router, tt.header)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

// RequireAdmin depends on the identity Authenticate decodes; if it is ever
// wired first, it must deny instead of letting the lookup run on an empty
// email.
func TestRequireAdmin_WithoutAuthenticateDenies(t *testing.T) {
	st := store.NewMemoryStore()
	seedUser(t, st, "admin@example.com", models.RoleAdmin)

	router := gin.New()
	router.GET("/protected", middleware.RequireAdmin(st), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := gateRequest(router, "Bearer "+signed(t, "admin@example.com"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
