package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.Use(ErrorMiddleware())
	return r
}

func TestErrorMiddlewareWritesJSONError(t *testing.T) {
	r := newTestRouter()
	r.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("database exploded"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "database exploded") {
		t.Fatalf("expected error message in body, got %s", w.Body.String())
	}
}

func TestErrorMiddlewareHonorsMetaStatus(t *testing.T) {
	r := newTestRouter()
	r.GET("/teapot", func(c *gin.Context) {
		c.Error(errors.New("short and stout")).SetMeta(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	if w.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", w.Code)
	}
}

func TestErrorMiddlewareKeepsCommittedResponse(t *testing.T) {
	r := newTestRouter()
	r.POST("/orders", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"order": 1})
		c.Error(errors.New("cart mirror write failed"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders", nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected the handler's 201 to stand, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "cart mirror") {
		t.Fatalf("error body appended to a committed response: %s", w.Body.String())
	}
}

func TestRecoveryMiddlewareTurnsPanicInto500(t *testing.T) {
	r := newTestRouter()
	r.GET("/panic", func(c *gin.Context) {
		panic("nil map write")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", w.Code)
	}
}
