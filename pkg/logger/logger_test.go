package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGinLogger_AssignsRequestID(t *testing.T) {
	router := gin.New()
	router.Use(GinLogger())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	if id := w.Header().Get("X-Request-ID"); id == "" {
		t.Error("expected a generated X-Request-ID response header")
	}
}

func TestGinLogger_HonorsInboundRequestID(t *testing.T) {
	router := gin.New()
	router.Use(GinLogger())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	router.ServeHTTP(w, req)

	if id := w.Header().Get("X-Request-ID"); id != "client-supplied-id" {
		t.Errorf("X-Request-ID = %q, expected the inbound id to be echoed", id)
	}
}
