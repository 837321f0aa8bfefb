/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/suparena/crewlookup/datastore/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGinRouter(t *testing.T) {
	h, _ := newTestHandler(mock.New().Add(director("Lana Wachowski"), director("Lilly Wachowski")))
	router := NewRouter(h)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"all directors", "/movies/603/crew/director", http.StatusOK},
		{"filtered", "/movies/603/crew/director?name=WACHOWSKI", http.StatusOK},
		{"unknown movie", "/movies/999999/crew/director", http.StatusNotFound},
		{"bad movie id", "/movies/abc/crew/director", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("Expected %d, got %d (%s)", tt.status, w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != ContentTypeJSON {
				t.Fatalf("Expected JSON content type, got %q", ct)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Fatal("Expected an X-Request-ID header")
			}
		})
	}
}

func TestGinRouterKeepsRequestID(t *testing.T) {
	h, hook := newTestHandler(mock.New().Add(director("Lana Wachowski")))
	router := NewRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies/603/crew/director", nil)
	req.Header.Set("X-Request-ID", "client-req-9")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "client-req-9" {
		t.Fatalf("Expected echoed request id, got %q", got)
	}
	if id := hook.LastEntry().Data["request_id"]; id != "client-req-9" {
		t.Fatalf("Expected logged request id client-req-9, got %v", id)
	}
}
