/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suparena/crewlookup/lookup"
)

// CrewRoute is the lookup route in gin syntax.
const CrewRoute = "/movies/:movieId/crew/:role"

const requestIDKey = "request_id"

// RequestID reuses an inbound X-Request-ID or generates one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Register mounts the crew route on r.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET(CrewRoute, h.ServeGin)
}

// ServeGin serves the crew route.
func (h *Handler) ServeGin(c *gin.Context) {
	requestID := c.GetString(requestIDKey)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	resp := h.Handle(c.Request.Context(), requestID, lookup.Params{
		MovieID: c.Param("movieId"),
		Role:    c.Param("role"),
		Name:    c.Query("name"),
	})
	c.Data(resp.StatusCode, ContentTypeJSON, resp.Body)
}

// NewRouter builds a gin engine with recovery, request ids and the crew route.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID())
	h.Register(r)
	return r
}
