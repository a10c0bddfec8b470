// Package httpapi exposes the generation service over HTTP. The
// handler is a thin adapter: request binding, service call, error
// mapping. All semantics live in the orchestrator.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heroforge/hero-api/internal/engine"
	"github.com/heroforge/hero-api/internal/errors"
	"github.com/heroforge/hero-api/internal/orchestrators/generation"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	Service generation.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Service == nil {
		return errors.InvalidArgument("service cannot be nil")
	}
	return nil
}

// Handler serves the character generation HTTP API
type Handler struct {
	service generation.Service
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{service: cfg.Service}, nil
}

// RegisterRoutes attaches the API routes to the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/v1")
	{
		v1.POST("/characters/generate", h.generateCharacter)
		v1.GET("/classes/:class/choices", h.listEquipmentChoices)
		v1.POST("/characters", h.finalizeCharacter)
		v1.GET("/characters/:key", h.getCharacter)
	}
}

type generateRequest struct {
	IdentityKey string `json:"identity_key" binding:"required"`
}

type finalizeRequest struct {
	IdentityKey string                      `json:"identity_key" binding:"required"`
	Selections  map[string]engine.Selection `json:"selections"`
}

func (h *Handler) generateCharacter(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	out, err := h.service.GenerateCharacter(c.Request.Context(), &generation.GenerateCharacterInput{
		IdentityKey: req.IdentityKey,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"character": out.Character,
	})
}

func (h *Handler) listEquipmentChoices(c *gin.Context) {
	out, err := h.service.ListEquipmentChoices(c.Request.Context(), &generation.ListEquipmentChoicesInput{
		Class: c.Param("class"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"class":   out.Class,
		"choices": out.Groups,
	})
}

func (h *Handler) finalizeCharacter(c *gin.Context) {
	var req finalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	out, err := h.service.FinalizeCharacter(c.Request.Context(), &generation.FinalizeCharacterInput{
		IdentityKey: req.IdentityKey,
		Selections:  req.Selections,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"save_id":   out.SaveID,
		"character": out.Character,
		"inventory": out.Inventory,
		"overflow":  out.Overflow,
		"weight":    out.Weight,
	})
}

func (h *Handler) getCharacter(c *gin.Context) {
	out, err := h.service.GetCharacter(c.Request.Context(), &generation.GetCharacterInput{
		IdentityKey: c.Param("key"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"save_id":   out.SaveID,
		"character": out.Character,
		"inventory": out.Inventory,
		"weight":    out.Weight,
	})
}

// writeError maps a structured error to an HTTP response
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(), "code", string(code), "error", err)
	}

	c.JSON(status, gin.H{
		"code":    string(code),
		"message": errors.GetMessage(err),
	})
}
