package handlers

import (
	"log"
	"net/http"
	"time"

	"marinelle/pkg/models"
	"marinelle/pkg/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Site       models.Site
	Translator services.Translator
	NewLoader  func() *services.ContentLoader
	Now        func() time.Time
}

// loadForRequest runs one content load for the page view behind c. The load
// is cancelled if the client goes away, and the loader is torn down on return.
func (h *Handler) loadForRequest(c *gin.Context) models.LoadState {
	loader := h.NewLoader()
	defer loader.Teardown()
	return loader.Load(c.Request.Context())
}

func (h *Handler) HomePage(c *gin.Context) {
	state := h.loadForRequest(c)
	if c.Request.Context().Err() != nil {
		log.Printf("[WEB]: client left %s before content loaded", c.Request.URL.Path)
		return
	}

	view := services.BuildHomeView(h.Site, state, h.Translator, h.Now())
	c.HTML(http.StatusOK, "home.html", view)
}

// Content returns the load state of a fresh page view as JSON.
func (h *Handler) Content(c *gin.Context) {
	state := h.loadForRequest(c)
	if c.Request.Context().Err() != nil {
		return
	}
	c.JSON(http.StatusOK, state)
}
