package api

import (
	"net/http"

	"padel-club-api/internal/store"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	doc := h.store.Read()
	c.JSON(http.StatusOK, doc.Settings)
}
