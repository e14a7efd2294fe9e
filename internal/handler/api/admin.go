package api

import (
	"net/http"

	"padel-club-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	metrics, err := h.adminUseCase.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *AdminHandler) Reservations(c *gin.Context) {
	views, err := h.adminUseCase.Reservations(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *AdminHandler) Transactions(c *gin.Context) {
	transactions, err := h.adminUseCase.Transactions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *AdminHandler) Members(c *gin.Context) {
	members, err := h.adminUseCase.Members(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, members)
}
