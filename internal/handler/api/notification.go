package api

import (
	"errors"
	"net/http"

	"padel-club-api/internal/handler/middleware"
	"padel-club-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	notifications, err := h.notificationUseCase.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant de notification invalide",
		})
		return
	}

	if err := h.notificationUseCase.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotificationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Notification introuvable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Erreur interne du serveur",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
