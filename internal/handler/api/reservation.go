package api

import (
	"errors"
	"net/http"

	reqdto "padel-club-api/internal/handler/dto/request"
	resdto "padel-club-api/internal/handler/dto/response"
	"padel-club-api/internal/handler/middleware"
	"padel-club-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Requête invalide",
		})
		return
	}

	created, err := h.reservationUseCase.Create(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date invalide",
			})
		case errors.Is(err, usecase.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Ce créneau est déjà réservé",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Erreur interne du serveur",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(created))
}

func (h *ReservationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	views, err := h.reservationUseCase.List(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant de réservation invalide",
		})
		return
	}

	if err := h.reservationUseCase.Cancel(c.Request.Context(), userID, reservationID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Réservation introuvable",
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
