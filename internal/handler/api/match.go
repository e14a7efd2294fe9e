package api

import (
	"errors"
	"net/http"

	reqdto "padel-club-api/internal/handler/dto/request"
	"padel-club-api/internal/handler/middleware"
	"padel-club-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matchUseCase usecase.MatchUseCase
}

func NewMatchHandler(matchUseCase usecase.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

func (h *MatchHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	var req reqdto.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Requête invalide",
		})
		return
	}

	created, err := h.matchUseCase.Create(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidMatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Informations du match incomplètes",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Erreur interne du serveur",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *MatchHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	views, err := h.matchUseCase.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *MatchHandler) Join(c *gin.Context) {
	userID, matchID, ok := h.callerAndMatch(c)
	if !ok {
		return
	}

	alreadyJoined, err := h.matchUseCase.Join(c.Request.Context(), userID, matchID)
	if err != nil {
		h.abortWithMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"joined":        true,
		"alreadyJoined": alreadyJoined,
	})
}

func (h *MatchHandler) Leave(c *gin.Context) {
	userID, matchID, ok := h.callerAndMatch(c)
	if !ok {
		return
	}

	if err := h.matchUseCase.Leave(c.Request.Context(), userID, matchID); err != nil {
		h.abortWithMatchError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MatchHandler) ListMessages(c *gin.Context) {
	userID, matchID, ok := h.callerAndMatch(c)
	if !ok {
		return
	}

	messages, err := h.matchUseCase.ListMessages(c.Request.Context(), userID, matchID)
	if err != nil {
		h.abortWithMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *MatchHandler) PostMessage(c *gin.Context) {
	userID, matchID, ok := h.callerAndMatch(c)
	if !ok {
		return
	}

	var req reqdto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Le message est vide",
		})
		return
	}

	message, err := h.matchUseCase.PostMessage(c.Request.Context(), userID, matchID, req.Content)
	if err != nil {
		h.abortWithMatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MatchHandler) PublishResult(c *gin.Context) {
	userID, matchID, ok := h.callerAndMatch(c)
	if !ok {
		return
	}

	var req reqdto.PublishResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Requête invalide",
		})
		return
	}

	if err := h.matchUseCase.PublishResult(c.Request.Context(), userID, matchID, req.Winners); err != nil {
		h.abortWithMatchError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MatchHandler) callerAndMatch(c *gin.Context) (userID, matchID uuid.UUID, ok bool) {
	userID, found := middleware.GetUserID(c)
	if !found {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return uuid.Nil, uuid.Nil, false
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant de match invalide",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, matchID, true
}

func (h *MatchHandler) abortWithMatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Match introuvable",
		})
	case errors.Is(err, usecase.ErrMatchPrivate):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Ce match est privé",
		})
	case errors.Is(err, usecase.ErrMatchFull):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Ce match est complet",
		})
	case errors.Is(err, usecase.ErrMatchCompleted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Ce match est déjà terminé",
		})
	case errors.Is(err, usecase.ErrNotMatchPlayer):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Vous ne participez pas à ce match",
		})
	case errors.Is(err, usecase.ErrNotMatchCreator):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Seul le créateur peut publier le résultat",
		})
	case errors.Is(err, usecase.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Le message est vide",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
	}
}
