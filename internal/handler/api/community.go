package api

import (
	"net/http"

	"padel-club-api/internal/handler/middleware"
	"padel-club-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommunityHandler struct {
	communityUseCase usecase.CommunityUseCase
}

func NewCommunityHandler(communityUseCase usecase.CommunityUseCase) *CommunityHandler {
	return &CommunityHandler{
		communityUseCase: communityUseCase,
	}
}

func (h *CommunityHandler) Players(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	players, err := h.communityUseCase.Players(c.Request.Context(), userID, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, players)
}

func (h *CommunityHandler) Follow(c *gin.Context) {
	userID, targetID, ok := h.callerAndTarget(c)
	if !ok {
		return
	}

	if err := h.communityUseCase.Follow(c.Request.Context(), userID, targetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": true})
}

func (h *CommunityHandler) Unfollow(c *gin.Context) {
	userID, targetID, ok := h.callerAndTarget(c)
	if !ok {
		return
	}

	if err := h.communityUseCase.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": false})
}

func (h *CommunityHandler) callerAndTarget(c *gin.Context) (userID, targetID uuid.UUID, ok bool) {
	userID, found := middleware.GetUserID(c)
	if !found {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return uuid.Nil, uuid.Nil, false
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant de joueur invalide",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, targetID, true
}
