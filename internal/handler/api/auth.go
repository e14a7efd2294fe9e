package api

import (
	"errors"
	"net/http"

	reqdto "padel-club-api/internal/handler/dto/request"
	resdto "padel-club-api/internal/handler/dto/response"
	"padel-club-api/internal/handler/middleware"
	"padel-club-api/internal/pkg/config"
	"padel-club-api/internal/pkg/cookie"
	"padel-club-api/internal/pkg/jwt"
	"padel-club-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	jwtService  *jwt.Service
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		jwtService:  jwtService,
		cookieCfg:   cfg.Cookie,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Requête invalide",
		})
		return
	}

	account, token, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Level:    req.Level,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Adresse email invalide",
			})
		case errors.Is(err, usecase.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Le mot de passe doit contenir au moins 8 caractères",
			})
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Un compte existe déjà avec cet email",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Erreur interne du serveur",
			})
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, token, h.jwtService.TokenDuration())
	c.JSON(http.StatusCreated, resdto.NewAuthResponse(account, token))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Requête invalide",
		})
		return
	}

	account, token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Email ou mot de passe incorrect",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Erreur interne du serveur",
			})
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.NewAuthResponse(account, token))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	account, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Utilisateur introuvable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Erreur interne du serveur",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUser(account))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Requête invalide",
		})
		return
	}

	err := h.authUseCase.UpdateProfile(c.Request.Context(), userID, usecase.UpdateProfileParams{
		Name:  req.Name,
		Bio:   req.Bio,
		Level: req.Level,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Utilisateur introuvable",
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

func (h *AuthHandler) Overview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	overview, err := h.authUseCase.MyOverview(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Utilisateur introuvable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Erreur interne du serveur",
			})
		}
		return
	}

	overview.User.PasswordHash = ""
	c.JSON(http.StatusOK, overview)
}
