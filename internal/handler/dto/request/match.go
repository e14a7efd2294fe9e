package request

import (
	"padel-club-api/internal/usecase"

	"github.com/google/uuid"
)

type CreateMatchRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description"`
	MatchDate       string  `json:"matchDate" binding:"required"`
	StartHour       float64 `json:"startHour"`
	DurationMinutes int     `json:"durationMinutes"`
	CourtNumber     int     `json:"courtNumber"`
	IsPublic        *bool   `json:"isPublic"`
	MinLevel        string  `json:"minLevel"`
	MaxLevel        string  `json:"maxLevel"`
	MaxPlayers      int     `json:"maxPlayers"`
}

func (r CreateMatchRequest) ToParams() usecase.CreateMatchParams {
	isPublic := true
	if r.IsPublic != nil {
		isPublic = *r.IsPublic
	}
	return usecase.CreateMatchParams{
		Title:           r.Title,
		Description:     r.Description,
		MatchDate:       r.MatchDate,
		StartHour:       r.StartHour,
		DurationMinutes: r.DurationMinutes,
		CourtNumber:     r.CourtNumber,
		IsPublic:        isPublic,
		MinLevel:        r.MinLevel,
		MaxLevel:        r.MaxLevel,
		MaxPlayers:      r.MaxPlayers,
	}
}

type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type PublishResultRequest struct {
	Winners []uuid.UUID `json:"winners"`
}
