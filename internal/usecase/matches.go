package usecase

import (
	"context"
	"fmt"

	"padel-club-api/internal/domain/match"
	"padel-club-api/internal/domain/reservation"
	"padel-club-api/internal/domain/user"
	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/pkg/errs"
	"padel-club-api/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidMatch    = errs.New("incomplete match details")
	ErrMatchNotFound   = errs.New("match not found")
	ErrMatchPrivate    = errs.New("match is private")
	ErrMatchFull       = errs.New("match is full")
	ErrMatchCompleted  = errs.New("match already completed")
	ErrNotMatchPlayer  = errs.New("caller is not a player of this match")
	ErrNotMatchCreator = errs.New("only the match creator may publish the result")
	ErrEmptyMessage    = errs.New("empty message")
)

type CreateMatchParams struct {
	Title           string
	Description     string
	MatchDate       string
	StartHour       float64
	DurationMinutes int
	CourtNumber     int
	IsPublic        bool
	MinLevel        string
	MaxLevel        string
	MaxPlayers      int
}

type MatchParticipantView struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"userId"`
	Status    match.PlayerStatus `json:"status"`
	Name      string             `json:"name"`
	AvatarURL string             `json:"avatarUrl"`
}

// MatchView is a listing item: the match plus its roster, the caller's
// membership flags and the five most recent chat messages.
type MatchView struct {
	match.Match
	Participants []MatchParticipantView `json:"participants"`
	Joined       bool                   `json:"joined"`
	Messages     []match.Message        `json:"messages"`
	IsOwner      bool                   `json:"isOwner"`
}

type MessageView struct {
	match.Message
	CanDelete bool `json:"canDelete"`
}

type MatchUseCase interface {
	Create(ctx context.Context, creatorID uuid.UUID, params CreateMatchParams) (*match.Match, error)
	List(ctx context.Context, callerID uuid.UUID) ([]MatchView, error)
	Join(ctx context.Context, callerID, matchID uuid.UUID) (alreadyJoined bool, err error)
	Leave(ctx context.Context, callerID, matchID uuid.UUID) error
	ListMessages(ctx context.Context, callerID, matchID uuid.UUID) ([]MessageView, error)
	PostMessage(ctx context.Context, callerID, matchID uuid.UUID, content string) (*match.Message, error)
	PublishResult(ctx context.Context, callerID, matchID uuid.UUID, winners []uuid.UUID) error
}

type matchUseCaseImpl struct {
	store        *store.Store
	statsUpdater StatsUpdater
	notifier     Notifier
	clock        clock.Clock
}

func NewMatchUseCase(st *store.Store, statsUpdater StatsUpdater, notifier Notifier, clk clock.Clock) MatchUseCase {
	return &matchUseCaseImpl{
		store:        st,
		statsUpdater: statsUpdater,
		notifier:     notifier,
		clock:        clk,
	}
}

func (m *matchUseCaseImpl) Create(_ context.Context, creatorID uuid.UUID, params CreateMatchParams) (*match.Match, error) {
	if params.Title == "" || params.MatchDate == "" {
		return nil, ErrInvalidMatch
	}
	if _, err := reservation.ParseDate(params.MatchDate); err != nil {
		return nil, errs.Mark(err, ErrInvalidMatch)
	}

	startHour := params.StartHour
	if startHour == 0 {
		startHour = match.DefaultStartHour
	}
	minLevel := user.Sanitize(params.MinLevel, user.LevelBeginner)
	maxLevel := user.Sanitize(params.MaxLevel, user.LevelAdvanced)

	return store.Update(m.store, func(doc *store.Document) (*match.Match, error) {
		now := m.clock.Now()
		created := match.Match{
			ID:              uuid.New(),
			CreatorID:       creatorID,
			Title:           user.Sanitize(params.Title, "Match amical"),
			Description:     user.Sanitize(params.Description, ""),
			MatchDate:       params.MatchDate,
			StartHour:       startHour,
			DurationMinutes: match.ClampDuration(params.DurationMinutes),
			CourtNumber:     reservation.ClampCourt(params.CourtNumber, len(doc.Settings.Courts)),
			IsPublic:        params.IsPublic,
			MinLevel:        minLevel,
			MaxLevel:        maxLevel,
			MaxPlayers:      match.ClampMaxPlayers(params.MaxPlayers),
			Status:          match.StatusScheduled,
			CreatedAt:       now,
		}
		doc.Matches = append(doc.Matches, created)

		// The creator is always the first confirmed player.
		doc.MatchPlayers = append(doc.MatchPlayers, match.Player{
			ID:       uuid.New(),
			MatchID:  created.ID,
			UserID:   creatorID,
			Status:   match.PlayerStatusConfirmed,
			JoinedAt: now,
		})
		return &created, nil
	})
}

func (m *matchUseCaseImpl) List(_ context.Context, callerID uuid.UUID) ([]MatchView, error) {
	doc := m.store.Read()

	views := make([]MatchView, 0, len(doc.Matches))
	for _, entry := range doc.Matches {
		players := doc.PlayersOf(entry.ID)
		participants := make([]MatchParticipantView, 0, len(players))
		joined := false
		for _, player := range players {
			if player.UserID == callerID {
				joined = true
			}
			view := MatchParticipantView{
				ID:        player.ID,
				UserID:    player.UserID,
				Status:    player.Status,
				Name:      "Joueur",
				AvatarURL: "/assets/images/avatar-1.svg",
			}
			if u := doc.UserByID(player.UserID); u != nil {
				view.Name = u.Name
				view.AvatarURL = u.AvatarURL
			}
			participants = append(participants, view)
		}

		messages := doc.MessagesOf(entry.ID)
		if len(messages) > 5 {
			messages = messages[len(messages)-5:]
		}

		views = append(views, MatchView{
			Match:        entry,
			Participants: participants,
			Joined:       joined,
			Messages:     messages,
			IsOwner:      entry.CreatorID == callerID,
		})
	}
	return views, nil
}

func (m *matchUseCaseImpl) Join(_ context.Context, callerID, matchID uuid.UUID) (bool, error) {
	type joinResult struct {
		alreadyJoined bool
		creatorID     uuid.UUID
		title         string
		joinerName    string
	}

	result, err := store.Update(m.store, func(doc *store.Document) (joinResult, error) {
		entry := doc.MatchByID(matchID)
		if entry == nil {
			return joinResult{}, ErrMatchNotFound
		}
		if !entry.IsPublic {
			return joinResult{}, ErrMatchPrivate
		}
		if entry.IsCompleted() {
			return joinResult{}, ErrMatchCompleted
		}

		players := doc.PlayersOf(matchID)
		for _, player := range players {
			if player.UserID == callerID {
				// Idempotent: joining twice is a success no-op.
				return joinResult{alreadyJoined: true}, nil
			}
		}
		if len(players) >= entry.MaxPlayers {
			return joinResult{}, ErrMatchFull
		}

		doc.MatchPlayers = append(doc.MatchPlayers, match.Player{
			ID:       uuid.New(),
			MatchID:  matchID,
			UserID:   callerID,
			Status:   match.PlayerStatusConfirmed,
			JoinedAt: m.clock.Now(),
		})

		joinerName := "Joueur"
		if u := doc.UserByID(callerID); u != nil {
			joinerName = u.Name
		}
		return joinResult{creatorID: entry.CreatorID, title: entry.Title, joinerName: joinerName}, nil
	})
	if err != nil {
		return false, err
	}
	if result.alreadyJoined {
		return true, nil
	}

	m.notifier.Notify(result.creatorID, "match", "Nouveau joueur inscrit",
		fmt.Sprintf("%s a rejoint votre match %s", result.joinerName, result.title))
	return false, nil
}

func (m *matchUseCaseImpl) Leave(_ context.Context, callerID, matchID uuid.UUID) error {
	return m.store.Mutate(func(doc *store.Document) error {
		entry := doc.MatchByID(matchID)
		// A creator cannot leave their own match through this path.
		if entry != nil && entry.CreatorID == callerID {
			return nil
		}

		kept := doc.MatchPlayers[:0]
		for _, player := range doc.MatchPlayers {
			if player.MatchID == matchID && player.UserID == callerID {
				continue
			}
			kept = append(kept, player)
		}
		doc.MatchPlayers = kept
		return nil
	})
}

func (m *matchUseCaseImpl) ListMessages(_ context.Context, callerID, matchID uuid.UUID) ([]MessageView, error) {
	doc := m.store.Read()

	messages := doc.MessagesOf(matchID)
	views := make([]MessageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, MessageView{
			Message:   message,
			CanDelete: message.SenderID == callerID,
		})
	}
	return views, nil
}

func (m *matchUseCaseImpl) PostMessage(_ context.Context, callerID, matchID uuid.UUID, content string) (*match.Message, error) {
	trimmed := user.Sanitize(content, "")
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	return store.Update(m.store, func(doc *store.Document) (*match.Message, error) {
		if !doc.IsMatchPlayer(matchID, callerID) {
			return nil, ErrNotMatchPlayer
		}

		senderName := "Joueur"
		if u := doc.UserByID(callerID); u != nil {
			senderName = u.Name
		}
		message := match.Message{
			ID:         uuid.New(),
			MatchID:    matchID,
			SenderID:   callerID,
			SenderName: senderName,
			Content:    trimmed,
			CreatedAt:  m.clock.Now(),
		}
		doc.Messages = append(doc.Messages, message)
		return &message, nil
	})
}

func (m *matchUseCaseImpl) PublishResult(_ context.Context, callerID, matchID uuid.UUID, winners []uuid.UUID) error {
	players, err := store.Update(m.store, func(doc *store.Document) ([]match.Player, error) {
		entry := doc.MatchByID(matchID)
		if entry == nil {
			return nil, ErrMatchNotFound
		}
		if entry.CreatorID != callerID {
			return nil, ErrNotMatchCreator
		}
		if entry.IsCompleted() {
			// The scheduled → completed transition is one-way.
			return nil, ErrMatchCompleted
		}

		now := m.clock.Now()
		entry.Status = match.StatusCompleted
		entry.Result = &match.Result{Winners: winners}
		entry.CompletedAt = &now
		return doc.PlayersOf(matchID), nil
	})
	if err != nil {
		return err
	}

	m.statsUpdater.AfterMatchResult(players, match.Result{Winners: winners})
	return nil
}
