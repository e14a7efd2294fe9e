package usecase

import (
	"context"
	"strings"

	"padel-club-api/internal/domain/match"
	"padel-club-api/internal/domain/reservation"
	"padel-club-api/internal/domain/stats"
	"padel-club-api/internal/domain/user"
	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/pkg/errs"
	"padel-club-api/internal/pkg/jwt"
	"padel-club-api/internal/pkg/password"
	"padel-club-api/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail       = errs.New("invalid email address")
	ErrWeakPassword       = errs.New("password does not meet minimum length")
	ErrEmailTaken         = errs.New("an account already exists for this email")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserNotFound       = errs.New("user not found")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Level    string
}

type UpdateProfileParams struct {
	Name  string
	Bio   string
	Level string
}

// MatchSummary is a match the user created or joined, with its roster.
type MatchSummary struct {
	match.Match
	Participants []MatchRosterEntry `json:"participants"`
}

type MatchRosterEntry struct {
	UserID uuid.UUID          `json:"userId"`
	Status match.PlayerStatus `json:"status"`
}

// Overview is the "my account" aggregate: profile, stats, own reservations
// and matches.
type Overview struct {
	User         user.User                 `json:"user"`
	Stats        *stats.PlayerStats        `json:"stats"`
	Reservations []reservation.Reservation `json:"reservations"`
	Matches      []MatchSummary            `json:"matches"`
}

type AuthUseCase interface {
	Register(ctx context.Context, params RegisterParams) (*user.User, string, error)
	Login(ctx context.Context, email, plaintext string) (*user.User, string, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) error
	MyOverview(ctx context.Context, userID uuid.UUID) (*Overview, error)
}

type authUseCaseImpl struct {
	store      *store.Store
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(st *store.Store, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		store:      st,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authUseCaseImpl) Register(_ context.Context, params RegisterParams) (*user.User, string, error) {
	if !user.ValidateEmail(params.Email) {
		return nil, "", ErrInvalidEmail
	}
	if !user.ValidatePassword(params.Password) {
		return nil, "", ErrWeakPassword
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to hash password")
	}

	newUser, err := store.Update(a.store, func(doc *store.Document) (*user.User, error) {
		// Uniqueness is checked inside the commit so two concurrent
		// registrations cannot both claim the same address.
		if doc.UserByEmail(params.Email) != nil {
			return nil, ErrEmailTaken
		}

		now := a.clock.Now()
		created := user.User{
			ID:           uuid.New(),
			Email:        strings.ToLower(params.Email),
			Name:         user.Sanitize(params.Name, "Padeler"),
			PasswordHash: hash,
			AvatarURL:    user.RandomAvatarURL(),
			Level:        user.Sanitize(params.Level, user.LevelIntermediate),
			IsAdmin:      false,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		doc.Users = append(doc.Users, created)
		doc.PlayerStats = append(doc.PlayerStats, stats.NewPlayerStats(created.ID, now))
		return &created, nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := a.jwtService.GenerateToken(newUser.ID)
	if err != nil {
		return nil, "", errs.Mark(err, ErrTokenGeneration)
	}
	return newUser, token, nil
}

func (a *authUseCaseImpl) Login(_ context.Context, email, plaintext string) (*user.User, string, error) {
	doc := a.store.Read()

	account := doc.UserByEmail(email)
	if account == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := password.ComparePassword(account.PasswordHash, plaintext); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(account.ID)
	if err != nil {
		return nil, "", errs.Mark(err, ErrTokenGeneration)
	}
	return account, token, nil
}

func (a *authUseCaseImpl) GetCurrentUser(_ context.Context, userID uuid.UUID) (*user.User, error) {
	doc := a.store.Read()

	account := doc.UserByID(userID)
	if account == nil {
		return nil, ErrUserNotFound
	}
	return account, nil
}

func (a *authUseCaseImpl) UpdateProfile(_ context.Context, userID uuid.UUID, params UpdateProfileParams) error {
	return a.store.Mutate(func(doc *store.Document) error {
		account := doc.UserByID(userID)
		if account == nil {
			return ErrUserNotFound
		}
		account.Name = user.Sanitize(params.Name, account.Name)
		account.Bio = user.Sanitize(params.Bio, account.Bio)
		account.Level = user.Sanitize(params.Level, account.Level)
		account.UpdatedAt = a.clock.Now()
		return nil
	})
}

func (a *authUseCaseImpl) MyOverview(_ context.Context, userID uuid.UUID) (*Overview, error) {
	doc := a.store.Read()

	account := doc.UserByID(userID)
	if account == nil {
		return nil, ErrUserNotFound
	}

	overview := &Overview{
		User:         *account,
		Stats:        doc.StatsOf(userID),
		Reservations: []reservation.Reservation{},
		Matches:      []MatchSummary{},
	}

	for _, res := range doc.Reservations {
		if res.OwnerID == userID {
			overview.Reservations = append(overview.Reservations, res)
		}
	}

	for _, entry := range doc.Matches {
		if entry.CreatorID != userID && !doc.IsMatchPlayer(entry.ID, userID) {
			continue
		}
		summary := MatchSummary{Match: entry}
		for _, player := range doc.PlayersOf(entry.ID) {
			summary.Participants = append(summary.Participants, MatchRosterEntry{
				UserID: player.UserID,
				Status: player.Status,
			})
		}
		overview.Matches = append(overview.Matches, summary)
	}
	return overview, nil
}
