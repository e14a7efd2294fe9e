package usecase

import (
	"context"
	"math"
	"strings"

	"padel-club-api/internal/domain/stats"
	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/store"

	"github.com/google/uuid"
)

// PlayerView is one entry of the community directory.
type PlayerView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Level         string    `json:"level"`
	AvatarURL     string    `json:"avatarUrl"`
	WinRate       int       `json:"winRate"`
	MatchesPlayed int       `json:"matchesPlayed"`
	RankingPoints int       `json:"rankingPoints"`
	IsFollowing   bool      `json:"isFollowing"`
}

type CommunityUseCase interface {
	Players(ctx context.Context, viewerID uuid.UUID, search string) ([]PlayerView, error)
	Follow(ctx context.Context, followerID, targetID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error
}

type communityUseCaseImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewCommunityUseCase(st *store.Store, clk clock.Clock) CommunityUseCase {
	return &communityUseCaseImpl{store: st, clock: clk}
}

func (c *communityUseCaseImpl) Players(_ context.Context, viewerID uuid.UUID, search string) ([]PlayerView, error) {
	doc := c.store.Read()

	needle := strings.ToLower(strings.TrimSpace(search))
	players := make([]PlayerView, 0, len(doc.Users))
	for _, member := range doc.Users {
		if member.ID == viewerID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(member.Name), needle) &&
			!strings.Contains(strings.ToLower(member.Email), needle) {
			continue
		}

		view := PlayerView{
			ID:            member.ID,
			Name:          member.Name,
			Level:         member.Level,
			AvatarURL:     member.AvatarURL,
			RankingPoints: stats.InitialRankingPoints,
			IsFollowing:   doc.IsFollowing(viewerID, member.ID),
		}
		if row := doc.StatsOf(member.ID); row != nil {
			view.MatchesPlayed = row.MatchesPlayed
			view.RankingPoints = row.RankingPoints
			view.WinRate = winRatePercent(row)
		}
		players = append(players, view)
	}
	return players, nil
}

func (c *communityUseCaseImpl) Follow(_ context.Context, followerID, targetID uuid.UUID) error {
	return c.store.Mutate(func(doc *store.Document) error {
		if doc.IsFollowing(followerID, targetID) {
			return nil
		}
		doc.Follows = append(doc.Follows, store.Follow{
			ID:          uuid.New(),
			FollowerID:  followerID,
			FollowingID: targetID,
			CreatedAt:   c.clock.Now(),
		})
		return nil
	})
}

func (c *communityUseCaseImpl) Unfollow(_ context.Context, followerID, targetID uuid.UUID) error {
	return c.store.Mutate(func(doc *store.Document) error {
		kept := doc.Follows[:0]
		for _, follow := range doc.Follows {
			if follow.FollowerID == followerID && follow.FollowingID == targetID {
				continue
			}
			kept = append(kept, follow)
		}
		doc.Follows = kept
		return nil
	})
}

func winRatePercent(row *stats.PlayerStats) int {
	if row.MatchesPlayed == 0 {
		return 0
	}
	return int(math.Round(row.WinRate() * 100))
}
