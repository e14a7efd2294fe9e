package usecase

import (
	"context"
	"fmt"

	"padel-club-api/internal/domain/payment"
	"padel-club-api/internal/domain/reservation"
	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/pkg/errs"
	"padel-club-api/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate  = errs.New("invalid reservation date")
	ErrSlotConflict = errs.New("slot already reserved for this court")
	// NotFound and Forbidden are deliberately collapsed so a caller cannot
	// probe for the existence of other members' reservations.
	ErrReservationNotFound = errs.New("reservation not found or not owned by caller")
)

type CreateReservationParams struct {
	Date            string
	StartHour       float64
	DurationMinutes int
	CourtNumber     int
	Invitees        []string
	SplitPayment    bool
}

// ReservationView is a listing item annotated with the caller's ownership.
type ReservationView struct {
	reservation.Reservation
	IsOwner bool `json:"isOwner"`
}

type ReservationUseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateReservationParams) (*reservation.Reservation, error)
	Cancel(ctx context.Context, callerID, reservationID uuid.UUID) error
	List(ctx context.Context, callerID uuid.UUID, date string) ([]ReservationView, error)
}

type reservationUseCaseImpl struct {
	store        *store.Store
	calculator   reservation.PriceCalculator
	statsUpdater StatsUpdater
	notifier     Notifier
	clock        clock.Clock
}

func NewReservationUseCase(
	st *store.Store,
	calculator reservation.PriceCalculator,
	statsUpdater StatsUpdater,
	notifier Notifier,
	clk clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		store:        st,
		calculator:   calculator,
		statsUpdater: statsUpdater,
		notifier:     notifier,
		clock:        clk,
	}
}

func (r *reservationUseCaseImpl) Create(
	_ context.Context,
	ownerID uuid.UUID,
	params CreateReservationParams,
) (*reservation.Reservation, error) {
	day, err := reservation.ParseDate(params.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	duration := reservation.ClampDuration(params.DurationMinutes)

	type commitResult struct {
		created   reservation.Reservation
		ownerName string
	}

	// Conflict check and pricing must observe the same snapshot the write
	// lands on, so everything below runs inside one commit body.
	result, err := store.Update(r.store, func(doc *store.Document) (commitResult, error) {
		court := reservation.ClampCourt(params.CourtNumber, len(doc.Settings.Courts))

		participants := r.resolveParticipants(doc, ownerID, params.Invitees)

		candidate := reservation.NewInterval(params.StartHour, duration)
		if reservation.HasConflict(candidate, doc.LiveIntervalsFor(court, params.Date)) {
			return commitResult{}, ErrSlotConflict
		}

		quote := r.calculator.PriceForSlot(doc.Settings.Pricing, params.StartHour, duration)
		now := r.clock.Now()

		created := reservation.Reservation{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			Date:            params.Date,
			StartHour:       params.StartHour,
			DurationMinutes: duration,
			CourtNumber:     court,
			Participants:    participants,
			SplitPayment:    params.SplitPayment,
			Price:           quote.Total,
			Status:          reservation.StatusConfirmed,
			CreatedAt:       now,
			StartDateTime:   reservation.StartInstant(day, params.StartHour),
		}
		doc.Reservations = append(doc.Reservations, created)

		share := quote.Total
		if params.SplitPayment {
			share = reservation.RoundToCents(quote.Total / float64(len(participants)))
		}
		for _, participantID := range participants {
			doc.ReservationParticipants = append(doc.ReservationParticipants, reservation.Participant{
				ID:            uuid.New(),
				ReservationID: created.ID,
				UserID:        participantID,
				Share:         share,
				CreatedAt:     now,
			})
		}

		reservationID := created.ID
		doc.Transactions = append(doc.Transactions, payment.Transaction{
			ID:            uuid.New(),
			ReservationID: &reservationID,
			Amount:        quote.Total,
			Status:        payment.StatusForSplit(params.SplitPayment),
			Provider:      payment.Provider,
			CreatedAt:     now,
		})

		ownerName := ""
		if owner := doc.UserByID(ownerID); owner != nil {
			ownerName = owner.Name
		}
		return commitResult{created: created, ownerName: ownerName}, nil
	})
	if err != nil {
		return nil, err
	}

	// Best-effort follow-ups; the reservation is already committed and a
	// failure here must not roll it back.
	created := result.created
	r.statsUpdater.AfterReservation(created)
	for _, participantID := range created.Participants {
		if participantID == ownerID {
			continue
		}
		r.notifier.Notify(participantID, "reservation", "Nouvelle réservation",
			fmt.Sprintf("%s vous a ajouté à une réservation sur le terrain %d", result.ownerName, created.CourtNumber))
	}

	return &created, nil
}

// resolveParticipants maps invitee emails to user ids, silently dropping
// unresolved addresses, and de-duplicates with the owner always first.
func (r *reservationUseCaseImpl) resolveParticipants(doc *store.Document, ownerID uuid.UUID, invitees []string) []uuid.UUID {
	participants := []uuid.UUID{ownerID}
	seen := map[uuid.UUID]bool{ownerID: true}
	for _, email := range invitees {
		invitee := doc.UserByEmail(email)
		if invitee == nil || seen[invitee.ID] {
			continue
		}
		seen[invitee.ID] = true
		participants = append(participants, invitee.ID)
	}
	return participants
}

func (r *reservationUseCaseImpl) Cancel(_ context.Context, callerID, reservationID uuid.UUID) error {
	return r.store.Mutate(func(doc *store.Document) error {
		target := doc.ReservationByID(reservationID)
		if target == nil || target.OwnerID != callerID {
			return ErrReservationNotFound
		}

		// The reservation, its share rows and its transaction leave in the
		// same commit; no orphaned rows may survive.
		kept := doc.Reservations[:0]
		for _, res := range doc.Reservations {
			if res.ID != reservationID {
				kept = append(kept, res)
			}
		}
		doc.Reservations = kept

		keptParticipants := doc.ReservationParticipants[:0]
		for _, p := range doc.ReservationParticipants {
			if p.ReservationID != reservationID {
				keptParticipants = append(keptParticipants, p)
			}
		}
		doc.ReservationParticipants = keptParticipants

		keptTransactions := doc.Transactions[:0]
		for _, tx := range doc.Transactions {
			if tx.ReservationID == nil || *tx.ReservationID != reservationID {
				keptTransactions = append(keptTransactions, tx)
			}
		}
		doc.Transactions = keptTransactions
		return nil
	})
}

func (r *reservationUseCaseImpl) List(_ context.Context, callerID uuid.UUID, date string) ([]ReservationView, error) {
	doc := r.store.Read()

	views := make([]ReservationView, 0, len(doc.Reservations))
	for _, res := range doc.Reservations {
		if date != "" && res.Date != date {
			continue
		}
		views = append(views, ReservationView{
			Reservation: res,
			IsOwner:     res.OwnerID == callerID,
		})
	}
	return views, nil
}
