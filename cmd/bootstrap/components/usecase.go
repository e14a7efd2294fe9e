package components

import (
	"padel-club-api/internal/domain/reservation"
	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			reservation.NewTariffPriceCalculator,
			fx.As(new(reservation.PriceCalculator)),
		),
		usecase.NewStatsUpdater,
		usecase.NewNotifier,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewReservationUseCase,
		usecase.NewMatchUseCase,
		usecase.NewCommunityUseCase,
		usecase.NewNotificationUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewAdminUseCase,
	),
)
