package components

import (
	"padel-club-api/internal/handler"
	"padel-club-api/internal/handler/api"
	"padel-club-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewMatchHandler,
		api.NewCommunityHandler,
		api.NewNotificationHandler,
		api.NewPaymentHandler,
		api.NewAdminHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	res *api.ReservationHandler,
	match *api.MatchHandler,
	community *api.CommunityHandler,
	notification *api.NotificationHandler,
	payment *api.PaymentHandler,
	admin *api.AdminHandler,
	settings *api.SettingsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Reservation:  res,
		Match:        match,
		Community:    community,
		Notification: notification,
		Payment:      payment,
		Admin:        admin,
		Settings:     settings,
	}
}
