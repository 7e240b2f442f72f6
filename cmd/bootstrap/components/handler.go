package components

import (
	"github.com/rico33631/smart-park/internal/handler"
	"github.com/rico33631/smart-park/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewParkingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
