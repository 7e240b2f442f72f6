package components

import (
	"github.com/rico33631/smart-park/internal/pkg/clock"
	"github.com/rico33631/smart-park/internal/pkg/refgen"
	"github.com/rico33631/smart-park/internal/usecase/commands"
	"github.com/rico33631/smart-park/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	refgen.NewGenerator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewParkingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewParkingUseCase,
	),
)
