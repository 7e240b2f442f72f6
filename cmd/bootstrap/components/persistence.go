package components

import (
	"github.com/rico33631/smart-park/internal/infra/db"
	"github.com/rico33631/smart-park/internal/infra/readstore"
	"github.com/rico33631/smart-park/internal/infra/uow"
	"github.com/rico33631/smart-park/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			readstore.NewLotReadStore,
			fx.As(new(queries.SpaceReadStore)),
			fx.As(new(queries.LotReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
