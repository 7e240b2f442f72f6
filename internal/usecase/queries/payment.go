package queries

import (
	"context"

	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/pkg/errs"
)

var ErrPaymentNotFound = errs.New("payment not found")

type PaymentReadStore interface {
	FindByReference(ctx context.Context, reference string) (*PaymentView, error)
}

type PaymentQueries interface {
	GetByReference(ctx context.Context, reference string) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	repo PaymentReadStore
}

func NewPaymentQueries(repo PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) GetByReference(ctx context.Context, reference string) (*PaymentView, error) {
	v, err := q.repo.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return v, nil
}
