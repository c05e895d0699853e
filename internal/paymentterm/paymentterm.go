// Package paymentterm решает, создать новое условие оплаты или обновить существующее.
package paymentterm

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iurnickita/saleshub/internal/model"
	"github.com/iurnickita/saleshub/internal/store"
)

type Store interface {
	PaymentTermGetByID(ctx context.Context, id int64) (model.PaymentTerm, error)
	PaymentTermAdd(ctx context.Context, term model.PaymentTerm) (model.PaymentTerm, error)
	PaymentTermUpdate(ctx context.Context, term model.PaymentTerm) error
}

var (
	ErrNotFound = errors.New("payment term not found")
)

// Candidate - отправленное из формы условие оплаты: New или Existing.
type Candidate interface {
	split() decimal.Decimal
}

// New - строки еще нет, будет вставка.
type New struct {
	SplitPercentage decimal.Decimal
}

// Existing - обновление строки ID.
type Existing struct {
	ID              int64
	SplitPercentage decimal.Decimal
}

func (c New) split() decimal.Decimal      { return c.SplitPercentage }
func (c Existing) split() decimal.Decimal { return c.SplitPercentage }

// CandidateFor берет идентичность из сохраненного слота заказа,
// а долю - из отправленной формы.
func CandidateFor(stored model.PaymentTerm, splitPercentage decimal.Decimal) Candidate {
	if stored.Persisted() {
		return Existing{ID: stored.ID, SplitPercentage: splitPercentage}
	}
	return New{SplitPercentage: splitPercentage}
}

type Processor struct {
	store Store
}

func NewProcessor(store Store) *Processor {
	return &Processor{store: store}
}

// Process возвращает сохраненную запись для слота заказа.
func (p *Processor) Process(ctx context.Context, candidate Candidate) (model.PaymentTerm, error) {
	switch c := candidate.(type) {
	case New:
		term, err := p.store.PaymentTermAdd(ctx, model.PaymentTerm{SplitPercentage: c.SplitPercentage})
		if err != nil {
			return model.PaymentTerm{}, fmt.Errorf("add payment term: %w", err)
		}
		return term, nil

	case Existing:
		// Не вставляем взамен пропавшей строки: иначе появятся дубли
		term, err := p.store.PaymentTermGetByID(ctx, c.ID)
		if err != nil {
			if errors.Is(err, store.ErrNoRows) {
				return model.PaymentTerm{}, fmt.Errorf("%w: id %d", ErrNotFound, c.ID)
			}
			return model.PaymentTerm{}, fmt.Errorf("get payment term %d: %w", c.ID, err)
		}

		term.SplitPercentage = c.SplitPercentage
		err = p.store.PaymentTermUpdate(ctx, term)
		if err != nil {
			if errors.Is(err, store.ErrNoRows) {
				return model.PaymentTerm{}, fmt.Errorf("%w: id %d", ErrNotFound, c.ID)
			}
			return model.PaymentTerm{}, fmt.Errorf("update payment term %d: %w", c.ID, err)
		}
		return term, nil

	default:
		return model.PaymentTerm{}, fmt.Errorf("unknown payment term candidate %T", candidate)
	}
}
