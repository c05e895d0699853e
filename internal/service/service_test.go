package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/iurnickita/saleshub/internal/mocks"
	"github.com/iurnickita/saleshub/internal/model"
	"github.com/iurnickita/saleshub/internal/service"
	"github.com/iurnickita/saleshub/internal/store"
	"github.com/iurnickita/saleshub/internal/validation"
	"github.com/iurnickita/saleshub/internal/viewmodel"
)

var (
	customer = model.Customer{
		ID:             5,
		Name:           "Acme Grain",
		SellingCompany: model.SellingCompany{ID: 1, Name: "Northwind"},
	}
	suggestedValues = []model.SuggestedValue{{ID: 1, Field: "invoice_comments", Value: "Net 30"}}
)

type fixture struct {
	ctx       context.Context
	store     *mocks.MockStore
	tx        *mocks.MockTx
	suggested *mocks.MockSuggestedValues
	service   service.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctx:       context.Background(),
		store:     mocks.NewMockStore(ctrl),
		tx:        mocks.NewMockTx(ctrl),
		suggested: mocks.NewMockSuggestedValues(ctrl),
	}
	f.service = service.New(f.store, f.suggested, service.DefaultBuilders(), zap.NewNop())
	return f
}

// Открытие и откат транзакции на каждый запрос
func (f *fixture) expectTx(times int) {
	f.store.EXPECT().Begin(f.ctx).Return(f.tx, nil).Times(times)
	f.tx.EXPECT().Rollback(f.ctx).Return(nil).Times(times)
}

// Поля для повторного отображения формы
func (f *fixture) expectViewModelFields(customerID int64) {
	f.tx.EXPECT().CustomerGetByID(f.ctx, customerID).Return(customer, nil)
	f.suggested.EXPECT().SuggestedValueGetAll(f.ctx).Return(suggestedValues, nil)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func order42() model.Order {
	return model.Order{
		ID:                     42,
		CustomerID:             customer.ID,
		OrderNumber:            "SO-42",
		ContractWeight:         dec("1200.5"),
		ContractAmount:         dec("98000.00"),
		OrderDate:              time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		IsActive:               true,
		ContractCurrencyTypeID: 2,
		PaymentTerm1:           model.PaymentTerm{ID: 7, SplitPercentage: dec("0.5")},
		PaymentTerm2:           model.PaymentTerm{ID: 8, SplitPercentage: dec("0.5")},
	}
}

func withSplits(vm viewmodel.OrderViewModel, split1, split2 string) viewmodel.OrderViewModel {
	vm.PaymentTerm1.SplitPercentage = dec(split1)
	vm.PaymentTerm2.SplitPercentage = dec(split2)
	return vm
}

func TestSubmitEditScenario(t *testing.T) {
	f := newFixture(t)
	f.expectTx(2)

	// 0.3 + 0.5 - форма с ошибкой, без записи
	f.tx.EXPECT().OrderGetByIDWithPaymentTerms(f.ctx, int64(42)).Return(order42(), nil).Times(2)
	f.expectViewModelFields(customer.ID)

	vm := withSplits(viewmodel.Convert(order42()), "0.3", "0.5")
	outcome, err := f.service.SubmitEdit(f.ctx, vm, validation.Result{})
	require.NoError(t, err)
	require.Nil(t, outcome.Redirect)
	require.NotNil(t, outcome.Form)
	require.Equal(t, []validation.FieldError{{Field: "", Message: validation.MsgSplitPercentageTotal}},
		outcome.Form.Validation.Errors())
	require.True(t, dec("0.3").Equal(outcome.Form.ViewModel.PaymentTerm1.SplitPercentage))
	require.Equal(t, "Northwind / Acme Grain", outcome.Form.ViewModel.CustomerPath)
	require.Equal(t, suggestedValues, outcome.Form.ViewModel.SuggestedValues)

	// 0.3 + 0.7 - обновление строк 7 и 8
	f.tx.EXPECT().PaymentTermGetByID(f.ctx, int64(7)).Return(model.PaymentTerm{ID: 7, SplitPercentage: dec("0.5")}, nil)
	f.tx.EXPECT().PaymentTermGetByID(f.ctx, int64(8)).Return(model.PaymentTerm{ID: 8, SplitPercentage: dec("0.5")}, nil)
	f.tx.EXPECT().PaymentTermUpdate(f.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, term model.PaymentTerm) error {
			switch term.ID {
			case 7:
				require.True(t, dec("0.3").Equal(term.SplitPercentage))
			case 8:
				require.True(t, dec("0.7").Equal(term.SplitPercentage))
			default:
				t.Fatalf("unexpected payment term %d", term.ID)
			}
			return nil
		}).Times(2)

	var saved model.Order
	f.tx.EXPECT().OrderUpdate(f.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, order model.Order) error {
			saved = order
			return nil
		})
	f.tx.EXPECT().SaveChanges(f.ctx).Return(nil)

	vm = withSplits(viewmodel.Convert(order42()), "0.3", "0.7")
	vm.OrderNumber = "SO-42-A"
	vm.ContractCurrencyTypeID = 4
	outcome, err = f.service.SubmitEdit(f.ctx, vm, validation.Result{})
	require.NoError(t, err)
	require.Nil(t, outcome.Form)
	require.Equal(t, &service.Redirect{Target: service.RedirectOrderEdit, ID: 42}, outcome.Redirect)

	require.Equal(t, "SO-42-A", saved.OrderNumber)
	// валюта из формы не принимается
	require.Equal(t, int64(2), saved.ContractCurrencyTypeID)
	require.Equal(t, int64(7), saved.PaymentTerm1.ID)
	require.Equal(t, int64(8), saved.PaymentTerm2.ID)
	require.True(t, dec("0.3").Equal(saved.PaymentTerm1.SplitPercentage))
	require.True(t, dec("0.7").Equal(saved.PaymentTerm2.SplitPercentage))
}

func TestSubmitEditRejectsInexactSplits(t *testing.T) {
	pairs := []struct {
		name           string
		split1, split2 string
	}{
		{name: "thirds", split1: "0.333", split2: "0.666"},
		{name: "over", split1: "0.5", split2: "0.6"},
		{name: "tiny excess", split1: "1", split2: "0.0001"},
		{name: "empty", split1: "0", split2: "0"},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectTx(1)
			f.tx.EXPECT().OrderGetByIDWithPaymentTerms(f.ctx, int64(42)).Return(order42(), nil)
			f.expectViewModelFields(customer.ID)

			vm := withSplits(viewmodel.Convert(order42()), tt.split1, tt.split2)
			outcome, err := f.service.SubmitEdit(f.ctx, vm, validation.Result{})
			require.NoError(t, err)
			require.NotNil(t, outcome.Form)
			require.False(t, outcome.Form.Validation.Valid())
		})
	}
}

func TestSubmitEditCallerValidation(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	f.tx.EXPECT().OrderGetByIDWithPaymentTerms(f.ctx, int64(42)).Return(order42(), nil)
	f.expectViewModelFields(customer.ID)

	var result validation.Result
	result.Add("order_number", "is required")

	vm := withSplits(viewmodel.Convert(order42()), "0.4", "0.6")
	vm.OrderNumber = ""
	outcome, err := f.service.SubmitEdit(f.ctx, vm, result)
	require.NoError(t, err)
	require.NotNil(t, outcome.Form)
	require.Equal(t, []validation.FieldError{{Field: "order_number", Message: "is required"}},
		outcome.Form.Validation.Errors())
	require.Equal(t, "", outcome.Form.ViewModel.OrderNumber)
}

// Запись в NUMERIC(9, 6) округлила бы 0.1234565 + 0.8765435 до суммы 1.000001
func TestSubmitEditRejectsSplitsBeyondScale(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	f.tx.EXPECT().OrderGetByIDWithPaymentTerms(f.ctx, int64(42)).Return(order42(), nil)
	f.expectViewModelFields(customer.ID)

	vm := withSplits(viewmodel.Convert(order42()), "0.1234565", "0.8765435")
	require.True(t, viewmodel.SplitTotal(vm).Equal(dec("1")))

	outcome, err := f.service.SubmitEdit(f.ctx, vm, validation.Result{})
	require.NoError(t, err)
	require.Nil(t, outcome.Redirect)
	require.NotNil(t, outcome.Form)
	require.Equal(t, []validation.FieldError{
		{Field: "payment_term1.split_percentage", Message: validation.MsgSplitPercentageScale},
		{Field: "payment_term2.split_percentage", Message: validation.MsgSplitPercentageScale},
	}, outcome.Form.Validation.Errors())
}

func TestSubmitEditAcceptsSplitsAtScale(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	f.tx.EXPECT().OrderGetByIDWithPaymentTerms(f.ctx, int64(42)).Return(order42(), nil)
	f.tx.EXPECT().PaymentTermGetByID(f.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64) (model.PaymentTerm, error) {
			return model.PaymentTerm{ID: id, SplitPercentage: dec("0.5")}, nil
		}).Times(2)
	f.tx.EXPECT().PaymentTermUpdate(f.ctx, gomock.Any()).Return(nil).Times(2)
	f.tx.EXPECT().OrderUpdate(f.ctx, gomock.Any()).Return(nil)
	f.tx.EXPECT().SaveChanges(f.ctx).Return(nil)

	vm := withSplits(viewmodel.Convert(order42()), "0.123457", "0.876543")
	outcome, err := f.service.SubmitEdit(f.ctx, vm, validation.Result{})
	require.NoError(t, err)
	require.Equal(t, &service.Redirect{Target: service.RedirectOrderEdit, ID: 42}, outcome.Redirect)
}

func TestSubmitEditIdempotent(t *testing.T) {
	f := newFixture(t)
	f.expectTx(2)

	// заказ без условий оплаты, хранилище в памяти теста
	stored := order42()
	stored.PaymentTerm1 = model.PaymentTerm{}
	stored.PaymentTerm2 = model.PaymentTerm{}
	terms := map[int64]model.PaymentTerm{}
	nextID := int64(6)

	f.tx.EXPECT().OrderGetByIDWithPaymentTerms(f.ctx, int64(42)).DoAndReturn(
		func(_ context.Context, _ int64) (model.Order, error) {
			return stored, nil
		}).Times(2)
	f.tx.EXPECT().PaymentTermAdd(f.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, term model.PaymentTerm) (model.PaymentTerm, error) {
			nextID++
			term.ID = nextID
			terms[term.ID] = term
			return term, nil
		}).Times(2)
	f.tx.EXPECT().PaymentTermGetByID(f.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64) (model.PaymentTerm, error) {
			term, ok := terms[id]
			if !ok {
				return model.PaymentTerm{}, store.ErrNoRows
			}
			return term, nil
		}).Times(2)
	f.tx.EXPECT().PaymentTermUpdate(f.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, term model.PaymentTerm) error {
			terms[term.ID] = term
			return nil
		}).Times(2)
	f.tx.EXPECT().OrderUpdate(f.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, order model.Order) error {
			stored = order
			return nil
		}).Times(2)
	f.tx.EXPECT().SaveChanges(f.ctx).Return(nil).Times(2)

	vm := withSplits(viewmodel.Convert(stored), "0.4", "0.6")

	_, err := f.service.SubmitEdit(f.ctx, vm, validation.Result{})
	require.NoError(t, err)
	require.Equal(t, int64(7), stored.PaymentTerm1.ID)
	require.Equal(t, int64(8), stored.PaymentTerm2.ID)

	// повторная отправка той же формы (идентификаторы в ней нулевые)
	outcome, err := f.service.SubmitEdit(f.ctx, vm, validation.Result{})
	require.NoError(t, err)
	require.Equal(t, &service.Redirect{Target: service.RedirectOrderEdit, ID: 42}, outcome.Redirect)
	require.Equal(t, int64(7), stored.PaymentTerm1.ID)
	require.Equal(t, int64(8), stored.PaymentTerm2.ID)
	require.Len(t, terms, 2)
}

func TestSubmitEditStalePaymentTerm(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	f.tx.EXPECT().OrderGetByIDWithPaymentTerms(f.ctx, int64(42)).Return(order42(), nil)
	f.tx.EXPECT().PaymentTermGetByID(f.ctx, int64(7)).Return(model.PaymentTerm{}, store.ErrNoRows)

	vm := withSplits(viewmodel.Convert(order42()), "0.3", "0.7")
	_, err := f.service.SubmitEdit(f.ctx, vm, validation.Result{})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestSubmitEditSaveFailure(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	errDB := errors.New("connection reset")

	f.tx.EXPECT().OrderGetByIDWithPaymentTerms(f.ctx, int64(42)).Return(order42(), nil)
	f.tx.EXPECT().PaymentTermGetByID(f.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64) (model.PaymentTerm, error) {
			return model.PaymentTerm{ID: id, SplitPercentage: dec("0.5")}, nil
		}).Times(2)
	f.tx.EXPECT().PaymentTermUpdate(f.ctx, gomock.Any()).Return(nil).Times(2)
	f.tx.EXPECT().OrderUpdate(f.ctx, gomock.Any()).Return(nil)
	f.tx.EXPECT().SaveChanges(f.ctx).Return(errDB)

	vm := withSplits(viewmodel.Convert(order42()), "0.25", "0.75")
	_, err := f.service.SubmitEdit(f.ctx, vm, validation.Result{})
	require.ErrorIs(t, err, errDB)
	require.NotErrorIs(t, err, service.ErrNotFound)
}

func TestShowEditEmptyPaymentTerms(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)

	order := order42()
	order.PaymentTerm1 = model.PaymentTerm{}
	order.PaymentTerm2 = model.PaymentTerm{}
	f.tx.EXPECT().OrderGetByIDWithPaymentTerms(f.ctx, int64(42)).Return(order, nil)
	f.expectViewModelFields(customer.ID)

	form, err := f.service.ShowEdit(f.ctx, 42)
	require.NoError(t, err)
	require.Equal(t, viewmodel.OrderPaymentTermViewModel{}, form.ViewModel.PaymentTerm1)
	require.Equal(t, viewmodel.OrderPaymentTermViewModel{}, form.ViewModel.PaymentTerm2)
	require.Equal(t, int64(42), form.ViewModel.OrderID)
	require.Equal(t, "/orders/42/edit", form.Render.Action)
	require.True(t, form.Validation.Valid())

	var selected []string
	for _, item := range form.ViewModel.SelectLists.CurrencyTypes {
		if item.Selected {
			selected = append(selected, item.Value)
		}
	}
	require.Equal(t, []string{"2"}, selected)
}

func TestShowEditNotFound(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	f.tx.EXPECT().OrderGetByIDWithPaymentTerms(f.ctx, int64(404)).Return(model.Order{}, store.ErrNoRows)

	_, err := f.service.ShowEdit(f.ctx, 404)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestShowNew(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	f.expectViewModelFields(customer.ID)

	form, err := f.service.ShowNew(f.ctx, customer.ID)
	require.NoError(t, err)
	require.True(t, form.ViewModel.IsNew)
	require.Equal(t, customer.ID, form.ViewModel.CustomerID)
	require.Equal(t, viewmodel.OrderPaymentTermViewModel{}, form.ViewModel.PaymentTerm1)
	require.Equal(t, viewmodel.OrderPaymentTermViewModel{}, form.ViewModel.PaymentTerm2)
	require.Equal(t, "/customers/5/orders/new", form.Render.Action)
}

func TestSubmitNew(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	f.tx.EXPECT().CustomerGetByID(f.ctx, customer.ID).Return(customer, nil)
	f.tx.EXPECT().OrderAdd(f.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, order model.Order) (model.Order, error) {
			require.Equal(t, customer.ID, order.CustomerID)
			require.Equal(t, "SO-100", order.OrderNumber)
			// условия оплаты создаются при первом редактировании
			require.False(t, order.PaymentTerm1.Persisted())
			require.False(t, order.PaymentTerm2.Persisted())
			order.ID = 100
			return order, nil
		})
	f.tx.EXPECT().SaveChanges(f.ctx).Return(nil)

	vm := withSplits(viewmodel.NewOrderViewModel(), "0.3333", "0.6667")
	vm.OrderNumber = "SO-100"
	outcome, err := f.service.SubmitNew(f.ctx, customer.ID, vm, validation.Result{})
	require.NoError(t, err)
	require.Nil(t, outcome.Form)
	require.Equal(t, &service.Redirect{Target: service.RedirectOrderEdit, ID: 100}, outcome.Redirect)
}

func TestSubmitNewInvalidSplit(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	f.tx.EXPECT().CustomerGetByID(f.ctx, customer.ID).Return(customer, nil)
	f.expectViewModelFields(customer.ID)

	vm := withSplits(viewmodel.NewOrderViewModel(), "0.5", "0.4")
	outcome, err := f.service.SubmitNew(f.ctx, customer.ID, vm, validation.Result{})
	require.NoError(t, err)
	require.Nil(t, outcome.Redirect)
	require.NotNil(t, outcome.Form)
	require.True(t, outcome.Form.ViewModel.IsNew)
	require.Equal(t, []validation.FieldError{{Field: "", Message: validation.MsgSplitPercentageTotal}},
		outcome.Form.Validation.Errors())
}

func TestSubmitNewCallerValidation(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	f.tx.EXPECT().CustomerGetByID(f.ctx, customer.ID).Return(customer, nil)
	f.expectViewModelFields(customer.ID)

	var result validation.Result
	result.Add("order_number", "is required")

	// доли верные, ошибка только из проверки полей
	vm := withSplits(viewmodel.NewOrderViewModel(), "0.4", "0.6")
	outcome, err := f.service.SubmitNew(f.ctx, customer.ID, vm, result)
	require.NoError(t, err)
	require.Nil(t, outcome.Redirect)
	require.NotNil(t, outcome.Form)
	require.True(t, outcome.Form.ViewModel.IsNew)
	require.Equal(t, []validation.FieldError{{Field: "order_number", Message: "is required"}},
		outcome.Form.Validation.Errors())
	require.Equal(t, "/customers/5/orders/new", outcome.Form.Render.Action)
}

func TestSubmitNewCustomerNotFound(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)
	f.tx.EXPECT().CustomerGetByID(f.ctx, int64(77)).Return(model.Customer{}, store.ErrNoRows)

	vm := withSplits(viewmodel.NewOrderViewModel(), "0.5", "0.5")
	_, err := f.service.SubmitNew(f.ctx, 77, vm, validation.Result{})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	f.expectTx(1)

	order := order42()
	f.tx.EXPECT().OrderGetByID(f.ctx, int64(42)).Return(order, nil)
	f.tx.EXPECT().OrderDelete(f.ctx, order).Return(nil)
	f.tx.EXPECT().SaveChanges(f.ctx).Return(nil)

	outcome, err := f.service.Delete(f.ctx, 42)
	require.NoError(t, err)
	require.Equal(t, &service.Redirect{Target: service.RedirectCustomerDetail, ID: customer.ID}, outcome.Redirect)
}

func TestInsufficientData(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ShowEdit(f.ctx, 0)
	require.ErrorIs(t, err, service.ErrInsufficientData)
	_, err = f.service.SubmitEdit(f.ctx, viewmodel.OrderViewModel{}, validation.Result{})
	require.ErrorIs(t, err, service.ErrInsufficientData)
	_, err = f.service.Delete(f.ctx, -1)
	require.ErrorIs(t, err, service.ErrInsufficientData)
}
