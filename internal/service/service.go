package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/iurnickita/saleshub/internal/model"
	"github.com/iurnickita/saleshub/internal/paymentterm"
	"github.com/iurnickita/saleshub/internal/presentation"
	"github.com/iurnickita/saleshub/internal/service/config"
	"github.com/iurnickita/saleshub/internal/service/suggestedclient"
	"github.com/iurnickita/saleshub/internal/store"
	"github.com/iurnickita/saleshub/internal/validation"
	"github.com/iurnickita/saleshub/internal/viewmodel"
)

//go:generate mockgen -source=service.go -destination=../mocks/service.go -package=mocks

type Service interface {
	ShowEdit(ctx context.Context, orderID int64) (Form, error)
	SubmitEdit(ctx context.Context, vm viewmodel.OrderViewModel, result validation.Result) (Outcome, error)
	ShowNew(ctx context.Context, customerID int64) (Form, error)
	SubmitNew(ctx context.Context, customerID int64, vm viewmodel.OrderViewModel, result validation.Result) (Outcome, error)
	Delete(ctx context.Context, orderID int64) (Outcome, error)
}

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrNotFound         = errors.New("not found")
)

// Form - форма для отображения: введенные данные, контекст шаблона и ошибки.
type Form struct {
	ViewModel  viewmodel.OrderViewModel
	Render     presentation.RenderContext
	Validation validation.Result
}

type RedirectTarget int

const (
	RedirectOrderEdit RedirectTarget = iota + 1
	RedirectCustomerDetail
)

type Redirect struct {
	Target RedirectTarget
	ID     int64
}

// Outcome - результат отправки формы: либо форма с ошибками, либо переход.
type Outcome struct {
	Form     *Form
	Redirect *Redirect
}

type SuggestedValues interface {
	SuggestedValueGetAll(ctx context.Context) ([]model.SuggestedValue, error)
}

type Builders struct {
	ViewData     presentation.ViewDataBuilder
	SelectLists  presentation.SelectListBuilder
	CustomerPath presentation.CustomerPathBuilder
}

func DefaultBuilders() Builders {
	return Builders{
		ViewData:     presentation.NewViewDataBuilder(),
		SelectLists:  presentation.NewSelectListBuilder(model.CurrencyTypes),
		CustomerPath: presentation.NewCustomerPathBuilder(),
	}
}

var splitTotal = decimal.NewFromInt(1)

type service struct {
	store     store.Store
	suggested SuggestedValues
	builders  Builders
	zaplog    *zap.Logger
}

func NewService(cfg config.Config, store store.Store, zaplog *zap.Logger) (Service, error) {
	var suggested SuggestedValues = store
	if cfg.SuggestedValuesAddr != "" {
		suggested = suggestedclient.NewSuggestedClient(cfg.SuggestedValuesAddr)
	}

	return New(store, suggested, DefaultBuilders(), zaplog), nil
}

// New собирает сервис из готовых зависимостей.
func New(store store.Store, suggested SuggestedValues, builders Builders, zaplog *zap.Logger) Service {
	return &service{
		store:     store,
		suggested: suggested,
		builders:  builders,
		zaplog:    zaplog,
	}
}

func (service *service) ShowEdit(ctx context.Context, orderID int64) (Form, error) {
	if orderID <= 0 {
		return Form{}, ErrInsufficientData
	}

	tx, err := service.store.Begin(ctx)
	if err != nil {
		return Form{}, err
	}
	defer tx.Rollback(ctx)

	// Пустые слоты приходят нулевыми PaymentTerm, в форме всегда два условия
	order, err := tx.OrderGetByIDWithPaymentTerms(ctx, orderID)
	if err != nil {
		return Form{}, notFound("order", orderID, err)
	}

	render := service.builders.ViewData.BuildViewData(order)

	vm := viewmodel.Convert(order)
	if err = service.setViewModelFields(ctx, tx, &vm, order.CustomerID); err != nil {
		return Form{}, err
	}

	return Form{ViewModel: vm, Render: render}, nil
}

func (service *service) SubmitEdit(ctx context.Context, vm viewmodel.OrderViewModel, result validation.Result) (Outcome, error) {
	if vm.OrderID <= 0 {
		return Outcome{}, ErrInsufficientData
	}

	tx, err := service.store.Begin(ctx)
	if err != nil {
		return Outcome{}, err
	}
	defer tx.Rollback(ctx)

	// Данные формы, кроме редактируемых полей, не принимаются
	order, err := tx.OrderGetByIDWithPaymentTerms(ctx, vm.OrderID)
	if err != nil {
		return Outcome{}, notFound("order", vm.OrderID, err)
	}

	render := service.builders.ViewData.BuildViewData(order)

	checkSplitPercentages(vm, &result)
	if !result.Valid() {
		if err = service.setViewModelFields(ctx, tx, &vm, order.CustomerID); err != nil {
			return Outcome{}, err
		}
		return Outcome{Form: &Form{ViewModel: vm, Render: render, Validation: result}}, nil
	}

	viewmodel.CopyToOrder(vm, &order)

	processor := paymentterm.NewProcessor(tx)
	term1, err := service.reconcile(ctx, processor, order, "payment_term1", order.PaymentTerm1, vm.PaymentTerm1.SplitPercentage)
	if err != nil {
		return Outcome{}, err
	}
	term2, err := service.reconcile(ctx, processor, order, "payment_term2", order.PaymentTerm2, vm.PaymentTerm2.SplitPercentage)
	if err != nil {
		return Outcome{}, err
	}
	order.PaymentTerm1 = term1
	order.PaymentTerm2 = term2

	// заказ уже прочитан, ErrNoRows здесь - ссылка на отсутствующее условие оплаты
	if err = tx.OrderUpdate(ctx, order); err != nil {
		return Outcome{}, notFound("payment term of order", order.ID, err)
	}
	if err = tx.SaveChanges(ctx); err != nil {
		return Outcome{}, err
	}

	return Outcome{Redirect: &Redirect{Target: RedirectOrderEdit, ID: order.ID}}, nil
}

func (service *service) ShowNew(ctx context.Context, customerID int64) (Form, error) {
	if customerID <= 0 {
		return Form{}, ErrInsufficientData
	}

	tx, err := service.store.Begin(ctx)
	if err != nil {
		return Form{}, err
	}
	defer tx.Rollback(ctx)

	vm := viewmodel.NewOrderViewModel()
	if err = service.setViewModelFields(ctx, tx, &vm, customerID); err != nil {
		return Form{}, err
	}
	render := service.builders.ViewData.BuildViewData(model.Order{CustomerID: customerID})

	return Form{ViewModel: vm, Render: render}, nil
}

func (service *service) SubmitNew(ctx context.Context, customerID int64, vm viewmodel.OrderViewModel, result validation.Result) (Outcome, error) {
	if customerID <= 0 {
		return Outcome{}, ErrInsufficientData
	}

	tx, err := service.store.Begin(ctx)
	if err != nil {
		return Outcome{}, err
	}
	defer tx.Rollback(ctx)

	customer, err := tx.CustomerGetByID(ctx, customerID)
	if err != nil {
		return Outcome{}, notFound("customer", customerID, err)
	}

	checkSplitPercentages(vm, &result)
	if !result.Valid() {
		if err = service.setViewModelFields(ctx, tx, &vm, customerID); err != nil {
			return Outcome{}, err
		}
		render := service.builders.ViewData.BuildViewData(model.Order{CustomerID: customerID})
		return Outcome{Form: &Form{ViewModel: vm, Render: render, Validation: result}}, nil
	}

	// Условия оплаты нового заказа сохраняются первым редактированием
	var order model.Order
	viewmodel.CopyToOrder(vm, &order)
	order.CustomerID = customer.ID

	order, err = tx.OrderAdd(ctx, order)
	if err != nil {
		return Outcome{}, notFound("customer", customerID, err)
	}
	if err = tx.SaveChanges(ctx); err != nil {
		return Outcome{}, err
	}

	service.zaplog.Info("order created",
		zap.Int64("order", order.ID),
		zap.Int64("customer", order.CustomerID))

	return Outcome{Redirect: &Redirect{Target: RedirectOrderEdit, ID: order.ID}}, nil
}

func (service *service) Delete(ctx context.Context, orderID int64) (Outcome, error) {
	if orderID <= 0 {
		return Outcome{}, ErrInsufficientData
	}

	tx, err := service.store.Begin(ctx)
	if err != nil {
		return Outcome{}, err
	}
	defer tx.Rollback(ctx)

	order, err := tx.OrderGetByID(ctx, orderID)
	if err != nil {
		return Outcome{}, notFound("order", orderID, err)
	}
	// После удаления заказа клиента уже не узнать
	customerID := order.CustomerID

	if err = tx.OrderDelete(ctx, order); err != nil {
		return Outcome{}, notFound("order", orderID, err)
	}
	if err = tx.SaveChanges(ctx); err != nil {
		return Outcome{}, err
	}

	service.zaplog.Info("order deleted",
		zap.Int64("order", orderID),
		zap.Int64("customer", customerID))

	return Outcome{Redirect: &Redirect{Target: RedirectCustomerDetail, ID: customerID}}, nil
}

// Точное сравнение десятичных дробей, без допуска.
// Доля с большим числом знаков округлилась бы при записи и сумма перестала бы быть 1.
func checkSplitPercentages(vm viewmodel.OrderViewModel, result *validation.Result) {
	splits := []struct {
		field string
		value decimal.Decimal
	}{
		{"payment_term1.split_percentage", vm.PaymentTerm1.SplitPercentage},
		{"payment_term2.split_percentage", vm.PaymentTerm2.SplitPercentage},
	}
	for _, split := range splits {
		if !split.value.Equal(split.value.Round(model.SplitPercentageScale)) {
			result.Add(split.field, validation.MsgSplitPercentageScale)
		}
	}
	if !viewmodel.SplitTotal(vm).Equal(splitTotal) {
		result.Add("", validation.MsgSplitPercentageTotal)
	}
}

func (service *service) reconcile(ctx context.Context,
	processor *paymentterm.Processor,
	order model.Order,
	slot string,
	stored model.PaymentTerm,
	splitPercentage decimal.Decimal) (model.PaymentTerm, error) {

	term, err := processor.Process(ctx, paymentterm.CandidateFor(stored, splitPercentage))
	if err != nil {
		if errors.Is(err, paymentterm.ErrNotFound) {
			return model.PaymentTerm{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return model.PaymentTerm{}, err
	}

	service.zaplog.Debug("payment term reconciled",
		zap.Int64("order", order.ID),
		zap.String("slot", slot),
		zap.Int64("payment_term", term.ID),
		zap.Bool("inserted", !stored.Persisted()),
		zap.String("split_percentage", term.SplitPercentage.String()))

	return term, nil
}

func (service *service) setViewModelFields(ctx context.Context, tx store.Tx, vm *viewmodel.OrderViewModel, customerID int64) error {
	customer, err := tx.CustomerGetByID(ctx, customerID)
	if err != nil {
		return notFound("customer", customerID, err)
	}

	suggested, err := service.suggested.SuggestedValueGetAll(ctx)
	if err != nil {
		return fmt.Errorf("suggested values: %w", err)
	}

	vm.CustomerID = customerID
	vm.CustomerPath = service.builders.CustomerPath.BuildCustomerPath(customer.SellingCompany, customer)
	vm.SuggestedValues = suggested
	vm.Customer = &viewmodel.CustomerViewModel{
		ID:                 customer.ID,
		Name:               customer.Name,
		SellingCompanyName: customer.SellingCompany.Name,
	}
	vm.SelectLists = service.builders.SelectLists.BuildSelectLists(*vm)
	return nil
}

// store.ErrNoRows превращается в ErrNotFound, остальные ошибки без изменений
func notFound(entity string, id int64, err error) error {
	if errors.Is(err, store.ErrNoRows) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
	}
	return err
}
