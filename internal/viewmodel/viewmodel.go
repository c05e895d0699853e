package viewmodel

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iurnickita/saleshub/internal/model"
)

// Форма заказа

type OrderViewModel struct {
	OrderID                int64                     `json:"order_id"`
	CustomerID             int64                     `json:"customer_id"`
	OrderNumber            string                    `json:"order_number" validate:"required,max=50"`
	ContractWeight         decimal.Decimal           `json:"contract_weight" validate:"gte=0"`
	ContractAmount         decimal.Decimal           `json:"contract_amount" validate:"gte=0"`
	OrderDate              time.Time                 `json:"order_date" validate:"required"`
	IsActive               bool                      `json:"is_active"`
	ContractCurrencyTypeID int64                     `json:"contract_currency_type_id"`
	PaymentTermsOverride   bool                      `json:"payment_terms_override"`
	IntentComments         string                    `json:"intent_comments" validate:"max=2000"`
	InvoiceComments        string                    `json:"invoice_comments" validate:"max=2000"`
	HeaderComments         string                    `json:"header_comments" validate:"max=2000"`
	FooterComments         string                    `json:"footer_comments" validate:"max=2000"`
	PaymentTerm1           OrderPaymentTermViewModel `json:"payment_term1"`
	PaymentTerm2           OrderPaymentTermViewModel `json:"payment_term2"`
	IsNew                  bool                      `json:"is_new"`

	// Только для отображения
	Customer        *CustomerViewModel     `json:"customer,omitempty" validate:"-"`
	CustomerPath    string                 `json:"customer_path,omitempty" validate:"-"`
	SuggestedValues []model.SuggestedValue `json:"suggested_values,omitempty" validate:"-"`
	SelectLists     SelectLists            `json:"select_lists" validate:"-"`
}

type OrderPaymentTermViewModel struct {
	ID              int64           `json:"id"`
	SplitPercentage decimal.Decimal `json:"split_percentage" validate:"gte=0,lte=1"`
}

type CustomerViewModel struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	SellingCompanyName string `json:"selling_company_name"`
}

type SelectLists struct {
	CurrencyTypes        []SelectListItem `json:"currency_types,omitempty"`
	IsActive             []SelectListItem `json:"is_active,omitempty"`
	PaymentTermsOverride []SelectListItem `json:"payment_terms_override,omitempty"`
}

type SelectListItem struct {
	Value    string `json:"value"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

// NewOrderViewModel - пустая форма нового заказа с двумя пустыми слотами оплаты.
func NewOrderViewModel() OrderViewModel {
	return OrderViewModel{
		PaymentTerm1: OrderPaymentTermViewModel{},
		PaymentTerm2: OrderPaymentTermViewModel{},
		IsNew:        true,
	}
}

// Convert переносит заказ в форму. Нулевые условия оплаты переносятся как есть.
func Convert(order model.Order) OrderViewModel {
	return OrderViewModel{
		OrderID:                order.ID,
		CustomerID:             order.CustomerID,
		OrderNumber:            order.OrderNumber,
		ContractWeight:         order.ContractWeight,
		ContractAmount:         order.ContractAmount,
		OrderDate:              order.OrderDate,
		IsActive:               order.IsActive,
		ContractCurrencyTypeID: order.ContractCurrencyTypeID,
		PaymentTermsOverride:   order.PaymentTermsOverride,
		IntentComments:         order.IntentComments,
		InvoiceComments:        order.InvoiceComments,
		HeaderComments:         order.HeaderComments,
		FooterComments:         order.FooterComments,
		PaymentTerm1:           convertPaymentTerm(order.PaymentTerm1),
		PaymentTerm2:           convertPaymentTerm(order.PaymentTerm2),
	}
}

func convertPaymentTerm(term model.PaymentTerm) OrderPaymentTermViewModel {
	return OrderPaymentTermViewModel{
		ID:              term.ID,
		SplitPercentage: term.SplitPercentage,
	}
}

// CopyToOrder переносит редактируемые поля формы в заказ.
// Идентификатор, клиент и условия оплаты не трогаются.
func CopyToOrder(vm OrderViewModel, order *model.Order) {
	order.OrderNumber = vm.OrderNumber
	order.ContractWeight = vm.ContractWeight
	order.ContractAmount = vm.ContractAmount
	order.OrderDate = vm.OrderDate
	order.IsActive = vm.IsActive
	// Валюта из формы не принимается, остается сохраненное значение
	order.PaymentTermsOverride = vm.PaymentTermsOverride
	order.IntentComments = vm.IntentComments
	order.InvoiceComments = vm.InvoiceComments
	order.FooterComments = vm.FooterComments
	order.HeaderComments = vm.HeaderComments
}

func SplitTotal(vm OrderViewModel) decimal.Decimal {
	return vm.PaymentTerm1.SplitPercentage.Add(vm.PaymentTerm2.SplitPercentage)
}
