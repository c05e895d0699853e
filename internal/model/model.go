package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Заказы

type Order struct {
	ID                     int64
	CustomerID             int64
	OrderNumber            string
	ContractWeight         decimal.Decimal
	ContractAmount         decimal.Decimal
	OrderDate              time.Time
	IsActive               bool
	ContractCurrencyTypeID int64
	PaymentTermsOverride   bool
	IntentComments         string
	InvoiceComments        string
	HeaderComments         string
	FooterComments         string
	// Пустой слот - нулевое значение PaymentTerm, не nil
	PaymentTerm1 PaymentTerm
	PaymentTerm2 PaymentTerm
}

// Условия оплаты

// SplitPercentageScale - число знаков доли после запятой, как в колонке payment_term.split_percentage.
const SplitPercentageScale = 6

type PaymentTerm struct {
	ID              int64
	SplitPercentage decimal.Decimal
}

// Persisted сообщает, существует ли запись в базе.
func (term PaymentTerm) Persisted() bool {
	return term.ID > 0
}

// Клиенты

type Customer struct {
	ID             int64
	Name           string
	SellingCompany SellingCompany
}
type SellingCompany struct {
	ID   int64
	Name string
}

// Справочники

type SuggestedValue struct {
	ID    int64  `json:"id"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type CurrencyType struct {
	ID   int64
	Code string
	Name string
}

var CurrencyTypes = []CurrencyType{
	{ID: 1, Code: "USD", Name: "US Dollar"},
	{ID: 2, Code: "EUR", Name: "Euro"},
	{ID: 3, Code: "CAD", Name: "Canadian Dollar"},
	{ID: 4, Code: "MXN", Name: "Mexican Peso"},
}
