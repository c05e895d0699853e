// Package presentation собирает данные для отображения формы заказа.
// На бизнес-решения эти данные не влияют.
package presentation

import (
	"fmt"
	"strconv"

	"github.com/iurnickita/saleshub/internal/model"
	"github.com/iurnickita/saleshub/internal/viewmodel"
)

// RenderContext передается шаблону вместе с формой и не изменяется после сборки.
type RenderContext struct {
	Title      string `json:"title"`
	Action     string `json:"action"`
	OrderID    int64  `json:"order_id,omitempty"`
	CustomerID int64  `json:"customer_id"`
}

type ViewDataBuilder interface {
	BuildViewData(order model.Order) RenderContext
}

type SelectListBuilder interface {
	BuildSelectLists(vm viewmodel.OrderViewModel) viewmodel.SelectLists
}

type CustomerPathBuilder interface {
	BuildCustomerPath(sellingCompany model.SellingCompany, customer model.Customer) string
}

type viewDataBuilder struct{}

func NewViewDataBuilder() ViewDataBuilder {
	return viewDataBuilder{}
}

func (viewDataBuilder) BuildViewData(order model.Order) RenderContext {
	if order.ID == 0 {
		return RenderContext{
			Title:      "New Order",
			Action:     fmt.Sprintf("/customers/%d/orders/new", order.CustomerID),
			CustomerID: order.CustomerID,
		}
	}
	return RenderContext{
		Title:      "Order " + order.OrderNumber,
		Action:     fmt.Sprintf("/orders/%d/edit", order.ID),
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
	}
}

type selectListBuilder struct {
	currencyTypes []model.CurrencyType
}

func NewSelectListBuilder(currencyTypes []model.CurrencyType) SelectListBuilder {
	return selectListBuilder{currencyTypes: currencyTypes}
}

func (b selectListBuilder) BuildSelectLists(vm viewmodel.OrderViewModel) viewmodel.SelectLists {
	var lists viewmodel.SelectLists
	for _, currency := range b.currencyTypes {
		lists.CurrencyTypes = append(lists.CurrencyTypes, viewmodel.SelectListItem{
			Value:    strconv.FormatInt(currency.ID, 10),
			Text:     currency.Code + " - " + currency.Name,
			Selected: currency.ID == vm.ContractCurrencyTypeID,
		})
	}
	lists.IsActive = yesNo(vm.IsActive)
	lists.PaymentTermsOverride = yesNo(vm.PaymentTermsOverride)
	return lists
}

func yesNo(selected bool) []viewmodel.SelectListItem {
	return []viewmodel.SelectListItem{
		{Value: "true", Text: "Yes", Selected: selected},
		{Value: "false", Text: "No", Selected: !selected},
	}
}

type customerPathBuilder struct{}

func NewCustomerPathBuilder() CustomerPathBuilder {
	return customerPathBuilder{}
}

func (customerPathBuilder) BuildCustomerPath(sellingCompany model.SellingCompany, customer model.Customer) string {
	if sellingCompany.Name == "" {
		return customer.Name
	}
	return sellingCompany.Name + " / " + customer.Name
}
