package suggestedclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/iurnickita/saleshub/internal/model"
)

const path = "/api/suggested-values"

// Внешний справочник подсказок для полей формы заказа
type SuggestedClient interface {
	SuggestedValueGetAll(ctx context.Context) ([]model.SuggestedValue, error)
}

type suggestedClient struct {
	serviceAddr string
	client      *resty.Client
}

func NewSuggestedClient(serviceAddr string) SuggestedClient {
	return suggestedClient{serviceAddr: serviceAddr, client: resty.New()}
}

func (client suggestedClient) SuggestedValueGetAll(ctx context.Context) ([]model.SuggestedValue, error) {
	setreq := client.client.R().SetContext(ctx)
	setreq.Method = http.MethodGet
	setreq.URL = client.serviceAddr + path
	setresp, err := setreq.Send()
	if err != nil {
		return nil, err
	}

	switch setresp.StatusCode() {
	case http.StatusOK:
		var values []model.SuggestedValue
		err = json.Unmarshal(setresp.Body(), &values)
		return values, err
	case http.StatusNoContent:
		return nil, nil
	default:
		return nil, fmt.Errorf("suggested values request status: %d", setresp.StatusCode())
	}
}
