package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/iurnickita/saleshub/internal/auth"
	"github.com/iurnickita/saleshub/internal/handler/config"
	"github.com/iurnickita/saleshub/internal/logger"
	"github.com/iurnickita/saleshub/internal/presentation"
	"github.com/iurnickita/saleshub/internal/service"
	"github.com/iurnickita/saleshub/internal/validation"
	"github.com/iurnickita/saleshub/internal/viewmodel"
)

func Serve(cfg config.Config, auth auth.Auth, service service.Service, zaplog *zap.Logger) error {
	h := newHandler(auth, service, zaplog)
	router := h.newRouter()

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	return srv.ListenAndServe()
}

type handler struct {
	auth    auth.Auth
	service service.Service
	zaplog  *zap.Logger
}

func newHandler(auth auth.Auth, service service.Service, zaplog *zap.Logger) *handler {
	return &handler{
		auth:    auth,
		service: service,
		zaplog:  zaplog,
	}
}

func (h *handler) newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer,
		logger.RequestLogMdlw(h.zaplog),
		middleware.Compress(5, "application/json"),
		h.auth.Middleware)

	r.Get("/orders/{id}/edit", h.ShowEdit)
	r.Post("/orders/{id}/edit", h.SubmitEdit)
	r.Post("/orders/{id}/delete", h.Delete)
	r.Get("/customers/{id}/orders/new", h.ShowNew)
	r.Post("/customers/{id}/orders/new", h.SubmitNew)

	return r
}

type FormJSONResponse struct {
	Order  viewmodel.OrderViewModel   `json:"order"`
	Render presentation.RenderContext `json:"render"`
	Errors []validation.FieldError    `json:"errors,omitempty"`
}

func (h *handler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := h.service.ShowEdit(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeForm(w, http.StatusOK, form)
}

func (h *handler) SubmitEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vm, result, err := decodeForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// идентификатор заказа берется из адреса
	vm.OrderID = id

	outcome, err := h.service.SubmitEdit(r.Context(), vm, result)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeOutcome(w, r, outcome)
}

func (h *handler) ShowNew(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := h.service.ShowNew(r.Context(), customerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeForm(w, http.StatusOK, form)
}

func (h *handler) SubmitNew(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vm, result, err := decodeForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := h.service.SubmitNew(r.Context(), customerID, vm, result)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeOutcome(w, r, outcome)
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeOutcome(w, r, outcome)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

// Проверка полей выполняется здесь, правило суммы долей - в сервисе
func decodeForm(r *http.Request) (viewmodel.OrderViewModel, validation.Result, error) {
	var vm viewmodel.OrderViewModel
	if err := json.NewDecoder(r.Body).Decode(&vm); err != nil {
		return viewmodel.OrderViewModel{}, validation.Result{}, err
	}

	result, err := validation.Struct(vm)
	if err != nil {
		return viewmodel.OrderViewModel{}, validation.Result{}, err
	}
	return vm, result, nil
}

func (h *handler) writeOutcome(w http.ResponseWriter, r *http.Request, outcome service.Outcome) {
	if outcome.Form != nil {
		h.writeForm(w, http.StatusUnprocessableEntity, *outcome.Form)
		return
	}
	if outcome.Redirect == nil {
		http.Error(w, "empty outcome", http.StatusInternalServerError)
		return
	}

	// redirect-after-post: обновление страницы не отправит форму повторно
	http.Redirect(w, r, RedirectURL(*outcome.Redirect), http.StatusSeeOther)
}

func RedirectURL(redirect service.Redirect) string {
	switch redirect.Target {
	case service.RedirectCustomerDetail:
		return fmt.Sprintf("/customers/%d", redirect.ID)
	default:
		return fmt.Sprintf("/orders/%d/edit", redirect.ID)
	}
}

func (h *handler) writeForm(w http.ResponseWriter, status int, form service.Form) {
	responseJSON, err := json.Marshal(FormJSONResponse{
		Order:  form.ViewModel,
		Render: form.Render,
		Errors: form.Validation.Errors(),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(responseJSON)
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInsufficientData):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.zaplog.Error("request failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
