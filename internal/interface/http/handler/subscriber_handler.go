package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/ecohero/storefront-backend/internal/domain/repository"
	"github.com/ecohero/storefront-backend/internal/interface/presenter"
	"github.com/ecohero/storefront-backend/internal/usecase"
)

// SubscriberHandler adapts HTTP requests to use case calls.
type SubscriberHandler struct {
	usecase   usecase.SubscriberUsecase
	presenter *presenter.SubscriberPresenter
}

func NewSubscriberHandler(usecase usecase.SubscriberUsecase, presenter *presenter.SubscriberPresenter) *SubscriberHandler {
	return &SubscriberHandler{usecase: usecase, presenter: presenter}
}

type subscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

func (h *SubscriberHandler) ListOrSubscribe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		subs, err := h.usecase.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, h.presenter.ToList(subs))
	case http.MethodPost:
		var input subscribeRequest
		if err := decodeJSON(r, &input); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		sub, err := h.usecase.Subscribe(r.Context(), usecase.SubscribeInput{Email: input.Email, Source: input.Source})
		if err != nil {
			if err == usecase.ErrAlreadySubscribed {
				writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusCreated, h.presenter.ToResponse(sub))
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	}
}

// Unsubscribe handles DELETE /api/v1/newsletter/{email}.
func (h *SubscriberHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	email, err := parseEmail(r.URL.Path)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing email"})
		return
	}

	if err := h.usecase.Unsubscribe(r.Context(), email); err != nil {
		if err == repository.ErrNotFound {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "unsubscribed"})
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	return nil
}

func parseEmail(path string) (string, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return "", errors.New("missing email")
	}
	raw := segments[len(segments)-1]
	email, err := url.PathUnescape(raw)
	if err != nil || email == "" {
		return "", errors.New("missing email")
	}
	return email, nil
}
