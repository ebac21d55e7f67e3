package common

import (
	"encoding/json"
	"net/http"

	"foodbank/internal/entities"
	"foodbank/internal/generated/dto"
	"foodbank/internal/service/parcel"
	"foodbank/pkg/logger"
)

const (
	HeaderUserID         = "X-User-ID"
	HeaderAcceptLanguage = "Accept-Language"
)

func WriteJSON(w http.ResponseWriter, log logger.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func WriteError(w http.ResponseWriter, log logger.Logger, status int, message string) {
	WriteJSON(w, log, status, dto.ErrorResponse{Error: message})
}

// WriteValidationErrors отвечает 422 со списком нарушений на языке из Accept-Language.
func WriteValidationErrors(w http.ResponseWriter, r *http.Request, log logger.Logger, errs []entities.ValidationError) {
	locale := r.Header.Get(HeaderAcceptLanguage)

	body := dto.ValidationErrorResponse{
		Errors: make([]dto.ValidationError, 0, len(errs)),
	}
	for _, e := range errs {
		body.Errors = append(body.Errors, dto.ValidationError{
			Field:   e.Field,
			Code:    e.Code.String(),
			Message: parcel.FormatValidationError(e, "", locale),
			Index:   e.Index,
			Details: ValidationDetailsToDTO(e.Details),
		})
	}

	WriteJSON(w, log, http.StatusUnprocessableEntity, body)
}

// UserID - идентификатор пользователя, проставленный прокси перед сервисом.
func UserID(r *http.Request) *string {
	if id := r.Header.Get(HeaderUserID); id != "" {
		return &id
	}
	return nil
}

// UserIDOrSystem нужен операциям, где автор обязателен.
func UserIDOrSystem(r *http.Request) string {
	if id := UserID(r); id != nil {
		return *id
	}
	return entities.SystemActor
}
