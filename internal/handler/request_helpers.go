package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/scribble/internal/logger"
	"github.com/osse101/scribble/internal/metrics"
	"github.com/osse101/scribble/internal/validation"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
//
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
//
//	var req inventory.AddItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	return validateRequest(r, w, req, actionName)
}

func validateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	if err := validation.ValidateStruct(req); err != nil {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Invalid %s request", actionName), "error", validation.SummarizeValidationError(err))
		metrics.ValidationFailures.WithLabelValues(actionName).Inc()
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validation.FormatValidationError(err),
		})
		return err
	}
	return nil
}
