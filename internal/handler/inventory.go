package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/inventory"
	"github.com/osse101/scribble/internal/logger"
)

// HandleAddItem adds a new item or merges the count into an existing one
func HandleAddItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req inventory.AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
			return
		}

		result, err := svc.AddOrMerge(r.Context(), req)
		if err != nil {
			log.Warn("Failed to add item", "error", err, "item", req.Name)
			respondServiceError(w, err)
			return
		}

		msg := MsgItemAdded
		if result.Merged {
			msg = MsgItemMerged
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: msg, Data: result})
	}
}

// HandleRemoveItem decrements or deletes every matching item. When a key item
// is protected the outcome for the other records is still returned.
func HandleRemoveItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req inventory.RemoveItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove item"); err != nil {
			return
		}

		result, err := svc.RemoveOrDecrement(r.Context(), req)
		if errors.Is(err, domain.ErrKeyItemProtected) {
			log.Warn("Key item removal refused", "item", req.Name)
			respondJSON(w, http.StatusConflict, DataResponse{Message: ErrMsgKeyItemError, Data: result})
			return
		}
		if err != nil {
			log.Warn("Failed to remove item", "error", err, "item", req.Name)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemsRemoved, Data: result})
	}
}

// HandleListInventory returns every inventory record
func HandleListInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list inventory", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}
