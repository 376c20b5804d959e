package handler

import (
	"net/http"

	"github.com/osse101/scribble/internal/logger"
	"github.com/osse101/scribble/internal/stats"
)

// HandleAdjustStat moves a character stat up or down
func HandleAdjustStat(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req stats.AdjustStatRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Adjust stat"); err != nil {
			return
		}

		stat, err := svc.Adjust(r.Context(), req.Name, req.Delta)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Failed to adjust stat", "error", err, "stat", req.Name)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgStatAdjusted, Data: stat})
	}
}

// HandleListStats returns every character stat
func HandleListStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list stats", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: list})
	}
}
