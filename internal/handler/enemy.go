package handler

import (
	"net/http"

	"github.com/osse101/scribble/internal/enemy"
	"github.com/osse101/scribble/internal/logger"
)

// HandleAddEnemy appends an entry to the enemy log
func HandleAddEnemy(svc enemy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req enemy.AddEnemyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add enemy"); err != nil {
			return
		}

		e, err := svc.Add(r.Context(), req)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Failed to log enemy", "error", err, "enemy", req.Name)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgEnemyLogged, Data: e})
	}
}

// HandleListEnemies returns the enemy log
func HandleListEnemies(svc enemy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enemies, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list enemies", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: enemies})
	}
}
