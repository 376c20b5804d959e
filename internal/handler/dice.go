package handler

import (
	"net/http"

	"github.com/osse101/scribble/internal/dice"
	"github.com/osse101/scribble/internal/logger"
)

// RollResponse is a dice roll with its display form
type RollResponse struct {
	*dice.Result
	Expression string `json:"expression"`
	Summary    string `json:"summary"`
}

// HandleRoll rolls dice
func HandleRoll(roller *dice.Roller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dice.RollRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Roll dice"); err != nil {
			return
		}

		res, err := roller.Roll(req.Count, req.Sides)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		logger.FromContext(r.Context()).Info("Dice rolled", "expression", res.Expression(), "total", res.Total, "critical", res.Critical)
		respondJSON(w, http.StatusOK, RollResponse{Result: res, Expression: res.Expression(), Summary: res.String()})
	}
}
