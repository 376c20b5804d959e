package handler

import (
	"net/http"

	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/search"
)

// RecordView is one search hit with every field in display order
type RecordView struct {
	Name   string         `json:"name"`
	Fields []domain.Field `json:"fields"`
}

// SearchResponse lists the records that matched
type SearchResponse struct {
	Collection string       `json:"collection"`
	Records    []RecordView `json:"records"`
}

// HandleSearch finds records by exact name in one collection
// Query: ?collection=inventory|enemies|stats&name=...
func HandleSearch(svc search.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := search.Request{
			Collection: r.URL.Query().Get("collection"),
			Name:       r.URL.Query().Get("name"),
		}
		if err := validateRequest(r, w, &req, "Search"); err != nil {
			return
		}

		records, err := svc.FindByName(r.Context(), domain.CollectionID(req.Collection), req.Name)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		resp := SearchResponse{Collection: req.Collection, Records: make([]RecordView, 0, len(records))}
		for _, rec := range records {
			resp.Records = append(resp.Records, RecordView{Name: rec.RecordName(), Fields: rec.Fields()})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
