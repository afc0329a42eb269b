package controllers

import (
	"clarity/internal/services"
	"net/http"
)

type deleteDraftRequest struct {
	ID     string `json:"id"`
	Author string `json:"author"`
}

func (ac *ApiController) ListDrafts(w http.ResponseWriter, r *http.Request) {
	author, err := queryAddress(r, "author")
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ac.service.ListDrafts(author))
}

func (ac *ApiController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req services.SaveDraftRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	d, err := ac.service.SaveDraft(req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// DeleteDraft succeeds whether or not the draft existed.
func (ac *ApiController) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	var req deleteDraftRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.service.DeleteDraft(req.ID, req.Author)
	w.WriteHeader(http.StatusNoContent)
}
