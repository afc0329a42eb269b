package controllers

import (
	"clarity/internal/services"
	"net/http"
	"strings"
)

func (ac *ApiController) ListProposals(w http.ResponseWriter, r *http.Request) {
	viewer := strings.TrimSpace(r.URL.Query().Get("viewer"))
	writeJSON(w, http.StatusOK, ac.service.ListProposals(viewer))
}

func (ac *ApiController) GetProposal(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r, "id")
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	p, err := ac.service.GetProposal(id, strings.TrimSpace(r.URL.Query().Get("viewer")))
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (ac *ApiController) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var req services.CreateProposalRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	p, err := ac.service.CreateProposal(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("proposal")
	writeJSON(w, http.StatusCreated, p)
}

func (ac *ApiController) CastVote(w http.ResponseWriter, r *http.Request) {
	var req services.VoteRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	p, err := ac.service.CastVote(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("vote")
	writeJSON(w, http.StatusOK, p)
}
