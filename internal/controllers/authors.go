package controllers

import (
	"clarity/internal/providers"
	"clarity/internal/services"
	"net/http"
)

type addressRequest struct {
	Address string `json:"address"`
}

func (ac *ApiController) ListAuthors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.ListAuthors())
}

func (ac *ApiController) GetAuthor(w http.ResponseWriter, r *http.Request) {
	address, err := queryAddress(r, "address")
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	author, err := ac.service.GetAuthor(address)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, author)
}

func (ac *ApiController) AuthorExists(w http.ResponseWriter, r *http.Request) {
	address, err := queryAddress(r, "address")
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": ac.service.AuthorExists(address)})
}

func (ac *ApiController) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req services.CreateAuthorRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	author, err := ac.service.CreateAuthor(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("author")
	ac.logger.Infof(providers.TypePost, "Author %s registered", author.Address)
	writeJSON(w, http.StatusCreated, author)
}

func (ac *ApiController) VerifyZk(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	author, err := ac.service.VerifyZk(r.Context(), req.Address)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("zk_kyc")
	writeJSON(w, http.StatusOK, author)
}

func (ac *ApiController) Delegate(w http.ResponseWriter, r *http.Request) {
	var req services.DelegateRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	author, err := ac.service.Delegate(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("delegate")
	writeJSON(w, http.StatusOK, author)
}

func (ac *ApiController) DelegationChain(w http.ResponseWriter, r *http.Request) {
	address, err := queryAddress(r, "address")
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	view, err := ac.service.DelegationChain(address)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
