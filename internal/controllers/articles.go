package controllers

import (
	"clarity/internal/providers"
	"clarity/internal/services"
	"net/http"
	"strings"
)

func (ac *ApiController) ListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	views, err := ac.service.ListArticles(q.Get("sort"), q.Get("tag"))
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (ac *ApiController) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r, "id")
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	view, err := ac.service.GetArticle(id)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (ac *ApiController) GetTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Tags())
}

func (ac *ApiController) Publish(w http.ResponseWriter, r *http.Request) {
	var req services.PublishRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	view, err := ac.service.Publish(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("publish")
	ac.logger.Infof(providers.TypePost, "Article #%d published by %s", view.ID, view.AuthorAddress)
	writeJSON(w, http.StatusCreated, view)
}

func (ac *ApiController) Verify(w http.ResponseWriter, r *http.Request) {
	var req services.VerifyRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	view, err := ac.service.Verify(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("verify")
	writeJSON(w, http.StatusOK, view)
}

func (ac *ApiController) Flag(w http.ResponseWriter, r *http.Request) {
	var req services.FlagRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	view, err := ac.service.Flag(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("flag")
	ac.logger.Infof(providers.TypePost, "Article #%d flagged by %s", view.ID, req.Staker)
	writeJSON(w, http.StatusOK, view)
}

// GetContent serves a stored blob. Content ids are derived from the bytes,
// so a cached body never goes stale.
func (ac *ApiController) GetContent(w http.ResponseWriter, r *http.Request) {
	cid := strings.TrimSpace(r.URL.Query().Get("cid"))
	ac.serveCached(w, r, "content:"+cid, "application/octet-stream", func() ([]byte, error) {
		return ac.service.GetContent(r.Context(), cid)
	})
}
