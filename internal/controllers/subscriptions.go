package controllers

import (
	"clarity/internal/models"
	"clarity/internal/providers"
	"clarity/internal/services"
	"net/http"
	"strings"
)

// subscribeResponse carries the receipt and the subscriber's active
// subscriptions after the change.
type subscribeResponse struct {
	*services.SubscriptionReceipt
	Subscriptions []models.Subscription `json:"subscriptions"`
}

type unsubscribeResponse struct {
	Removed       bool                  `json:"removed"`
	Subscriptions []models.Subscription `json:"subscriptions"`
}

type keeperResponse struct {
	services.SweepResult
	Subscriptions []models.Subscription `json:"subscriptions,omitempty"`
}

func (ac *ApiController) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subscriber, err := queryAddress(r, "subscriber")
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ac.service.ListSubscriptions(subscriber))
}

func (ac *ApiController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req services.SubscribeRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	receipt, err := ac.service.Subscribe(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("subscribe")
	writeJSON(w, http.StatusOK, subscribeResponse{
		SubscriptionReceipt: receipt,
		Subscriptions:       ac.service.ListSubscriptions(req.Subscriber),
	})
}

func (ac *ApiController) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req services.SubscribeRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	removed, err := ac.service.Unsubscribe(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	if removed {
		ac.metrics.IncLedgerEvent("unsubscribe")
	}
	writeJSON(w, http.StatusOK, unsubscribeResponse{
		Removed:       removed,
		Subscriptions: ac.service.ListSubscriptions(req.Subscriber),
	})
}

// RunKeeper triggers a sweep outside the keeper schedule. With a subscriber
// query parameter the response also lists that subscriber's active
// subscriptions after the sweep.
func (ac *ApiController) RunKeeper(w http.ResponseWriter, r *http.Request) {
	subscriber := strings.TrimSpace(r.URL.Query().Get("subscriber"))

	res := ac.service.RunKeeper()
	ac.metrics.AddSweptSubscriptions(res.ExpiredSubscriptions)
	ac.logger.Infof(providers.TypeKeeper, "Manual sweep: %d subscriptions expired, %d proposals closed",
		res.ExpiredSubscriptions, res.ClosedProposals)

	resp := keeperResponse{SweepResult: res}
	if subscriber != "" {
		resp.Subscriptions = ac.service.ListSubscriptions(subscriber)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (ac *ApiController) Donate(w http.ResponseWriter, r *http.Request) {
	var req services.DonateRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	receipt, err := ac.service.Donate(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("donate")
	writeJSON(w, http.StatusOK, receipt)
}

func (ac *ApiController) DonateToProtocol(w http.ResponseWriter, r *http.Request) {
	var req services.ProtocolDonationRequest
	if err := decodeBody(w, r, &req); err != nil {
		ac.writeError(w, r, err)
		return
	}
	receipt, err := ac.service.DonateToProtocol(r.Context(), req)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	ac.metrics.IncLedgerEvent("treasury")
	writeJSON(w, http.StatusOK, receipt)
}
