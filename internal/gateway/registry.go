package gateway

import (
	"clarity/internal/structures"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TxKind string

const (
	TxPublish     TxKind = "publish"
	TxVerify      TxKind = "verify"
	TxFlag        TxKind = "flag"
	TxDonate      TxKind = "donate"
	TxTreasury    TxKind = "treasury"
	TxVote        TxKind = "vote"
	TxProposal    TxKind = "proposal"
	TxSubscribe   TxKind = "subscribe"
	TxUnsubscribe TxKind = "unsubscribe"
	TxDelegate    TxKind = "delegate"
	TxZkKyc       TxKind = "zk-kyc"
)

// TxHandle identifies a confirmed registry transaction.
type TxHandle struct {
	Hash        string    `json:"hash"`
	Kind        TxKind    `json:"kind"`
	From        string    `json:"from"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

type RegistryInterface interface {
	// Submit blocks until the transaction is confirmed or ctx is done.
	Submit(ctx context.Context, kind TxKind, from string) (TxHandle, error)
}

// SimulatedRegistry confirms every transaction after a fixed delay.
type SimulatedRegistry struct {
	latency   time.Duration
	zkLatency time.Duration
}

func NewRegistry(conf *structures.Config) RegistryInterface {
	return &SimulatedRegistry{
		latency:   conf.Registry.Latency,
		zkLatency: conf.Registry.ZkLatency,
	}
}

func (r *SimulatedRegistry) Submit(ctx context.Context, kind TxKind, from string) (TxHandle, error) {
	delay := r.latency
	if kind == TxZkKyc {
		delay = r.zkLatency
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return TxHandle{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return TxHandle{}, err
	}

	return TxHandle{
		Hash:        txHash(),
		Kind:        kind,
		From:        from,
		ConfirmedAt: time.Now().UTC(),
	}, nil
}

// txHash renders 32 random bytes as a 0x-prefixed hex string.
func txHash() string {
	a, b := uuid.New(), uuid.New()
	return "0x" + strings.ReplaceAll(a.String()+b.String(), "-", "")
}
