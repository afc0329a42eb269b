package interfaces

import "time"

type SchedulerInterface interface {
	Init()
	Stop()
	Restore() error
	Persist() error
	Stats() KeeperStats
}

// KeeperStats counts what the scheduler did since start.
type KeeperStats struct {
	Sweeps               int64     `json:"sweeps"`
	ExpiredSubscriptions int64     `json:"expiredSubscriptions"`
	ClosedProposals      int64     `json:"closedProposals"`
	Saves                int64     `json:"saves"`
	FailedSaves          int64     `json:"failedSaves"`
	LastSweep            time.Time `json:"lastSweep"`
	LastSave             time.Time `json:"lastSave"`
}
