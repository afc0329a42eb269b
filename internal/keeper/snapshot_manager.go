package keeper

import (
	"clarity/internal/keeper/interfaces"
	"clarity/internal/models"
	"clarity/internal/providers"
	"clarity/internal/services"
	"context"
	"fmt"

	json "github.com/goccy/go-json"
)

// SnapshotManager encodes the ledger as compressed JSON and hands it to a
// snapshot store.
type SnapshotManager struct {
	service    services.LedgerServiceInterface
	compressor interfaces.CompressorInterface
	store      interfaces.SnapshotStoreInterface
	logger     providers.Logger
}

func NewSnapshotManager(compressor interfaces.CompressorInterface, store interfaces.SnapshotStoreInterface, service services.LedgerServiceInterface, logger providers.Logger) *SnapshotManager {
	return &SnapshotManager{
		compressor: compressor,
		store:      store,
		service:    service,
		logger:     logger,
	}
}

func (m *SnapshotManager) Save(ctx context.Context) error {
	snapshot := m.service.Snapshot()

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data, err := m.compressor.Compress(jsonData)
	if err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}
	return m.store.Save(ctx, data)
}

// Load restores the ledger from the store. An empty store leaves the ledger
// untouched.
func (m *SnapshotManager) Load(ctx context.Context) error {
	data, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	if data == nil {
		m.logger.Infof(providers.TypeApp, "No snapshot in %s, starting with an empty ledger", m.store.Name())
		return nil
	}

	decompressed, err := m.compressor.Decompress(data)
	if err != nil {
		return fmt.Errorf("decompress snapshot: %w", err)
	}
	var snapshot models.LedgerSnapshot
	if err := json.Unmarshal(decompressed, &snapshot); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if err := m.service.Restore(&snapshot); err != nil {
		return err
	}
	m.logger.Infof(providers.TypeApp, "Restored %d authors and %d articles from %s",
		len(snapshot.Authors), len(snapshot.Articles), m.store.Name())
	return nil
}

func (m *SnapshotManager) Close() error {
	return m.store.Close()
}
