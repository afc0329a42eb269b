package keeper

import (
	"clarity/internal/structures"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.snap")
	store := NewFileStore(path)

	require.NoError(t, store.Save(context.Background(), []byte("first")))
	require.NoError(t, store.Save(context.Background(), []byte("second")))

	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.snap"))
	data, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStore_CanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.snap")
	store := NewFileStore(path)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, []byte("x")), context.Canceled)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNewSnapshotStore(t *testing.T) {
	conf := &structures.Config{Persistence: structures.Persistence{Driver: "file", FilePath: "/tmp/ledger.snap"}}
	store, err := NewSnapshotStore(conf)
	require.NoError(t, err)
	assert.Equal(t, "file /tmp/ledger.snap", store.Name())

	conf.Persistence.Driver = "redis"
	conf.Persistence.Redis = structures.RedisConfig{Addr: "127.0.0.1:6379", Key: "clarity:ledger"}
	store, err = NewSnapshotStore(conf)
	require.NoError(t, err)
	assert.Equal(t, "redis 127.0.0.1:6379/clarity:ledger", store.Name())
	assert.NoError(t, store.Close())

	conf.Persistence.Driver = "s3"
	_, err = NewSnapshotStore(conf)
	assert.Error(t, err)
}

func TestRedisStore_Unreachable(t *testing.T) {
	store := NewRedisStore(structures.RedisConfig{Addr: "127.0.0.1:1", Key: "clarity:test"})
	defer store.Close()

	err := store.Save(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis set clarity:test")
}

func TestRedisStore_SaveLoad(t *testing.T) {
	addr := os.Getenv("CLARITY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CLARITY_TEST_REDIS_ADDR not set")
	}
	store := NewRedisStore(structures.RedisConfig{Addr: addr, Key: "clarity:test:" + t.Name()})
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), []byte("snapshot")))
	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), data)
}
