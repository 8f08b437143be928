package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/alinanorakari/supersimple/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewMemoryStore(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	defer store.Close()

	assert.NotNil(t, store)
}

func TestNewFileStore(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewFileStore(tmpDir + "/test.db")
	require.NoError(t, err)
	defer store.Close()

	assert.NotNil(t, store)
}

func TestFileStorePersistsSlots(t *testing.T) {
	path := t.TempDir() + "/face.db"
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.WriteSlot(ctx, 0, 0xFF0000))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.ReadSlot(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0xFF0000), value)
}

// Slot tests

func TestWriteAndReadSlot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.WriteSlot(ctx, 3, 0x555555)
	require.NoError(t, err)

	value, err := store.ReadSlot(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(0x555555), value)
}

func TestReadSlotNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.ReadSlot(ctx, 6)
	assert.True(t, storage.IsNotFound(err))
	assert.EqualError(t, err, "slot not found: 6")
}

func TestOverwriteSlot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.WriteSlot(ctx, 5, 1)
	_ = store.WriteSlot(ctx, 5, 0)

	value, err := store.ReadSlot(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int32(0), value)
}

func TestDeleteSlot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.WriteSlot(ctx, 1, 0xFFFFFF)

	err := store.DeleteSlot(ctx, 1)
	require.NoError(t, err)

	_, err = store.ReadSlot(ctx, 1)
	assert.True(t, storage.IsNotFound(err))
}

func TestSlots(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.WriteSlot(ctx, 0, 0x000000)
	_ = store.WriteSlot(ctx, 6, 12)

	slots, err := store.Slots(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int32{0: 0, 6: 12}, slots)
}

func TestNegativeSlotValue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.WriteSlot(ctx, 2, -1)

	value, err := store.ReadSlot(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), value)
}

// Device tests

func TestSaveAndGetDevice(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	device := storage.NewDevice("dev-1", "192.168.1.100", "Test Device", "pixoo64")

	err := store.SaveDevice(ctx, device)
	require.NoError(t, err)

	retrieved, err := store.GetDevice(ctx, "dev-1")
	require.NoError(t, err)

	assert.Equal(t, device.ID, retrieved.ID)
	assert.Equal(t, device.IP, retrieved.IP)
	assert.Equal(t, device.Name, retrieved.Name)
	assert.Equal(t, device.Type, retrieved.Type)
}

func TestGetDeviceNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetDevice(ctx, "nonexistent")
	assert.True(t, storage.IsNotFound(err))
}

func TestGetDevices(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.SaveDevice(ctx, storage.NewDevice("dev-1", "192.168.1.100", "Device 1", "pixoo64"))
	_ = store.SaveDevice(ctx, storage.NewDevice("dev-2", "192.168.1.101", "Device 2", "pixoo64"))

	devices, err := store.GetDevices(ctx)
	require.NoError(t, err)

	assert.Len(t, devices, 2)
}

func TestDeleteDevice(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	device := storage.NewDevice("dev-1", "192.168.1.100", "Test Device", "pixoo64")
	_ = store.SaveDevice(ctx, device)

	err := store.DeleteDevice(ctx, "dev-1")
	require.NoError(t, err)

	_, err = store.GetDevice(ctx, "dev-1")
	assert.True(t, storage.IsNotFound(err))
}

// Frame cache tests

func TestCacheAndGetFrame(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	frame := &storage.CachedFrame{
		Width:       2,
		Height:      1,
		FrameData:   []byte{1, 2, 3, 4, 5, 6},
		GeneratedAt: time.Now(),
	}

	err := store.CacheFrame(ctx, frame)
	require.NoError(t, err)

	retrieved, err := store.GetCachedFrame(ctx)
	require.NoError(t, err)

	assert.Equal(t, frame.FrameData, retrieved.FrameData)
	assert.Equal(t, 2, retrieved.Width)
	assert.Equal(t, 1, retrieved.Height)
}

func TestCacheFrameReplacesPrevious(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.CacheFrame(ctx, &storage.CachedFrame{Width: 1, Height: 1, FrameData: []byte{1, 1, 1}, GeneratedAt: time.Now()})
	_ = store.CacheFrame(ctx, &storage.CachedFrame{Width: 1, Height: 1, FrameData: []byte{2, 2, 2}, GeneratedAt: time.Now()})

	retrieved, err := store.GetCachedFrame(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 2, 2}, retrieved.FrameData)
}

func TestGetCachedFrameNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetCachedFrame(ctx)
	assert.True(t, storage.IsNotFound(err))
}
