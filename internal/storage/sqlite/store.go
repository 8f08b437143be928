// Package sqlite provides a SQLite implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alinanorakari/supersimple/internal/storage"

	_ "modernc.org/sqlite"
)

// Store is a SQLite implementation of storage.Store.
type Store struct {
	db *sql.DB
}

// NewMemoryStore creates an in-memory SQLite store.
func NewMemoryStore() (*Store, error) {
	return newStore(":memory:")
}

// NewFileStore creates a file-based SQLite store.
func NewFileStore(path string) (*Store, error) {
	return newStore(path)
}

func newStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Slot methods

func (s *Store) ReadSlot(ctx context.Context, slot int) (int32, error) {
	var value int32
	err := s.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE slot = ?", slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.SlotNotFound(slot)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read slot %d: %w", slot, err)
	}
	return value, nil
}

func (s *Store) WriteSlot(ctx context.Context, slot int, value int32) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO slots (slot, value, updated_at)
		VALUES (?, ?, ?)
	`, slot, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to write slot %d: %w", slot, err)
	}
	return nil
}

func (s *Store) DeleteSlot(ctx context.Context, slot int) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM slots WHERE slot = ?", slot)
	return err
}

func (s *Store) Slots(ctx context.Context) (map[int]int32, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT slot, value FROM slots ORDER BY slot")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make(map[int]int32)
	for rows.Next() {
		var slot int
		var value int32
		if err := rows.Scan(&slot, &value); err != nil {
			return nil, err
		}
		slots[slot] = value
	}
	return slots, rows.Err()
}

// Device methods

func (s *Store) SaveDevice(ctx context.Context, device *storage.Device) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO devices (id, ip, name, type, created_at, last_seen)
		VALUES (?, ?, ?, ?, ?, ?)
	`, device.ID, device.IP, device.Name, device.Type, device.CreatedAt, device.LastSeen)
	return err
}

func (s *Store) GetDevice(ctx context.Context, id string) (*storage.Device, error) {
	var device storage.Device
	err := s.db.QueryRowContext(ctx, `
		SELECT id, ip, name, type, created_at, last_seen FROM devices WHERE id = ?
	`, id).Scan(&device.ID, &device.IP, &device.Name, &device.Type, &device.CreatedAt, &device.LastSeen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound{Resource: "device", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *Store) GetDevices(ctx context.Context) ([]*storage.Device, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ip, name, type, created_at, last_seen FROM devices ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []*storage.Device
	for rows.Next() {
		var device storage.Device
		if err := rows.Scan(&device.ID, &device.IP, &device.Name, &device.Type, &device.CreatedAt, &device.LastSeen); err != nil {
			return nil, err
		}
		devices = append(devices, &device)
	}
	return devices, rows.Err()
}

func (s *Store) DeleteDevice(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM devices WHERE id = ?", id)
	return err
}

// Frame cache methods

func (s *Store) CacheFrame(ctx context.Context, frame *storage.CachedFrame) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO frame_cache (id, width, height, frame_data, generated_at)
		VALUES (1, ?, ?, ?, ?)
	`, frame.Width, frame.Height, frame.FrameData, frame.GeneratedAt)
	return err
}

func (s *Store) GetCachedFrame(ctx context.Context) (*storage.CachedFrame, error) {
	var frame storage.CachedFrame
	err := s.db.QueryRowContext(ctx, `
		SELECT width, height, frame_data, generated_at FROM frame_cache WHERE id = 1
	`).Scan(&frame.Width, &frame.Height, &frame.FrameData, &frame.GeneratedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound{Resource: "frame_cache", ID: "1"}
	}
	if err != nil {
		return nil, err
	}
	return &frame, nil
}

// Verify interface compliance
var _ storage.Store = (*Store)(nil)
