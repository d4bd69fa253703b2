package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/models"
)

// DB is the SQLite-backed Store. Every collection lives in one row of the
// collections table as a full JSON array; Load pulls all of them into
// memory once at startup and every mutator rewrites its row afterwards.
// Unlike the single-threaded original, Go handlers run concurrently, so a
// mutex guards the in-memory mirrors.
type DB struct {
	db *sql.DB

	mu       sync.Mutex
	orders   []models.Order
	messages []models.Message
	ratings  []models.Rating
}

func Open(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

func (s *DB) Close() error {
	return s.db.Close()
}

// InitSchema creates the collections table. The server normally gets here
// through Migrate; the CLI calls it directly so it can run first.
func (s *DB) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(query)
	if err != nil {
		slog.Error("Error creating schema", "error", err)
		return err
	}
	return nil
}

// Load reads all collection snapshots from durable storage into memory.
// Absent or malformed snapshots load as empty collections; startup never
// fails on bad data.
func (s *DB) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = loadCollection[models.Order](s.db, CollectionOrders)
	s.messages = loadCollection[models.Message](s.db, CollectionMessages)
	s.ratings = loadCollection[models.Rating](s.db, CollectionRatings)
	slog.Info("Collections loaded",
		"orders", len(s.orders),
		"messages", len(s.messages),
		"ratings", len(s.ratings),
	)
	return nil
}

func loadCollection[T any](db *sql.DB, name string) []T {
	var raw string
	err := db.QueryRow(`SELECT data FROM collections WHERE name = ?`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		slog.Warn("Failed to read collection, starting empty", "collection", name, "error", err)
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.Warn("Malformed collection snapshot, starting empty", "collection", name, "error", err)
		return nil
	}
	return items
}

// save writes the full snapshot for one collection. Callers hold the mutex
// and only commit the new slice to memory once the write succeeds.
func (s *DB) save(name string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", name, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO collections (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, name, string(data))
	if err != nil {
		return fmt.Errorf("persist %s: %w", name, err)
	}
	return nil
}

func (s *DB) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *DB) AppendOrder(order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]models.Order(nil), s.orders...), order)
	if err := s.save(CollectionOrders, next); err != nil {
		return err
	}
	s.orders = next
	return nil
}

func (s *DB) ToggleOrderStatus(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.orders) {
		return fmt.Errorf("order index %d out of range", index)
	}
	next := append([]models.Order(nil), s.orders...)
	if next[index].Status == models.OrderCompleted {
		next[index].Status = models.OrderPending
	} else {
		next[index].Status = models.OrderCompleted
	}
	if err := s.save(CollectionOrders, next); err != nil {
		return err
	}
	s.orders = next
	return nil
}

func (s *DB) DeleteOrder(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := deleteAt(s.orders, index)
	if err != nil {
		return err
	}
	if err := s.save(CollectionOrders, next); err != nil {
		return err
	}
	s.orders = next
	return nil
}

func (s *DB) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *DB) AppendMessage(msg models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]models.Message(nil), s.messages...), msg)
	if err := s.save(CollectionMessages, next); err != nil {
		return err
	}
	s.messages = next
	return nil
}

func (s *DB) ToggleMessageRead(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.messages) {
		return fmt.Errorf("message index %d out of range", index)
	}
	next := append([]models.Message(nil), s.messages...)
	next[index].Read = !next[index].Read
	if err := s.save(CollectionMessages, next); err != nil {
		return err
	}
	s.messages = next
	return nil
}

func (s *DB) Ratings() []models.Rating {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Rating, len(s.ratings))
	copy(out, s.ratings)
	return out
}

func (s *DB) AppendRating(rating models.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]models.Rating(nil), s.ratings...), rating)
	if err := s.save(CollectionRatings, next); err != nil {
		return err
	}
	s.ratings = next
	return nil
}

func (s *DB) DeleteRating(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := deleteAt(s.ratings, index)
	if err != nil {
		return err
	}
	if err := s.save(CollectionRatings, next); err != nil {
		return err
	}
	s.ratings = next
	return nil
}

// RawSnapshot returns the stored JSON for one collection, mainly for the
// CLI export subcommand.
func (s *DB) RawSnapshot(name string) (string, error) {
	var raw string
	err := s.db.QueryRow(`SELECT data FROM collections WHERE name = ?`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "[]", nil
	}
	if err != nil {
		return "", err
	}
	return raw, nil
}
