//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../../mocks/mock_docstore.go -package=mocks -mock_names=IStore=MockDocStore
package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentExists   = errors.New("document already exists")
	ErrInvalidPath      = errors.New("invalid collection or document id")
)

const (
	keyPrefix        = "doc:"
	markerPrefix     = "sys:listen:"
	maxConflictRetry = 3
)

// IStore is the remote document store as seen by the client:
// collection CRUD, filtered queries and snapshot listeners.
type IStore interface {
	NewID() string
	Get(ctx context.Context, collection, id string) (Document, error)
	Set(ctx context.Context, collection, id string, fields map[string]any) error
	Create(ctx context.Context, collection, id string, fields map[string]any) error
	Update(ctx context.Context, collection, id string, patch map[string]any) error
	Find(ctx context.Context, q Query) ([]Document, error)
	Listen(ctx context.Context, q Query, onSnapshot func([]Document)) error
}

// Store keeps documents in BadgerDB.
// The key is formatted as "doc:{collection}:{id}" where collection may be
// a nested path such as "chats/{chatId}/messages". Ids never contain ':'
// so a collection prefix never matches documents of a sub collection.
type Store struct {
	db                *badger.DB
	log               *slog.Logger
	handshakeInterval time.Duration
}

func NewStore(db *badger.DB, log *slog.Logger) *Store {
	return &Store{db: db, log: log, handshakeInterval: 5 * time.Millisecond}
}

func (s *Store) NewID() string {
	return uuid.NewString()
}

func documentKey(collection, id string) []byte {
	return []byte(keyPrefix + collection + ":" + id)
}

func collectionPrefix(collection string) []byte {
	return []byte(keyPrefix + collection + ":")
}

func validate(collection, id string) error {
	if collection == "" || strings.Contains(collection, ":") {
		return fmt.Errorf("%w: collection %q", ErrInvalidPath, collection)
	}
	if id == "" || strings.ContainsAny(id, ":/") {
		return fmt.Errorf("%w: id %q", ErrInvalidPath, id)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if err := validate(collection, id); err != nil {
		return Document{}, err
	}
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(documentKey(collection, id))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Document{}, ErrDocumentNotFound
	}
	if err != nil {
		return Document{}, err
	}
	fields, err := Decode(raw)
	if err != nil {
		return Document{}, err
	}
	return Document{ID: id, Fields: fields}, nil
}

// Set writes the whole document, replacing any previous version.
func (s *Store) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(collection, id); err != nil {
		return err
	}
	data, err := Encode(fields)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(documentKey(collection, id), data)
	})
}

// Create is Set failing with ErrDocumentExists when the id is taken.
func (s *Store) Create(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(collection, id); err != nil {
		return err
	}
	data, err := Encode(fields)
	if err != nil {
		return err
	}
	return s.retryOnConflict(func(txn *badger.Txn) error {
		key := documentKey(collection, id)
		if _, err := txn.Get(key); err == nil {
			return ErrDocumentExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
}

// Update merges patch into an existing document. Patch keys are dotted
// paths, only the addressed leaves are written.
func (s *Store) Update(ctx context.Context, collection, id string, patch map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(collection, id); err != nil {
		return err
	}
	return s.retryOnConflict(func(txn *badger.Txn) error {
		key := documentKey(collection, id)
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrDocumentNotFound
		}
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		fields, err := Decode(raw)
		if err != nil {
			return err
		}
		for path, value := range patch {
			setPath(fields, path, value)
		}
		data, err := Encode(fields)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Find scans the collection in key order and keeps matching documents.
// A record that can not be decoded is logged and skipped.
func (s *Store) Find(ctx context.Context, q Query) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if q.Collection == "" || strings.Contains(q.Collection, ":") {
		return nil, fmt.Errorf("%w: collection %q", ErrInvalidPath, q.Collection)
	}
	prefix := collectionPrefix(q.Collection)
	var docs []Document
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id := string(item.Key()[len(prefix):])
			raw, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			fields, err := Decode(raw)
			if err != nil {
				s.log.Warn("Skipping undecodable document", "collection", q.Collection, "id", id, "error", err)
				continue
			}
			doc := Document{ID: id, Fields: fields}
			if q.matches(doc) {
				docs = append(docs, doc)
			}
		}
		return nil
	})
	return docs, err
}

// retryOnConflict reruns a read-modify-write transaction when another
// writer committed the same keys in between.
func (s *Store) retryOnConflict(fn func(txn *badger.Txn) error) error {
	var err error
	for i := 0; i < maxConflictRetry; i++ {
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		s.log.Debug("Transaction conflict, retrying", "attempt", i+1)
	}
	return err
}
