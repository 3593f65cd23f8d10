package docstore

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"
	"github.com/google/uuid"
)

// Listen delivers the full result of q to onSnapshot, first with the
// current state and then again after every write touching the collection.
// It blocks until ctx is canceled, which is the normal way to stop it and
// returns nil. Snapshots are delivered one at a time from a single goroutine.
//
// Badger registers a subscriber asynchronously, so a private marker key is
// written until the subscriber observes it. The initial snapshot is read
// only after that point, which guarantees no write is missed in between.
func (s *Store) Listen(ctx context.Context, q Query, onSnapshot func([]Document)) error {
	if q.Collection == "" {
		return fmt.Errorf("%w: empty collection", ErrInvalidPath)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	marker := []byte(markerPrefix + uuid.NewString())
	ready := make(chan struct{})
	var once sync.Once

	matches := []pb.Match{
		{Prefix: collectionPrefix(q.Collection)},
		{Prefix: marker},
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.db.Subscribe(ctx, func(kv *badger.KVList) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, item := range kv.Kv {
				if bytes.Equal(item.Key, marker) {
					once.Do(func() { close(ready) })
				}
			}
			select {
			case <-ready:
			default:
				// The initial snapshot, read after the marker, will include it.
				return nil
			}
			docs, err := s.Find(ctx, q)
			if err != nil {
				return err
			}
			onSnapshot(docs)
			return nil
		}, matches)
	}()
	defer s.dropMarker(marker)

	if err := s.handshake(ctx, marker, ready, errChan); err != nil {
		return err
	}

	err := <-errChan
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (s *Store) handshake(ctx context.Context, marker []byte, ready <-chan struct{}, errChan chan error) error {
	ticker := time.NewTicker(s.handshakeInterval)
	defer ticker.Stop()
	for {
		if err := s.touch(marker); err != nil {
			return err
		}
		select {
		case <-ready:
			return nil
		case err := <-errChan:
			// Subscriber stopped before the handshake: hand the result back.
			errChan <- err
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Store) touch(marker []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(marker, []byte(time.Now().UTC().Format(time.RFC3339Nano)))
	})
}

func (s *Store) dropMarker(marker []byte) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(marker)
	})
	if err != nil {
		s.log.Debug("Listener marker not removed", "error", err)
	}
}
