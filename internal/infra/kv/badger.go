package kv

import (
	"context"
	"errors"

	"lumiere-guest-api/internal/pkg/errs"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerStore is the embedded default driver.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // badger's own logger is too chatty for slog output

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open badger store")
	}

	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errs.Wrap(err, "badger get failed")
	}
	return value, nil
}

func (s *BadgerStore) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return errs.Wrap(err, "badger set failed")
	}
	return nil
}

func (s *BadgerStore) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return errs.Wrap(err, "badger delete failed")
	}
	return nil
}

func (s *BadgerStore) ListPrefix(_ context.Context, prefix string) (map[string][]byte, error) {
	result := make(map[string][]byte)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			result[string(item.Key())] = value
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "badger prefix scan failed")
	}
	return result, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
