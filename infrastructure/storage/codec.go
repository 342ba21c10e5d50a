package storage

import (
	"fmt"

	"campaign-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

// Values are CBOR encoded. Struct fields hidden from JSON clients carry an
// explicit cbor tag so they are still persisted.
var encMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

func getValue[T any](txn *badger.Txn, key string) (T, error) {
	var v T
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return v, fmt.Errorf("%s: %w", key, errors.ErrNotFound)
	}
	if err != nil {
		return v, err
	}
	err = item.Value(func(val []byte) error {
		return cbor.Unmarshal(val, &v)
	})
	return v, err
}

func setValue(txn *badger.Txn, key string, v any) error {
	data, err := encMode.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s failed: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

func exists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

// scanPrefix decodes every value stored under prefix, in key order.
func scanPrefix[T any](txn *badger.Txn, prefix string) ([]T, error) {
	var values []T
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
		var v T
		err := it.Item().Value(func(val []byte) error {
			return cbor.Unmarshal(val, &v)
		})
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", it.Item().Key(), err)
		}
		values = append(values, v)
	}
	return values, nil
}

// scanKeys returns the keys stored under prefix without reading values.
func scanKeys(txn *badger.Txn, prefix string) []string {
	var keys []string
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
		keys = append(keys, string(it.Item().KeyCopy(nil)))
	}
	return keys
}
