// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/chainindex/indexd/fault"
)

// Transaction - a buffered write scope over the base store
//
// reads see this transaction's own pending writes first, then the
// committed state; nothing reaches the base store before Commit, and
// Commit applies every pending update across every pool touched as one
// indivisible batch.  A transaction that is discarded without commit
// has no effect.  After Commit the transaction is consumed and every
// further call returns fault.TransactionAlreadyCommitted.
type Transaction interface {
	Get(Handle, []byte) ([]byte, error)
	GetN(Handle, []byte) (uint64, bool, error)
	Put(Handle, []byte, []byte) error
	PutN(Handle, []byte, uint64) error
	Replace(Handle, []byte, []byte) ([]byte, error)
	Delete(Handle, []byte) ([]byte, error)
	Commit() error
}

type pendingUpdate struct {
	op    dbOperation
	value []byte
}

type dbTransaction struct {
	dataAccess DataAccess
	cache      Cache
	pending    map[string]pendingUpdate
	order      []string
	committed  bool
}

func newTransaction(dataAccess DataAccess, cache Cache) *dbTransaction {
	return &dbTransaction{
		dataAccess: dataAccess,
		cache:      cache,
		pending:    make(map[string]pendingUpdate),
	}
}

// NewDBTransaction - open a transaction on the shared database
//
// one transaction per unit of work, committed exactly once by its holder
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.dataAccess {
		return nil, fault.NotInitialised
	}
	return newTransaction(poolData.dataAccess, poolData.cache), nil
}

// stage one update, last write per key wins
func (t *dbTransaction) stage(prefixedKey []byte, op dbOperation, value []byte) {
	key := string(prefixedKey)
	if _, ok := t.pending[key]; !ok {
		t.order = append(t.order, key)
	}
	t.pending[key] = pendingUpdate{
		op:    op,
		value: value,
	}
}

// the value visible to this transaction: pending update first, then the
// committed state
func (t *dbTransaction) visible(prefixedKey []byte) ([]byte, error) {
	if p, ok := t.pending[string(prefixedKey)]; ok {
		if dbDelete == p.op {
			return nil, nil
		}
		value := make([]byte, len(p.value))
		copy(value, p.value)
		return value, nil
	}

	if value, found := t.cache.Get(string(prefixedKey)); found {
		return value, nil
	}

	value, err := t.dataAccess.Get(prefixedKey)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Get - read the value visible to this transaction
//
// returns nil with no error if the key is absent, never mutates state
func (t *dbTransaction) Get(h Handle, key []byte) ([]byte, error) {
	if t.committed {
		return nil, fault.TransactionAlreadyCommitted
	}
	if nil == h {
		return nil, fault.DatabaseIsNotSet
	}
	return t.visible(h.prefixKey(key))
}

// GetN - read a value visible to this transaction as big endian uint64
//
// second return is false if the record was not found
func (t *dbTransaction) GetN(h Handle, key []byte) (uint64, bool, error) {
	buffer, err := t.Get(h, key)
	if nil != err {
		return 0, false, err
	}
	if nil == buffer {
		return 0, false, nil
	}
	if len(buffer) < 8 {
		return 0, false, fault.TruncatedRecord
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// Put - stage a write, overwriting any value already visible for the key
func (t *dbTransaction) Put(h Handle, key []byte, value []byte) error {
	if t.committed {
		return fault.TransactionAlreadyCommitted
	}
	if nil == h {
		return fault.DatabaseIsNotSet
	}

	data := make([]byte, len(value))
	copy(data, value)
	t.stage(h.prefixKey(key), dbPut, data)
	return nil
}

// PutN - stage a big endian uint64 write
func (t *dbTransaction) PutN(h Handle, key []byte, value uint64) error {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return t.Put(h, key, buffer)
}

// Replace - stage a write and return the value it replaces
//
// nil prior value distinguishes a fresh insert from an update
func (t *dbTransaction) Replace(h Handle, key []byte, value []byte) ([]byte, error) {
	if t.committed {
		return nil, fault.TransactionAlreadyCommitted
	}
	if nil == h {
		return nil, fault.DatabaseIsNotSet
	}

	prefixedKey := h.prefixKey(key)
	prior, err := t.visible(prefixedKey)
	if nil != err {
		return nil, err
	}

	data := make([]byte, len(value))
	copy(data, value)
	t.stage(prefixedKey, dbPut, data)
	return prior, nil
}

// Delete - stage a removal and return the value it removes
func (t *dbTransaction) Delete(h Handle, key []byte) ([]byte, error) {
	if t.committed {
		return nil, fault.TransactionAlreadyCommitted
	}
	if nil == h {
		return nil, fault.DatabaseIsNotSet
	}

	prefixedKey := h.prefixKey(key)
	prior, err := t.visible(prefixedKey)
	if nil != err {
		return nil, err
	}

	t.stage(prefixedKey, dbDelete, nil)
	return prior, nil
}

// Commit - apply every pending update in one atomic batch
//
// on failure nothing is applied and the error from the base store is
// returned unchanged; on success the transaction is consumed
func (t *dbTransaction) Commit() error {
	if t.committed {
		return fault.TransactionAlreadyCommitted
	}

	batch := new(leveldb.Batch)
	for _, key := range t.order {
		p := t.pending[key]
		if dbDelete == p.op {
			batch.Delete([]byte(key))
		} else {
			batch.Put([]byte(key), p.value)
		}
	}

	err := t.dataAccess.Write(batch)
	if nil != err {
		return err
	}

	// base store updated, bring the read cache in line
	for _, key := range t.order {
		p := t.pending[key]
		if dbDelete == p.op {
			t.cache.Remove(key)
		} else {
			t.cache.Set(key, p.value)
		}
	}

	t.committed = true
	return nil
}
