// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"

	"github.com/chainindex/indexd/column"
	"github.com/chainindex/indexd/fault"
)

// Handle - read access to the committed state of one pool
//
// all writes go through a Transaction
type Handle interface {
	Column() column.Column
	Name() string
	Get(key []byte) ([]byte, error)
	GetN(key []byte) (uint64, bool, error)
	Has(key []byte) (bool, error)
	LastElement() (Element, bool)
	NewFetchCursor() *FetchCursor

	prefixKey(key []byte) []byte
}

// PoolHandle - one pool of the shared database
type PoolHandle struct {
	pool       column.Column
	prefix     byte
	limit      []byte
	dataAccess DataAccess
	cache      Cache
}

// Element - a binary key/value pair
type Element struct {
	Key   []byte
	Value []byte
}

// Column - the catalog column this pool is bound to
func (p *PoolHandle) Column() column.Column {
	return p.pool
}

// Name - the catalog name of this pool
func (p *PoolHandle) Name() string {
	return p.pool.String()
}

// prepend the column prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read the committed value for a key
//
// returns nil with no error if the key is absent
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	if nil == p.dataAccess {
		return nil, fault.DatabaseIsNotSet
	}

	prefixedKey := p.prefixKey(key)
	if value, found := p.cache.Get(string(prefixedKey)); found {
		return value, nil
	}

	value, err := p.dataAccess.Get(prefixedKey)
	if leveldb.ErrNotFound == err {
		return nil, nil
	} else if nil != err {
		return nil, err
	}

	p.cache.Set(string(prefixedKey), value)
	return value, nil
}

// GetN - read a committed record and decode it as big endian uint64
//
// second return is false if the record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool, error) {
	buffer, err := p.Get(key)
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

// Has - check if a key exists in the committed state
func (p *PoolHandle) Has(key []byte) (bool, error) {
	if nil == p.dataAccess {
		return false, fault.DatabaseIsNotSet
	}

	prefixedKey := p.prefixKey(key)
	if _, found := p.cache.Get(string(prefixedKey)); found {
		return true, nil
	}
	return p.dataAccess.Has(prefixedKey)
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	if nil == p.dataAccess {
		return Element{}, false
	}

	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	iter := p.dataAccess.Iterator(&maxRange)

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}
