// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/chainindex/indexd/column"
	"github.com/chainindex/indexd/fault"
	"github.com/chainindex/indexd/storage/mocks"
)

func newTestTransaction(t *testing.T) Transaction {
	trx, err := NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	return trx
}

func TestReadYourWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := newTestTransaction(t)

	key := []byte("key-one")
	value := []byte("data-one")

	err := trx.Put(Pool.OwnedCoins, key, value)
	assert.Nil(t, err)

	// visible inside the transaction before commit
	data, err := trx.Get(Pool.OwnedCoins, key)
	assert.Nil(t, err)
	assert.Equal(t, value, data)

	// not visible in the committed state
	data, err = Pool.OwnedCoins.Get(key)
	assert.Nil(t, err)
	assert.Nil(t, data)

	err = trx.Commit()
	assert.Nil(t, err)

	data, err = Pool.OwnedCoins.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, value, data)
}

func TestReplaceReturnsPrior(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := newTestTransaction(t)

	key := []byte("key-replace")

	// fresh key: no prior value
	prior, err := trx.Replace(Pool.TransactionStatuses, key, []byte("v1"))
	assert.Nil(t, err)
	assert.Nil(t, prior)

	// staged value is the prior of the next replace
	prior, err = trx.Replace(Pool.TransactionStatuses, key, []byte("v2"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v1"), prior)

	err = trx.Commit()
	assert.Nil(t, err)

	// committed value is the prior in a later transaction
	trx = newTestTransaction(t)
	prior, err = trx.Replace(Pool.TransactionStatuses, key, []byte("v3"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v2"), prior)
}

func TestDeleteReturnsPrior(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("key-delete")

	trx := newTestTransaction(t)
	err := trx.Put(Pool.OwnedMessages, key, []byte("marker"))
	assert.Nil(t, err)
	err = trx.Commit()
	assert.Nil(t, err)

	trx = newTestTransaction(t)
	prior, err := trx.Delete(Pool.OwnedMessages, key)
	assert.Nil(t, err)
	assert.Equal(t, []byte("marker"), prior)

	// deletion is visible inside the transaction
	data, err := trx.Get(Pool.OwnedMessages, key)
	assert.Nil(t, err)
	assert.Nil(t, data)

	// deleting an absent key yields no prior value
	prior, err = trx.Delete(Pool.OwnedMessages, nonExistantKey)
	assert.Nil(t, err)
	assert.Nil(t, prior)

	err = trx.Commit()
	assert.Nil(t, err)

	data, err = Pool.OwnedMessages.Get(key)
	assert.Nil(t, err)
	assert.Nil(t, data)
}

// writes staged across several pools commit together or not at all
func TestCrossPoolAtomicCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := newTestTransaction(t)

	assert.Nil(t, trx.Put(Pool.OwnedTransactions, []byte("owner-key"), []byte("tx-id")))
	assert.Nil(t, trx.Put(Pool.TransactionStatuses, []byte("tx-id"), []byte("status")))
	assert.Nil(t, trx.PutN(Pool.Statistics, []byte("total"), 6))

	// nothing visible before commit
	for _, h := range []Handle{Pool.OwnedTransactions, Pool.TransactionStatuses, Pool.Statistics} {
		has, err := h.Has([]byte("owner-key"))
		assert.Nil(t, err)
		assert.False(t, has, "pool %s has uncommitted key", h.Name())
	}

	err := trx.Commit()
	assert.Nil(t, err)

	// everything visible after commit
	data, err := Pool.OwnedTransactions.Get([]byte("owner-key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("tx-id"), data)

	data, err = Pool.TransactionStatuses.Get([]byte("tx-id"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("status"), data)

	n, found, err := Pool.Statistics.GetN([]byte("total"))
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(6), n)
}

// a transaction dropped without commit leaves no trace
func TestDiscardedTransaction(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := newTestTransaction(t)
	assert.Nil(t, trx.Put(Pool.OwnedCoins, []byte("key-dropped"), []byte("data")))

	// never committed, so the staged write must not be observable
	has, err := Pool.OwnedCoins.Has([]byte("key-dropped"))
	assert.Nil(t, err)
	assert.False(t, has)
}

func TestCommitConsumesTransaction(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := newTestTransaction(t)
	assert.Nil(t, trx.Put(Pool.OwnedCoins, []byte("key-consumed"), []byte("data")))
	assert.Nil(t, trx.Commit())

	err := trx.Commit()
	assert.Equal(t, fault.TransactionAlreadyCommitted, err)

	err = trx.Put(Pool.OwnedCoins, []byte("key-late"), []byte("data"))
	assert.Equal(t, fault.TransactionAlreadyCommitted, err)

	_, err = trx.Get(Pool.OwnedCoins, []byte("key-consumed"))
	assert.Equal(t, fault.TransactionAlreadyCommitted, err)
}

// a failing batch write applies nothing and surfaces the store's error
func TestCommitFailureAppliesNothing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	injected := errors.New("leveldb: i/o error")

	mock := mocks.NewMockDataAccess(ctl)
	mock.EXPECT().Write(gomock.Any()).Return(injected).Times(1)

	cache := newCache()
	pool := &PoolHandle{
		pool:       column.OwnedCoins,
		prefix:     byte(column.OwnedCoins.ID()),
		limit:      []byte{byte(column.OwnedCoins.ID()) + 1},
		dataAccess: mock,
		cache:      cache,
	}

	trx := newTransaction(mock, cache)
	assert.Nil(t, trx.Put(pool, []byte("key-one"), []byte("data")))

	err := trx.Commit()
	assert.Equal(t, injected, err)

	// only the single batch write may have reached the store, and the
	// cache must not pretend the write happened
	_, found := cache.Get(string(pool.prefixKey([]byte("key-one"))))
	assert.False(t, found)
}

func TestGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := newTestTransaction(t)

	// absent: zero, not found, no error
	n, found, err := trx.GetN(Pool.Statistics, []byte("missing"))
	assert.Nil(t, err)
	assert.False(t, found)
	assert.Equal(t, uint64(0), n)

	assert.Nil(t, trx.PutN(Pool.Statistics, []byte("counted"), 1234))

	n, found, err = trx.GetN(Pool.Statistics, []byte("counted"))
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(1234), n)

	// a short record cannot decode
	assert.Nil(t, trx.Put(Pool.Statistics, []byte("short"), []byte{1, 2, 3}))
	_, _, err = trx.GetN(Pool.Statistics, []byte("short"))
	assert.Equal(t, fault.TruncatedRecord, err)
}

// same unprefixed key in two pools stays two separate records
func TestPoolNamespaceSeparation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("shared-key")

	trx := newTestTransaction(t)
	assert.Nil(t, trx.Put(Pool.OwnedCoins, key, []byte("coin")))
	assert.Nil(t, trx.Put(Pool.OwnedMessages, key, []byte("message")))
	assert.Nil(t, trx.Commit())

	data, err := Pool.OwnedCoins.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, []byte("coin"), data)

	data, err = Pool.OwnedMessages.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, []byte("message"), data)
}
