// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chainindex/indexd/column"
	"github.com/chainindex/indexd/fault"
)

// helper to stage a put
func poolPut(t *testing.T, trx Transaction, p Handle, key string, data string) {
	err := trx.Put(p, []byte(key), []byte(data))
	if nil != err {
		t.Fatalf("put error: %s", err)
	}
}

// helper to stage a delete
func poolDelete(t *testing.T, trx Transaction, p Handle, key string) {
	_, err := trx.Delete(p, []byte(key))
	if nil != err {
		t.Fatalf("delete error: %s", err)
	}
}

// main pool test
func TestPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.OwnedCoins

	trx := newTestTransaction(t)

	// add more items than a fetch page
	poolPut(t, trx, p, "key-one", "data-one")
	poolPut(t, trx, p, "key-two", "data-two")
	poolPut(t, trx, p, "key-remove-me", "to be deleted")
	poolDelete(t, trx, p, "key-remove-me")
	poolPut(t, trx, p, "key-three", "data-three")
	poolPut(t, trx, p, "key-one", "data-one")     // duplicate
	poolPut(t, trx, p, "key-three", "data-three") // duplicate
	poolPut(t, trx, p, "key-four", "data-four")
	poolPut(t, trx, p, "key-delete-this", "to be deleted")
	poolPut(t, trx, p, "key-five", "data-five")
	poolPut(t, trx, p, "key-six", "data-six")
	poolDelete(t, trx, p, "key-delete-this")
	poolPut(t, trx, p, "key-seven", "data-seven")
	poolPut(t, trx, p, "key-one", "data-one(NEW)") // duplicate

	err := trx.Commit()
	assert.Nil(t, err)

	// ensure that data is correct
	checkResults(t, p)

	// check that restarting database keeps data
	Finalise()
	err = Initialise(databaseFileName, ReadWrite)
	assert.Nil(t, err)
	checkResults(t, Pool.OwnedCoins)
}

func checkResults(t *testing.T, p Handle) {

	// ensure we get all of the pool
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}

	// ensure lengths match
	if len(data) != len(expectedElements) {
		t.Errorf("Length mismatch, got: %d  expected: %d", len(data), len(expectedElements))
	}

	// compare all items from pool
	for i, a := range data {
		if i >= len(expectedElements) {
			t.Errorf("%d: Excess, got: '%s'  expected: Nothing", i, a)
		} else if !bytes.Equal(expectedElements[i].Key, a.Key) || !bytes.Equal(expectedElements[i].Value, a.Value) {
			t.Errorf("%d: Mismatch, got: '%s:%s'  expected: '%s:%s'", i,
				a.Key, a.Value,
				expectedElements[i].Key, expectedElements[i].Value)
		}
	}

	// retrieve 2 elements then next 2 - ensure no overlap
	cursor.Seek(nil)
	firstPair, err := cursor.Fetch(2)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	secondPair, err := cursor.Fetch(2)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	assert.Equal(t, expectedElements[0].Key, firstPair[0].Key)
	assert.Equal(t, expectedElements[1].Key, firstPair[1].Key)
	assert.Equal(t, expectedElements[2].Key, secondPair[0].Key)
	assert.Equal(t, expectedElements[3].Key, secondPair[1].Key)

	// test methods
	has, err := p.Has([]byte("key-two"))
	assert.Nil(t, err)
	assert.True(t, has)

	has, err = p.Has(nonExistantKey)
	assert.Nil(t, err)
	assert.False(t, has)

	value, err := p.Get([]byte("key-two"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("data-two"), value)

	value, err = p.Get(nonExistantKey)
	assert.Nil(t, err)
	assert.Nil(t, value)

	last, found := p.LastElement()
	assert.True(t, found)
	assert.Equal(t, expectedElements[len(expectedElements)-1].Key, last.Key)
}

func TestPoolBinding(t *testing.T) {
	setup(t)
	defer teardown(t)

	assert.Equal(t, column.Statistic, Pool.Statistics.Column())
	assert.Equal(t, "Statistic", Pool.Statistics.Name())
	assert.Equal(t, column.TransactionsByOwnerBlockIdx, Pool.OwnedTransactions.Column())
	assert.Equal(t, column.TransactionStatus, Pool.TransactionStatuses.Column())
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := Initialise(databaseFileName, ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err)
}

// pagination must resume correctly over binary keys, including leading
// zero bytes and a full 0xff key
func TestFetchPaginationBinaryKeys(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.OwnedTransactions

	keys := [][]byte{
		{0x00, 0x01},
		{0x00, 0x02},
		{0x00, 0x03},
		{0x01, 0x01},
		{0xff, 0xff},
	}

	trx := newTestTransaction(t)
	for _, key := range keys {
		err := trx.Put(p, key, []byte("data"))
		assert.Nil(t, err)
	}
	assert.Nil(t, trx.Commit())

	cursor := p.NewFetchCursor()
	first, err := cursor.Fetch(1)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(first))
	assert.Equal(t, keys[0], first[0].Key)

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err)
	assert.Equal(t, len(keys)-1, len(rest))
	for i, e := range rest {
		assert.Equal(t, keys[i+1], e.Key, "entry %d skipped or out of order", i)
	}
}

// a key that merely extends the previous key must survive a resume
func TestFetchPaginationAdjacentKeys(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.OwnedCoins

	keys := [][]byte{
		[]byte("abc"),
		[]byte("abc\x00"),
		[]byte("abd"),
	}

	trx := newTestTransaction(t)
	for _, key := range keys {
		err := trx.Put(p, key, []byte("data"))
		assert.Nil(t, err)
	}
	assert.Nil(t, trx.Commit())

	cursor := p.NewFetchCursor()
	first, err := cursor.Fetch(1)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(first))
	assert.Equal(t, keys[0], first[0].Key)

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(rest))
	assert.Equal(t, keys[1], rest[0].Key)
	assert.Equal(t, keys[2], rest[1].Key)
}

// the version record is a normal Metadata pool entry
func TestDatabaseVersion(t *testing.T) {
	setup(t)
	defer teardown(t)

	version, err := Version()
	assert.Nil(t, err)
	assert.Equal(t, currentDBVersion, version)

	data, err := Pool.Metadata.Get(versionKey)
	assert.Nil(t, err)
	assert.Equal(t, 4, len(data))
}

func TestMapOverRange(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.BlockHeights

	trx := newTestTransaction(t)
	poolPut(t, trx, p, "block-a", "1")
	poolPut(t, trx, p, "block-b", "2")
	poolPut(t, trx, p, "block-c", "3")
	assert.Nil(t, trx.Commit())

	visited := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		visited += 1
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 3, visited)
}
