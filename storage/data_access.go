// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// DataAccess - the byte-level contract the base store must provide
//
// Write must apply the whole batch as one indivisible operation
type DataAccess interface {
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Write(*leveldb.Batch) error
}

type dataAccess struct {
	db *leveldb.DB
}

func newDataAccess(db *leveldb.DB) DataAccess {
	return &dataAccess{
		db: db,
	}
}

func (d *dataAccess) Get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *dataAccess) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *dataAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *dataAccess) Write(batch *leveldb.Batch) error {
	return d.db.Write(batch, nil)
}
