// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/chainindex/indexd/column"
	"github.com/chainindex/indexd/fault"
)

// exported storage pools
//
// each field is bound to the catalog column named by its tag
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Metadata            Handle `column:"Metadata"`
	OwnedCoins          Handle `column:"OwnedCoins"`
	TransactionStatuses Handle `column:"TransactionStatus"`
	OwnedTransactions   Handle `column:"TransactionsByOwnerBlockIdx"`
	OwnedMessages       Handle `column:"OwnedMessageIds"`
	Statistics          Handle `column:"Statistic"`
	BlockHeights        Handle `column:"BlockIdsToHeights"`
}

// Pool - the set of exported pools
var Pool pools

// database schema version record, in the Metadata pool
var versionKey = []byte("VERSION")

const currentDBVersion = 0x100

// the version is checked before the pools are bound so the bootstrap
// reads apply the Metadata column prefix by hand
func rawVersionKey() []byte {
	return append([]byte{byte(column.Metadata.ID())}, versionKey...)
}

// holds the database handle
var poolData struct {
	sync.RWMutex
	db         *leveldb.DB
	dataAccess DataAccess
	cache      Cache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	ok := false
	defer func() {
		if !ok {
			dbClose()
		}
	}()

	indexDatabase := database + "-index.leveldb"

	db, version, err := getDB(indexDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.db = db

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("index database version: %d > current version: %d", version, currentDBVersion)
		return fmt.Errorf("index database version: %d > current version: %d", version, currentDBVersion)
	}

	// prevent readOnly from modifying the database
	if readOnly && version != currentDBVersion {
		logger.Criticalf("database is inconsistent: index: %d  current: %d", version, currentDBVersion)
		return fmt.Errorf("database is inconsistent: index: %d  current: %d", version, currentDBVersion)
	}

	if 0 == version {
		// database was empty so tag as current version
		err = putVersion(poolData.db, currentDBVersion)
		if nil != err {
			return err
		}
	}

	poolData.cache = newCache()
	poolData.dataAccess = newDataAccess(poolData.db)

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	bound := make(map[column.Column]struct{})

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		columnTag := fieldInfo.Tag.Get("column")
		pool, found := column.ByName(columnTag)
		if !found {
			logger.Criticalf("pool: %s has invalid column: %q", fieldInfo.Name, columnTag)
			return fault.InvalidColumnName
		}
		if _, seen := bound[pool]; seen {
			logger.Criticalf("pool: %s rebinds column: %q", fieldInfo.Name, columnTag)
			return fault.DuplicateColumnBinding
		}
		bound[pool] = struct{}{}

		// the catalog grows additively so every id fits one byte
		prefix := byte(pool.ID())
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			pool:       pool,
			prefix:     prefix,
			limit:      limit,
			dataAccess: poolData.dataAccess,
			cache:      poolData.cache,
		}

		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
	if nil != poolData.cache {
		poolData.cache.Clear()
	}
	poolData.dataAccess = nil
	poolData.cache = nil
	Pool = pools{}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(rawVersionKey(), nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(rawVersionKey(), currentVersion, nil)
}

// Version - the schema version of the open database
//
// read through the Metadata pool like any other record
func Version() (int, error) {
	buffer, err := Pool.Metadata.Get(versionKey)
	if nil != err {
		return 0, err
	}
	if 4 != len(buffer) {
		return 0, fault.TruncatedRecord
	}
	return int(binary.BigEndian.Uint32(buffer)), nil
}
