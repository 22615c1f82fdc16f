// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read cache over committed values
//
// only the commit path mutates entries so the cache stays coherent with
// the base store
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Remove(string)
	Clear()
}

type dbOperation int

const (
	dbPut = dbOperation(iota)
	dbDelete
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (c *dbCache) Set(key string, value []byte) {
	c.cache.Set(key, value, defaultExpiration)
}

func (c *dbCache) Remove(key string) {
	c.cache.Delete(key)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
