// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chainindex/indexd/column"
)

// identifiers are persisted so they must never move
func TestIdentifierStability(t *testing.T) {
	stable := map[column.Column]uint32{
		column.Metadata:                    0,
		column.OwnedCoins:                  2,
		column.TransactionStatus:           3,
		column.TransactionsByOwnerBlockIdx: 4,
		column.OwnedMessageIds:             5,
		column.Statistic:                   6,
		column.BlockIdsToHeights:           7,
		column.CoinsToSpend:                26,
	}
	for c, id := range stable {
		assert.Equal(t, id, c.ID(), "column %q moved", c.String())
	}
}

func TestNameStability(t *testing.T) {
	assert.Equal(t, "Statistic", column.Statistic.String())
	assert.Equal(t, "TransactionsByOwnerBlockIdx", column.TransactionsByOwnerBlockIdx.String())
	assert.Equal(t, "OwnedMessageIds", column.OwnedMessageIds.String())
}

func TestCountMatchesEnumeration(t *testing.T) {
	all := column.All()
	assert.Equal(t, column.Count(), len(all), "Count disagrees with All")
}

func TestEnumerationAscendingUnique(t *testing.T) {
	all := column.All()
	seen := make(map[uint32]string)
	previous := int64(-1)
	for _, c := range all {
		id := c.ID()
		assert.True(t, int64(id) > previous, "identifiers out of order at %d", id)
		previous = int64(id)

		name := c.String()
		other, ok := seen[id]
		assert.False(t, ok, "identifier %d used by both %q and %q", id, name, other)
		assert.NotEqual(t, "", name)
		seen[id] = name
	}
}

func TestByName(t *testing.T) {
	c, ok := column.ByName("TransactionStatus")
	assert.True(t, ok)
	assert.Equal(t, column.TransactionStatus, c)

	_, ok = column.ByName("NoSuchColumn")
	assert.False(t, ok)
}
