// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/chainindex/indexd/fault"
)

// BlockHeightLength - number of bytes in a packed block height
const BlockHeightLength = 4

// BlockHeight - the position of a block in the chain
type BlockHeight uint32

// Bytes - pack a height as big endian so byte order equals numeric order
func (height BlockHeight) Bytes() []byte {
	buffer := make([]byte, BlockHeightLength)
	binary.BigEndian.PutUint32(buffer, uint32(height))
	return buffer
}

// BlockHeightFromBytes - unpack a big endian height
func BlockHeightFromBytes(buffer []byte) (BlockHeight, error) {
	if len(buffer) != BlockHeightLength {
		return 0, fault.TruncatedRecord
	}
	return BlockHeight(binary.BigEndian.Uint32(buffer)), nil
}
