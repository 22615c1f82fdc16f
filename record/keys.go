// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/chainindex/indexd/fault"
)

// OwnedTransactionKeyLength - owner ++ block height ++ in-block index
const OwnedTransactionKeyLength = AddressLength + BlockHeightLength + 2

// OwnedCoinKeyLength - owner ++ creating txId ++ output index
const OwnedCoinKeyLength = AddressLength + DigestLength + 2

// OwnedMessageKeyLength - owner ++ nonce
const OwnedMessageKeyLength = AddressLength + DigestLength

// OwnedTransactionKey - pack the owned-transaction index key
//
// for a fixed owner the lexicographic byte order of these keys is the
// (block height, in-block index) execution order
func OwnedTransactionKey(owner Address, height BlockHeight, txIdx uint16) []byte {
	key := make([]byte, 0, OwnedTransactionKeyLength)
	key = append(key, owner[:]...)
	key = append(key, height.Bytes()...)

	idx := make([]byte, 2)
	binary.BigEndian.PutUint16(idx, txIdx)
	return append(key, idx...)
}

// UnpackOwnedTransactionKey - split an owned-transaction index key
func UnpackOwnedTransactionKey(key []byte) (Address, BlockHeight, uint16, error) {
	var owner Address
	if len(key) != OwnedTransactionKeyLength {
		return owner, 0, 0, fault.TruncatedRecord
	}
	copy(owner[:], key[:AddressLength])
	height := BlockHeight(binary.BigEndian.Uint32(key[AddressLength:]))
	txIdx := binary.BigEndian.Uint16(key[AddressLength+BlockHeightLength:])
	return owner, height, txIdx, nil
}

// OwnedCoinKey - pack the owned-coin index key
func OwnedCoinKey(owner Address, txID TxID, outputIdx uint16) []byte {
	key := make([]byte, 0, OwnedCoinKeyLength)
	key = append(key, owner[:]...)
	key = append(key, txID[:]...)

	idx := make([]byte, 2)
	binary.BigEndian.PutUint16(idx, outputIdx)
	return append(key, idx...)
}

// UnpackOwnedCoinKey - split an owned-coin index key
func UnpackOwnedCoinKey(key []byte) (Address, TxID, uint16, error) {
	var owner Address
	var txID TxID
	if len(key) != OwnedCoinKeyLength {
		return owner, txID, 0, fault.TruncatedRecord
	}
	copy(owner[:], key[:AddressLength])
	copy(txID[:], key[AddressLength:AddressLength+DigestLength])
	outputIdx := binary.BigEndian.Uint16(key[AddressLength+DigestLength:])
	return owner, txID, outputIdx, nil
}

// OwnedMessageKey - pack the owned-message index key
func OwnedMessageKey(owner Address, nonce Nonce) []byte {
	key := make([]byte, 0, OwnedMessageKeyLength)
	key = append(key, owner[:]...)
	return append(key, nonce[:]...)
}

// UnpackOwnedMessageKey - split an owned-message index key
func UnpackOwnedMessageKey(key []byte) (Address, Nonce, error) {
	var owner Address
	var nonce Nonce
	if len(key) != OwnedMessageKeyLength {
		return owner, nonce, fault.TruncatedRecord
	}
	copy(owner[:], key[:AddressLength])
	copy(nonce[:], key[AddressLength:])
	return owner, nonce, nil
}
