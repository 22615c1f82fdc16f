// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"

	"github.com/chainindex/indexd/fault"
)

// AddressLength - number of bytes in an owner address
const AddressLength = 32

// DigestLength - number of bytes in a transaction or block digest
const DigestLength = 32

// Address - an owner account address
type Address [AddressLength]byte

// TxID - a transaction digest
type TxID [DigestLength]byte

// BlockID - a block digest
type BlockID [DigestLength]byte

// Nonce - a message nonce, identifies one bridged message
type Nonce [DigestLength]byte

// String - convert a binary address to hex string for use by the fmt package (for %s)
func (address Address) String() string {
	return hex.EncodeToString(address[:])
}

// MarshalText - convert an address to hex text
func (address Address) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(AddressLength)
	buffer := make([]byte, size)
	hex.Encode(buffer, address[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an address
func (address *Address) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != AddressLength {
		return fault.WrongLengthHexBytes
	}
	byteCount, err := hex.Decode(address[:], s)
	if err != nil {
		return fault.CannotDecodeAddress
	}
	if byteCount != AddressLength {
		return fault.CannotDecodeAddress
	}
	return nil
}

// String - convert a binary transaction id to hex string for use by the fmt package (for %s)
func (txID TxID) String() string {
	return hex.EncodeToString(txID[:])
}

// MarshalText - convert a transaction id to hex text
func (txID TxID) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(DigestLength)
	buffer := make([]byte, size)
	hex.Encode(buffer, txID[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a transaction id
func (txID *TxID) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != DigestLength {
		return fault.WrongLengthHexBytes
	}
	byteCount, err := hex.Decode(txID[:], s)
	if err != nil {
		return fault.CannotDecodeDigest
	}
	if byteCount != DigestLength {
		return fault.CannotDecodeDigest
	}
	return nil
}

// String - convert a binary block id to hex string for use by the fmt package (for %s)
func (blockID BlockID) String() string {
	return hex.EncodeToString(blockID[:])
}

// String - convert a binary nonce to hex string for use by the fmt package (for %s)
func (nonce Nonce) String() string {
	return hex.EncodeToString(nonce[:])
}

// TxIDFromBytes - convert a byte slice into a transaction id
func TxIDFromBytes(buffer []byte) (TxID, error) {
	var txID TxID
	if len(buffer) != DigestLength {
		return txID, fault.CannotDecodeDigest
	}
	copy(txID[:], buffer)
	return txID, nil
}
