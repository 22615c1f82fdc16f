// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/chainindex/indexd/fault"
)

// test the classification of some representative errors
func TestErrorClasses(t *testing.T) {

	if _, ok := interface{}(fault.AlreadyInitialised).(fault.ExistsError); !ok {
		t.Errorf("AlreadyInitialised is not an ExistsError")
	}
	if _, ok := interface{}(fault.InvalidCursor).(fault.InvalidError); !ok {
		t.Errorf("InvalidCursor is not an InvalidError")
	}
	if _, ok := interface{}(fault.TransactionAlreadyCommitted).(fault.ProcessError); !ok {
		t.Errorf("TransactionAlreadyCommitted is not a ProcessError")
	}
}

// ensure errors compare as values
func TestErrorComparison(t *testing.T) {

	var err error = fault.TruncatedRecord
	if err != fault.TruncatedRecord {
		t.Errorf("error value comparison failed")
	}
	if err.Error() != "truncated record" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
