// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trsledger/ownership"
)

func TestNewTrsId(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i += 1 {
		id := ownership.NewTrsId()
		assert.True(t, len(id) <= 39, "too long: %s", id)

		n, ok := new(big.Int).SetString(id, 10)
		if !assert.True(t, ok, "not decimal: %s", id) {
			continue
		}
		assert.True(t, n.BitLen() <= 128, "too large: %s", id)

		// version 4 in the high nibble of byte 6
		b := n.FillBytes(make([]byte, 16))
		assert.Equal(t, byte(4), b[6]>>4, "wrong version: %s", id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate: %s", id)
		seen[id] = struct{}{}
	}
}
