// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"math/big"

	"github.com/google/uuid"
)

// NewTrsId - random version 4 UUID as an unsigned decimal integer
func NewTrsId() string {
	u := uuid.New()
	return new(big.Int).SetBytes(u[:]).String()
}

// generate n distinct identifiers
func newTrsIds(n int) []string {
	seen := make(map[string]struct{}, n)
	ids := make([]string, 0, n)
	for len(ids) < n {
		id := NewTrsId()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
