// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// The classes map onto what a caller should do next:
//
//   UnavailableError - store unreachable, try again later
//   StaleError       - connection was re-established or the row moved on,
//                      resubmit the whole request
//   NotFoundError    - queried user, asset, collection or transaction absent
//   ConstraintError  - store rejected the statement, do not retry
//   TransitionError  - transaction status cannot move that way
//   InvalidError     - bad arguments
//   ExistsError      - duplicate creation
//   ProcessError     - anything else
package fault
