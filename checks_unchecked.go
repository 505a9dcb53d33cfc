// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build fifo_unchecked

package fifo

// Contract checks are compiled out, misuse of a View leads to corrupt
// cursors or a runtime bounds panic.
const checksEnabled = false
