// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strconv"
)

// ParsePrincipal parses a principal's platform identifier. Principals
// are identified by the numeric user ID the host platform hands out
// (for game hosts typically a 17-digit account number).
func ParsePrincipal(text string) (uint64, error) {
	id, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid principal %q: expected a numeric platform user ID", text)
	}
	return id, nil
}
