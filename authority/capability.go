// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"strings"

	"github.com/bitmark-inc/pegbridge/fault"
)

// Capability - the single permission held by an operator account
type Capability byte

// all possible capabilities
//
// the byte values are stored in the database so must not change
const (
	None     Capability = 0
	All      Capability = 1
	Deposit  Capability = 2
	Withdraw Capability = 3
	Refund   Capability = 4
	Mark     Capability = 5
	maximum  Capability = 6
)

var capabilityNames = map[Capability]string{
	None:     "none",
	All:      "all",
	Deposit:  "deposit",
	Withdraw: "withdraw",
	Refund:   "refund",
	Mark:     "mark",
}

// String - text form of a capability
func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return "unknown"
}

// Valid - true for the capabilities that may be granted
func (c Capability) Valid() bool {
	return c > None && c < maximum
}

// Satisfies - true if holding c allows an action requiring needed
func (c Capability) Satisfies(needed Capability) bool {
	if !c.Valid() {
		return false
	}
	return All == c || needed == c
}

// FromString - parse the text form of a capability
func FromString(s string) (Capability, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range capabilityNames {
		if c.Valid() && name == s {
			return c, nil
		}
	}
	return None, fault.ErrInvalidCapability
}

// MarshalText - JSON form
func (c Capability) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText - parse JSON form
func (c *Capability) UnmarshalText(s []byte) error {
	capability, err := FromString(string(s))
	if nil != err {
		return err
	}
	*c = capability
	return nil
}
