// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bridge

import (
	"fmt"

	"github.com/bitmark-inc/pegbridge/account"
)

// Origin - who is making a call
//
// either the authorisation root or a signed account, resolved by
// whatever delivers the call
type Origin struct {
	root   bool
	signer *account.Account
}

// Root - the privileged origin
func Root() Origin {
	return Origin{root: true}
}

// Signed - origin of an ordinary account
func Signed(a *account.Account) Origin {
	return Origin{signer: a}
}

// IsRoot - true only for the root origin
func (o Origin) IsRoot() bool {
	return o.root
}

// Signer - the signing account, false for root
func (o Origin) Signer() (*account.Account, bool) {
	if o.root || nil == o.signer {
		return nil, false
	}
	return o.signer, true
}

func (o Origin) String() string {
	if o.root {
		return "root"
	}
	if nil == o.signer {
		return "none"
	}
	return fmt.Sprintf("signed(%s)", o.signer)
}
