// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bridge

import (
	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/event"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/storage"
)

// Admin - an initial authority entry
type Admin struct {
	Account    *account.Account
	Capability authority.Capability
}

// Genesis - the initial settings
type Genesis struct {
	AssetId   uint32
	Threshold uint64
	Vault     *account.Account
	Admins    []Admin
}

// Initialise - apply genesis once
func (b *Bridge) Initialise(g Genesis) error {
	b.Lock()
	defer b.Unlock()

	if b.parameters.IsInitialised() {
		return fault.ErrAlreadyInitialised
	}
	if err := validAccount(g.Vault); nil != err {
		return err
	}
	for _, admin := range g.Admins {
		if err := validAccount(admin.Account); nil != err {
			return err
		}
		if !admin.Capability.Valid() {
			return fault.ErrInvalidCapability
		}
	}

	err := b.atomically(func(trx storage.Transaction) error {
		b.parameters.SetAssetId(trx, g.AssetId)
		b.parameters.SetThreshold(trx, g.Threshold)
		b.parameters.SetVault(trx, g.Vault)
		b.parameters.SetPaused(trx, false)
		b.events.Append(trx, event.ThresholdChanged(g.Threshold))
		b.events.Append(trx, event.VaultChanged(g.Vault))

		for _, admin := range g.Admins {
			err := b.authorities.Set(trx, admin.Account, admin.Capability)
			if nil != err {
				return err
			}
			b.events.Append(trx, event.AuthoritySet(admin.Account, admin.Capability))
		}
		return nil
	})
	if nil != err {
		return err
	}

	b.log.Infof("genesis: asset: %d threshold: %d vault: %s admins: %d", g.AssetId, g.Threshold, g.Vault, len(g.Admins))
	return nil
}

// Pause - stop deposits and withdrawals
func (b *Bridge) Pause(origin Origin) error {
	return b.setPaused(origin, true)
}

// Resume - allow deposits and withdrawals again
func (b *Bridge) Resume(origin Origin) error {
	return b.setPaused(origin, false)
}

func (b *Bridge) setPaused(origin Origin, paused bool) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireRoot(origin); nil != err {
		return err
	}
	if paused == b.parameters.IsPaused() {
		return nil
	}

	err := b.atomically(func(trx storage.Transaction) error {
		b.parameters.SetPaused(trx, paused)
		return nil
	})
	if nil != err {
		return err
	}

	b.log.Infof("paused: %t", paused)
	return nil
}

// SetAuthority - grant or replace the capability of an account
func (b *Bridge) SetAuthority(origin Origin, a *account.Account, c authority.Capability) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireRoot(origin); nil != err {
		return err
	}
	if err := validAccount(a); nil != err {
		return err
	}

	err := b.atomically(func(trx storage.Transaction) error {
		err := b.authorities.Set(trx, a, c)
		if nil != err {
			return err
		}
		b.events.Append(trx, event.AuthoritySet(a, c))
		return nil
	})
	if nil != err {
		return err
	}

	b.log.Infof("authority: %s capability: %s", a, c)
	return nil
}

// RemoveAuthority - revoke every capability of an account
func (b *Bridge) RemoveAuthority(origin Origin, a *account.Account) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireRoot(origin); nil != err {
		return err
	}
	if err := validAccount(a); nil != err {
		return err
	}
	if _, found := b.authorities.Capability(a); !found {
		return fault.ErrAccountNotConfigured
	}

	err := b.atomically(func(trx storage.Transaction) error {
		b.authorities.Remove(trx, a)
		b.events.Append(trx, event.AuthorityRemoved(a))
		return nil
	})
	if nil != err {
		return err
	}

	b.log.Infof("authority removed: %s", a)
	return nil
}

// SetThreshold - change the compliance threshold
func (b *Bridge) SetThreshold(origin Origin, threshold uint64) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireRoot(origin); nil != err {
		return err
	}
	if err := b.requireInitialised(); nil != err {
		return err
	}

	err := b.atomically(func(trx storage.Transaction) error {
		b.parameters.SetThreshold(trx, threshold)
		b.events.Append(trx, event.ThresholdChanged(threshold))
		return nil
	})
	if nil != err {
		return err
	}

	b.log.Infof("threshold: %d", threshold)
	return nil
}

// SetVault - change the custody account
//
// pending withdrawals already in the old vault are not moved
func (b *Bridge) SetVault(origin Origin, vault *account.Account) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireRoot(origin); nil != err {
		return err
	}
	if err := b.requireInitialised(); nil != err {
		return err
	}
	if err := validAccount(vault); nil != err {
		return err
	}

	err := b.atomically(func(trx storage.Transaction) error {
		b.parameters.SetVault(trx, vault)
		b.events.Append(trx, event.VaultChanged(vault))
		return nil
	})
	if nil != err {
		return err
	}

	b.log.Infof("vault: %s", vault)
	return nil
}
