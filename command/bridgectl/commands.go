// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/bridge"
	"github.com/bitmark-inc/pegbridge/fault"
)

const (
	defaultEventCount = 20
)

// destination of command results
var stdout io.Writer = os.Stdout

// setup command handler
//
// commands that do not access the database or the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate", "gen":
		test := true
		if len(arguments) > 0 {
			switch arguments[0] {
			case "live":
				test = false
			case "test":
			default:
				fmt.Printf("error: network must be: \"live\" or \"test\", not: %q\n", arguments[0])
				exitwithstatus.Exit(1)
			}
		}
		a, privateKey, err := account.Generate(test, rand.Reader)
		if nil != err {
			fmt.Printf("generate error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		err = printJson(stdout, struct {
			Account    *account.Account `json:"account"`
			PrivateKey string           `json:"private_key"`
		}{
			Account:    a,
			PrivateKey: hex.EncodeToString(privateKey),
		})
		if nil != err {
			fmt.Printf("generate error: %s\n", err)
			exitwithstatus.Exit(1)
		}

	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] --config-file=FILE [--as=ACCOUNT|--root] command arguments...\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                              (h)   - display this message\n")
		fmt.Printf("  version                           (v)   - display version string\n")
		fmt.Printf("  generate [live|test]              (gen) - create a new account key pair\n")
		fmt.Printf("\n")
		fmt.Printf("  init                                    - apply the genesis section of the configuration\n")
		fmt.Printf("  deposit ACCOUNT AMOUNT TX               - credit or hold an external deposit\n")
		fmt.Printf("  withdraw AMOUNT                         - move funds of the --as account to the vault\n")
		fmt.Printf("  finish ACCOUNT AMOUNT                   - complete a pending withdrawal\n")
		fmt.Printf("  refund ACCOUNT AMOUNT                   - return a pending withdrawal\n")
		fmt.Printf("  mark-black ACCOUNT                      - purge held deposits and mark black\n")
		fmt.Printf("  mark-white ACCOUNT                      - settle held deposits and mark white\n")
		fmt.Printf("\n")
		fmt.Printf("  pause                                   - stop deposits and withdrawals (root)\n")
		fmt.Printf("  resume                                  - allow deposits and withdrawals (root)\n")
		fmt.Printf("  grant ACCOUNT CAPABILITY                - set capability: all, deposit, withdraw, refund or mark (root)\n")
		fmt.Printf("  revoke ACCOUNT                          - remove capability (root)\n")
		fmt.Printf("  threshold AMOUNT                        - set compliance threshold (root)\n")
		fmt.Printf("  vault ACCOUNT                           - set custody account (root)\n")
		fmt.Printf("\n")
		fmt.Printf("  params                                  - show parameters\n")
		fmt.Printf("  balance ACCOUNT                         - show pegged asset balance\n")
		fmt.Printf("  pending ACCOUNT                         - show held deposits and pending withdrawals\n")
		fmt.Printf("  record TX                               - show the deposit that consumed a transaction\n")
		fmt.Printf("  account ACCOUNT                         - show mark and capability\n")
		fmt.Printf("  events [START [COUNT]]                  - list notifications\n")
		fmt.Printf("  deposit-address ACCOUNT PATH            - derive a deposit key, PATH is m/i/j...\n")
		fmt.Printf("\n")

	default:
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// bridge command handler
//
// each command is one bridge call delivered in order by the storage lock
func processBridgeCommand(b *bridge.Bridge, theConfiguration *Configuration, origin bridge.Origin, arguments []string) error {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "init":
		g, err := theConfiguration.genesis()
		if nil != err {
			return err
		}
		if err := b.Initialise(g); nil != err {
			return err
		}
		return printJson(stdout, b.Parameters())

	case "deposit":
		if 3 != len(arguments) {
			return fault.ErrMissingParameters
		}
		beneficiary, err := theConfiguration.account(arguments[0])
		if nil != err {
			return err
		}
		amount, err := parseAmount(arguments[1])
		if nil != err {
			return err
		}
		if err := b.Deposit(origin, beneficiary, amount, arguments[2]); nil != err {
			return err
		}
		return printRecord(b, arguments[2])

	case "withdraw":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		amount, err := parseAmount(arguments[0])
		if nil != err {
			return err
		}
		if err := b.Withdraw(origin, amount); nil != err {
			return err
		}
		if signer, ok := origin.Signer(); ok {
			return printPending(b, signer)
		}
		return nil

	case "finish", "refund":
		if 2 != len(arguments) {
			return fault.ErrMissingParameters
		}
		who, err := theConfiguration.account(arguments[0])
		if nil != err {
			return err
		}
		amount, err := parseAmount(arguments[1])
		if nil != err {
			return err
		}
		if "finish" == command {
			err = b.WithdrawFinish(origin, who, amount)
		} else {
			err = b.Refund(origin, who, amount)
		}
		if nil != err {
			return err
		}
		return printPending(b, who)

	case "mark-black", "mark-white":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		a, err := theConfiguration.account(arguments[0])
		if nil != err {
			return err
		}
		if "mark-black" == command {
			err = b.MarkBlack(origin, a)
		} else {
			err = b.MarkWhite(origin, a)
		}
		if nil != err {
			return err
		}
		return printAccount(b, a)

	case "pause":
		return b.Pause(origin)

	case "resume":
		return b.Resume(origin)

	case "grant":
		if 2 != len(arguments) {
			return fault.ErrMissingParameters
		}
		a, err := theConfiguration.account(arguments[0])
		if nil != err {
			return err
		}
		capability, err := authority.FromString(arguments[1])
		if nil != err {
			return err
		}
		if err := b.SetAuthority(origin, a, capability); nil != err {
			return err
		}
		return printAccount(b, a)

	case "revoke":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		a, err := theConfiguration.account(arguments[0])
		if nil != err {
			return err
		}
		return b.RemoveAuthority(origin, a)

	case "threshold":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		amount, err := strconv.ParseUint(arguments[0], 10, 64)
		if nil != err {
			return fault.ErrInvalidAmount
		}
		if err := b.SetThreshold(origin, amount); nil != err {
			return err
		}
		return printJson(stdout, b.Parameters())

	case "vault":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		a, err := theConfiguration.account(arguments[0])
		if nil != err {
			return err
		}
		if err := b.SetVault(origin, a); nil != err {
			return err
		}
		return printJson(stdout, b.Parameters())

	case "params":
		return printJson(stdout, b.Parameters())

	case "balance":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		a, err := theConfiguration.account(arguments[0])
		if nil != err {
			return err
		}
		return printJson(stdout, struct {
			Account *account.Account `json:"account"`
			Balance uint64           `json:"balance"`
		}{
			Account: a,
			Balance: b.Balance(a),
		})

	case "pending":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		a, err := theConfiguration.account(arguments[0])
		if nil != err {
			return err
		}
		return printPending(b, a)

	case "record":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		return printRecord(b, arguments[0])

	case "account":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		a, err := theConfiguration.account(arguments[0])
		if nil != err {
			return err
		}
		return printAccount(b, a)

	case "events":
		start := uint64(0)
		count := defaultEventCount
		if len(arguments) > 0 {
			n, err := strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				return fault.ErrInvalidCursor
			}
			start = n
		}
		if len(arguments) > 1 {
			n, err := strconv.Atoi(arguments[1])
			if nil != err {
				return fault.ErrInvalidCount
			}
			count = n
		}
		events, err := b.Events(start, count)
		if nil != err {
			return err
		}
		return printJson(stdout, events)

	case "deposit-address":
		if 2 != len(arguments) {
			return fault.ErrMissingParameters
		}
		owner, err := theConfiguration.account(arguments[0])
		if nil != err {
			return err
		}
		address, err := b.DepositAddress(owner, arguments[1])
		if nil != err {
			return err
		}
		return printJson(stdout, struct {
			Owner   *account.Account `json:"owner"`
			Path    string           `json:"path"`
			Address *account.Account `json:"address"`
		}{
			Owner:   owner,
			Path:    arguments[1],
			Address: address,
		})

	default:
		return fmt.Errorf("no such command: %q", command)
	}
}

// amounts are in the smallest unit and must be positive
func parseAmount(s string) (uint64, error) {
	amount, err := strconv.ParseUint(s, 10, 64)
	if nil != err || 0 == amount {
		return 0, fault.ErrInvalidAmount
	}
	return amount, nil
}

func printRecord(b *bridge.Bridge, txRef string) error {
	d, found := b.DepositRecord(txRef)
	if !found {
		return fault.ErrTransactionNotFound
	}
	return printJson(stdout, struct {
		TxRef  string           `json:"tx"`
		Owner  *account.Account `json:"owner"`
		Amount uint64           `json:"amount"`
		Held   bool             `json:"held"`
	}{
		TxRef:  txRef,
		Owner:  d.Owner,
		Amount: d.Amount,
		Held:   d.IsHeld(),
	})
}

func printPending(b *bridge.Bridge, a *account.Account) error {
	return printJson(stdout, struct {
		Account     *account.Account `json:"account"`
		Deposits    interface{}      `json:"held_deposits"`
		Withdrawals []uint64         `json:"pending_withdrawals"`
	}{
		Account:     a,
		Deposits:    b.PendingDeposits(a),
		Withdrawals: b.PendingWithdrawals(a),
	})
}

func printAccount(b *bridge.Bridge, a *account.Account) error {
	type markType struct {
		Account    *account.Account `json:"account"`
		Mark       string           `json:"mark"`
		Capability string           `json:"capability"`
	}
	m, _ := b.Classify(a)
	c, _ := b.Capability(a)
	return printJson(stdout, markType{
		Account:    a,
		Mark:       m.String(),
		Capability: c.String(),
	})
}

func printJson(handle io.Writer, message interface{}) error {
	buffer, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(handle, "%s\n", buffer)
	return err
}
