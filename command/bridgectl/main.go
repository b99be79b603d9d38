// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/bridge"
	"github.com/bitmark-inc/pegbridge/ledger"
	"github.com/bitmark-inc/pegbridge/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "as", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'a'},
		{Long: "root", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// identity of the caller
	origin := bridge.Signed(nil)
	if len(options["root"]) > 0 {
		origin = bridge.Root()
	} else if 1 == len(options["as"]) {
		signer, err := theConfiguration.account(options["as"][0])
		if nil != err {
			exitwithstatus.Message("%s: invalid signer: %q  error: %s", program, options["as"][0], err)
		}
		origin = bridge.Signed(signer)
	}

	err = run(theConfiguration, origin, arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s error: %s", program, arguments[0], err)
	}
}

// open logging and the database, execute one command and close
func run(theConfiguration *Configuration, origin bridge.Origin, arguments []string) error {

	// start logging
	if err := logger.Initialise(theConfiguration.Logging); nil != err {
		return err
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Infof("chain: %s", theConfiguration.Chain)
	log.Infof("database: %q", theConfiguration.databasePath())

	deriver, err := theConfiguration.deriver()
	if nil != err {
		log.Criticalf("derivation error: %s", err)
		return err
	}

	err = storage.Initialise(theConfiguration.databasePath(), storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		return err
	}
	defer storage.Finalise()

	b := bridge.New(ledger.New(storage.Pool.Balances, storage.Pool.Supply), deriver)

	log.Infof("command: %q origin: %s", arguments[0], origin)
	err = processBridgeCommand(b, theConfiguration, origin, arguments)
	if nil != err {
		log.Errorf("command: %q error: %s", arguments[0], err)
	}
	return err
}
