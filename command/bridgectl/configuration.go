// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/bridge"
	"github.com/bitmark-inc/pegbridge/chain"
	"github.com/bitmark-inc/pegbridge/configuration"
	"github.com/bitmark-inc/pegbridge/derivation"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultBitmarkDatabase  = chain.Bitmark + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "bridgectl.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type AdminType struct {
	Account    string `gluamapper:"account" json:"account"`
	Capability string `gluamapper:"capability" json:"capability"`
}

type GenesisType struct {
	AssetId   uint32      `gluamapper:"asset_id" json:"asset_id"`
	Threshold uint64      `gluamapper:"threshold" json:"threshold"`
	Vault     string      `gluamapper:"vault" json:"vault"`
	Admins    []AdminType `gluamapper:"admins" json:"admins"`
}

// hex encoded 32 byte seed, blank disables deposit addresses
type DerivationType struct {
	Seed string `gluamapper:"seed" json:"-"`
}

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Genesis       GenesisType          `gluamapper:"genesis" json:"genesis"`
	Derivation    DerivationType       `gluamapper:"derivation" json:"derivation"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Chain:         chain.Bitmark,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "",
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, errors.New(fmt.Sprintf("Chain: %q is not supported", options.Chain))
	}

	if "" == options.Database.Name {
		switch options.Chain {
		case chain.Bitmark:
			options.Database.Name = defaultBitmarkDatabase
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a valid directory", options.DataDirectory))
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a directory", options.DataDirectory))
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator
	for _, f := range []string{options.Database.Name, options.Logging.File} {
		if !util.IsPlainName(f) {
			return nil, errors.New(fmt.Sprintf("Files: %q is not plain name", f))
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// full path of the database
func (c *Configuration) databasePath() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// decode an account and check it belongs to the configured chain
func (c *Configuration) account(s string) (*account.Account, error) {
	a, err := account.FromBase58(s)
	if nil != err {
		return nil, err
	}
	if chain.IsTesting(c.Chain) != a.IsTesting() {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return a, nil
}

// convert the genesis section
func (c *Configuration) genesis() (bridge.Genesis, error) {
	g := bridge.Genesis{
		AssetId:   c.Genesis.AssetId,
		Threshold: c.Genesis.Threshold,
	}

	if "" == c.Genesis.Vault {
		return g, fault.ErrAccountNotConfigured
	}
	vault, err := c.account(c.Genesis.Vault)
	if nil != err {
		return g, err
	}
	g.Vault = vault

	for _, admin := range c.Genesis.Admins {
		a, err := c.account(admin.Account)
		if nil != err {
			return g, err
		}
		capability, err := authority.FromString(admin.Capability)
		if nil != err {
			return g, err
		}
		g.Admins = append(g.Admins, bridge.Admin{
			Account:    a,
			Capability: capability,
		})
	}
	return g, nil
}

// optional address derivation
func (c *Configuration) deriver() (*derivation.Deriver, error) {
	if "" == c.Derivation.Seed {
		return nil, nil
	}
	return derivation.NewFromHex(c.Derivation.Seed)
}
