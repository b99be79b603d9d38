// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/fixtures"
)

const configTemplate = `
return {
    data_directory = ".",
    chain = "%s",
    genesis = {
        asset_id = 3,
        threshold = 500,
        vault = "%s",
        admins = {
            { account = "%s", capability = "Deposit" },
        },
    },
    derivation = {
        seed = "%s",
    },
    logging = {
        size = 4096,
        count = 2,
    },
}
`

func writeConfiguration(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "bridgectl")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "bridgectl.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestGetConfiguration(t *testing.T) {
	vault := fixtures.Account(9)
	depositor := fixtures.Account(10)
	content := fmt.Sprintf(configTemplate, "testing", vault, depositor, strings.Repeat("ab", 32))

	fileName, cleanup := writeConfiguration(t, content)
	defer cleanup()

	c, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "configuration") {
		return
	}

	dir := filepath.Dir(fileName)
	assert.Equal(t, filepath.Clean(dir), c.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), c.databasePath(), "database")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "bridgectl.log", c.Logging.File, "log file")
	assert.Equal(t, 4096, c.Logging.Size, "log size")

	g, err := c.genesis()
	assert.Nil(t, err, "genesis")
	assert.Equal(t, uint32(3), g.AssetId, "asset")
	assert.Equal(t, uint64(500), g.Threshold, "threshold")
	assert.True(t, vault.Equal(g.Vault), "vault")
	if assert.Len(t, g.Admins, 1, "admins") {
		assert.True(t, depositor.Equal(g.Admins[0].Account), "admin")
		assert.Equal(t, authority.Deposit, g.Admins[0].Capability, "capability")
	}

	d, err := c.deriver()
	assert.Nil(t, err, "deriver")
	assert.NotNil(t, d, "deriver disabled")
}

func TestWrongNetwork(t *testing.T) {
	content := fmt.Sprintf(configTemplate, "bitmark", fixtures.Account(9), fixtures.Account(10), "")

	fileName, cleanup := writeConfiguration(t, content)
	defer cleanup()

	c, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "configuration") {
		return
	}
	assert.Equal(t, "bitmark.leveldb", c.Database.Name, "database name")

	_, err = c.genesis()
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "test account on live chain")

	d, err := c.deriver()
	assert.Nil(t, err, "deriver")
	assert.Nil(t, d, "blank seed must disable derivation")
}

func TestInvalidChain(t *testing.T) {
	content := fmt.Sprintf(configTemplate, "nonsense", fixtures.Account(9), fixtures.Account(10), "")

	fileName, cleanup := writeConfiguration(t, content)
	defer cleanup()

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "invalid chain accepted")
}
