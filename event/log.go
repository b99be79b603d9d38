// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/binary"
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/storage"
)

var countKey = []byte("count")

// Log - sequenced event storage
type Log struct {
	events storage.Handle
	count  storage.Handle
}

// NewLog - log over an event pool and its counter pool
func NewLog(events storage.Handle, count storage.Handle) *Log {
	return &Log{
		events: events,
		count:  count,
	}
}

// Count - number of committed events
func (l *Log) Count() uint64 {
	n, _ := l.count.GetN(countKey)
	return n
}

// Append - stage an event and return its sequence number
func (l *Log) Append(trx storage.Transaction, e Event) uint64 {
	sequence, _ := trx.GetN(l.count, countKey)

	e.Sequence = sequence
	data, err := json.Marshal(e)
	logger.PanicIfError("event.Append", err)

	trx.Put(l.events, sequenceKey(sequence), data)
	trx.PutN(l.count, countKey, sequence+1)
	return sequence
}

// Fetch - up to count committed events starting at sequence start
func (l *Log) Fetch(start uint64, count int) ([]Event, error) {
	elements, err := l.events.NewFetchCursor().Seek(sequenceKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	events := make([]Event, 0, len(elements))
	for _, element := range elements {
		var e Event
		err := json.Unmarshal(element.Value, &e)
		if nil != err {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func sequenceKey(sequence uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, sequence)
	return key
}
