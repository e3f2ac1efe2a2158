// Copyright 2026 The chainmap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command chainmap-demo walks through the chainmap API: inserts that
// trigger growth, erases that trigger shrinking, clone divergence,
// iteration, bucket introspection and the string Dict.
package main

import (
	"os"
	"strconv"

	plog "github.com/phuslu/log"

	"github.com/olekukonko/tablewriter"
	"github.com/tablekit/chainmap"
)

func main() {
	log := plog.Logger{
		Level:      plog.DebugLevel,
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer:     &plog.IOWriter{Writer: os.Stdout},
	}

	m := chainmap.New[int, int]()
	log.Info().
		Int("size", m.Len()).
		Int("capacity", m.Capacity()).
		Float64("loadFactor", m.LoadFactor()).
		Msg("fresh map")

	for i := 0; i < 16; i++ {
		m.Insert(i, i*i)
	}
	*m.GetOrInsert(100) = 100 * 100
	log.Info().
		Int("size", m.Len()).
		Int("capacity", m.Capacity()).
		Float64("loadFactor", m.LoadFactor()).
		Msg("after 17 inserts")

	if _, err := m.At(-1); err != nil {
		log.Info().Err(err).Msg("lookup of an absent key")
	}

	snapshot := m.Clone()
	for i := 0; i < 9; i++ {
		m.Erase(i)
	}
	log.Info().
		Int("size", m.Len()).
		Int("capacity", m.Capacity()).
		Float64("loadFactor", m.LoadFactor()).
		Msg("after erasing 9 keys")
	log.Info().
		Int("snapshotSize", snapshot.Len()).
		Bool("equal", chainmap.Equal(m, snapshot)).
		Msg("clone unaffected by erases")

	shown := 0
	m.All(func(k, v int) bool {
		log.Debug().Int("key", k).Int("value", v).Msg("iterating")
		shown++
		return shown < 4
	})

	dumpBuckets(m)

	d := chainmap.NewDict()
	d.Insert("tcp", "6")
	d.Insert("udp", "17")
	*d.GetOrInsert("icmp") = "1"
	if proto, err := d.At("udp"); err == nil {
		log.Info().Str("udp", proto).Msg("dictionary lookup")
	}
	if err := d.Erase("sctp"); err != nil {
		log.Warn().Err(err).Str("key", "sctp").Msg("strict erase")
	}
	d.Update([]chainmap.Pair[string, string]{
		{Key: "udp", Value: "17 (datagram)"},
		{Key: "gre", Value: "47"},
	})
	log.Info().Int("size", d.Len()).Msg("dictionary after update")
}

// dumpBuckets renders each key's bucket index and chain length.
func dumpBuckets(m *chainmap.Map[int, int]) {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Key", "Bucket", "Chain Length"})
	m.All(func(k, _ int) bool {
		idx, _ := m.BucketIndex(k)
		n, _ := m.BucketSize(k)
		tw.Append([]string{
			strconv.Itoa(k),
			strconv.Itoa(idx),
			strconv.Itoa(n),
		})
		return true
	})
	tw.Render()
}
