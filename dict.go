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

package chainmap

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/zeebo/xxh3"
)

// Dict maps string keys to string values. It wraps a Map[string, string]
// and re-exposes its operations, layering two behaviors on top: Erase fails
// with ErrInvalidKey when the key is absent (where Map.Erase merely returns
// false), and Update performs overwriting bulk insertion (where Map.Insert
// never overwrites). Keys are hashed with xxh3 under a per-dict random
// seed.
type Dict struct {
	m *Map[string, string]
}

func dictHash() func(maphash.Seed, string) uint64 {
	seed := rand.Uint64()
	return func(_ maphash.Seed, key string) uint64 {
		return xxh3.HashStringSeed(key, seed)
	}
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{m: New[string, string](WithHash[string, string](dictHash()))}
}

// DictFromKeysValues constructs a Dict from a sequence of keys and a
// matching sequence of values, with the same contract as FromKeysValues:
// unequal lengths fail with ErrSizeMismatch, and the last occurrence of a
// duplicate key wins.
func DictFromKeysValues(keys, values []string) (*Dict, error) {
	m, err := FromKeysValues(keys, values, WithHash[string, string](dictHash()))
	if err != nil {
		return nil, err
	}
	return &Dict{m: m}, nil
}

// Len returns the number of pairs in the dict.
func (d *Dict) Len() int { return d.m.Len() }

// Capacity returns the current number of buckets.
func (d *Dict) Capacity() int { return d.m.Capacity() }

// Empty reports whether the dict holds no pairs.
func (d *Dict) Empty() bool { return d.m.Empty() }

// LoadFactor returns Len divided by Capacity.
func (d *Dict) LoadFactor() float64 { return d.m.LoadFactor() }

// Insert adds key mapped to value and reports whether the pair was added;
// it never overwrites. See Map.Insert.
func (d *Dict) Insert(key, value string) bool { return d.m.Insert(key, value) }

// ContainsKey reports whether key is in the dict.
func (d *Dict) ContainsKey(key string) bool { return d.m.ContainsKey(key) }

// Get retrieves the value stored for key, returning ok=false if the key is
// not present.
func (d *Dict) Get(key string) (string, bool) { return d.m.Get(key) }

// At returns the value stored for key, or ErrKeyNotFound if absent.
func (d *Dict) At(key string) (string, error) { return d.m.At(key) }

// GetOrInsert returns a pointer to the value stored for key, inserting the
// empty string first if the key is absent. See Map.GetOrInsert.
func (d *Dict) GetOrInsert(key string) *string { return d.m.GetOrInsert(key) }

// BucketIndex returns the index of the bucket holding key. See
// Map.BucketIndex.
func (d *Dict) BucketIndex(key string) (int, error) { return d.m.BucketIndex(key) }

// BucketSize returns the length of the bucket holding key. See
// Map.BucketSize.
func (d *Dict) BucketSize(key string) (int, error) { return d.m.BucketSize(key) }

// Clear removes every pair, keeping the current capacity.
func (d *Dict) Clear() { d.m.Clear() }

// Begin returns a cursor at the dict's first pair, or End if it is empty.
func (d *Dict) Begin() Iterator[string, string] { return d.m.Begin() }

// End returns the dict's past-the-end cursor.
func (d *Dict) End() Iterator[string, string] { return d.m.End() }

// All calls yield sequentially for each key and value in the dict.
func (d *Dict) All(yield func(key, value string) bool) { d.m.All(yield) }

// Clone returns a deep copy of the dict sharing no storage with d.
func (d *Dict) Clone() *Dict {
	return &Dict{m: d.m.Clone()}
}

// Erase removes the pair with the given key. Erasing an absent key fails
// with ErrInvalidKey; membership is checked before delegating to the
// table's erase, which handles removal and any shrink.
func (d *Dict) Erase(key string) error {
	if !d.m.ContainsKey(key) {
		return ErrInvalidKey
	}
	d.m.Erase(key)
	return nil
}

// Update applies a sequence of pairs to the dict: each pair is inserted if
// its key is absent, otherwise the stored value is overwritten.
func (d *Dict) Update(pairs []Pair[string, string]) {
	for _, p := range pairs {
		*d.m.GetOrInsert(p.Key) = p.Value
	}
}
