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

// Package chainmap provides Map, a hash table that resolves collisions by
// separate chaining: the table owns an array of buckets whose length is
// always a power of two, and each bucket is an insertion-ordered sequence of
// key/value pairs. The low bits of hash(key) select the bucket.
//
// The table resizes wholesale. An insert that pushes the load factor (len
// divided by capacity) above 3/4 doubles the capacity and rehashes every
// pair into a freshly allocated bucket array; an erase that drops the load
// factor below 1/4 halves the capacity the same way, down to a floor of one
// bucket. Resizing is a full O(len) step paid by the triggering operation,
// not amortized across operations, and no partially rehashed state is ever
// observable.
//
// By default keys are hashed with hash/maphash under a per-map seed. A
// different hash function can be supplied with the WithHash option; such a
// function must return equal hashes for equal keys and should distribute
// across the entire 64 bits of the value.
//
// A Map is NOT goroutine-safe.
package chainmap

import (
	"fmt"
	"hash/maphash"
	"strings"
)

const (
	// initialCapacity is the number of buckets a freshly constructed table
	// starts with. minCapacity is the floor below which shrinking stops.
	initialCapacity = 16
	minCapacity     = 1

	// Load-factor thresholds represented as integer ratios so the resize
	// triggers stay in integer math. Growth triggers while len/capacity
	// exceeds maxLoadNum/loadDen (3/4), shrinking while it is below
	// 1/loadDen (1/4).
	maxLoadNum = 3
	loadDen    = 4

	debug      = false
	invariants = false
)

// Pair holds a key and the value mapped to it.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// bucket is a chain of pairs whose keys share a bucket index. Pairs keep
// their relative order across inserts, erases, and rehashes.
type bucket[K comparable, V any] []Pair[K, V]

// Map is a hash table from keys to values using separate chaining. The zero
// value is not usable; construct with New, FromKeysValues, or FromPairs.
type Map[K comparable, V any] struct {
	// hash and seed form the hashing capability for K. The seed is fixed
	// for the lifetime of the table so that rehashing redistributes pairs
	// deterministically.
	hash func(maphash.Seed, K) uint64
	seed maphash.Seed

	// buckets always has power-of-two length; len(buckets) is the table
	// capacity reported by Capacity.
	buckets []bucket[K, V]
	// count is the number of live pairs across all buckets.
	count int
}

// New constructs an empty Map with the default capacity of 16 buckets.
func New[K comparable, V any](options ...option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		hash:    maphash.Comparable[K],
		seed:    maphash.MakeSeed(),
		buckets: make([]bucket[K, V], initialCapacity),
	}
	for _, op := range options {
		op.apply(m)
	}
	m.checkInvariants()
	return m
}

// FromKeysValues constructs a Map from a sequence of keys and a matching
// sequence of values. Sequences of unequal length fail with ErrSizeMismatch
// and no table is produced. A key that appears more than once ends up with
// the value of its last occurrence.
func FromKeysValues[K comparable, V any](
	keys []K, values []V, options ...option[K, V],
) (*Map[K, V], error) {
	if len(keys) != len(values) {
		return nil, ErrSizeMismatch
	}
	m := New[K, V](options...)
	for i, k := range keys {
		if !m.Insert(k, values[i]) {
			m.find(k).Value = values[i]
		}
	}
	return m, nil
}

// FromPairs constructs a Map from a sequence of pairs, with the same
// last-occurrence-wins rule as FromKeysValues.
func FromPairs[K comparable, V any](
	pairs []Pair[K, V], options ...option[K, V],
) *Map[K, V] {
	m := New[K, V](options...)
	for _, p := range pairs {
		if !m.Insert(p.Key, p.Value) {
			m.find(p.Key).Value = p.Value
		}
	}
	return m
}

// Len returns the number of pairs in the table.
func (m *Map[K, V]) Len() int {
	return m.count
}

// Capacity returns the current number of buckets.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

// Empty reports whether the table holds no pairs.
func (m *Map[K, V]) Empty() bool {
	return m.count == 0
}

// LoadFactor returns Len divided by Capacity.
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.count) / float64(len(m.buckets))
}

// bucketMask returns the mask used to reduce a hash to a bucket index.
func (m *Map[K, V]) bucketMask() uint64 {
	return uint64(len(m.buckets) - 1)
}

// bucketFor returns the index of the bucket key hashes to under the current
// capacity.
func (m *Map[K, V]) bucketFor(key K) uint64 {
	return m.hash(m.seed, key) & m.bucketMask()
}

// find returns a pointer to the pair stored for key, or nil if the key is
// absent. The pointer is invalidated by any structural mutation.
func (m *Map[K, V]) find(key K) *Pair[K, V] {
	b := m.buckets[m.bucketFor(key)]
	for i := range b {
		if b[i].Key == key {
			return &b[i]
		}
	}
	return nil
}

// Insert adds key mapped to value and reports whether the pair was added.
// Inserting a key that is already present leaves the table unchanged and
// returns false; Insert never overwrites. A successful insert grows the
// table while the load factor exceeds 3/4, doubling the capacity and
// rehashing every pair each round.
func (m *Map[K, V]) Insert(key K, value V) bool {
	idx := m.bucketFor(key)
	b := m.buckets[idx]
	for i := range b {
		if b[i].Key == key {
			return false
		}
	}
	m.buckets[idx] = append(b, Pair[K, V]{Key: key, Value: value})
	m.count++
	for m.count*loadDen > len(m.buckets)*maxLoadNum {
		m.rehash(2 * len(m.buckets))
	}
	m.checkInvariants()
	return true
}

// ContainsKey reports whether a pair with the given key is in the table.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.find(key) != nil
}

// Get retrieves the value stored for key, returning ok=false if the key is
// not present.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	if p := m.find(key); p != nil {
		return p.Value, true
	}
	return value, false
}

// At returns the value stored for key. Unlike Get, a lookup of an absent
// key fails with ErrKeyNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	if p := m.find(key); p != nil {
		return p.Value, nil
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Ref returns a pointer to the value stored for key, permitting in-place
// modification, or ErrKeyNotFound if the key is absent. The pointer is
// valid only until the next structural mutation of the table.
func (m *Map[K, V]) Ref(key K) (*V, error) {
	if p := m.find(key); p != nil {
		return &p.Value, nil
	}
	return nil, ErrKeyNotFound
}

// GetOrInsert returns a pointer to the value stored for key, first
// inserting the zero value of V if the key is absent. The insert may grow
// the table; the returned pointer refers into the post-resize bucket array
// and, like Ref, is valid only until the next structural mutation. The
// value of a key that is already present is never overwritten.
func (m *Map[K, V]) GetOrInsert(key K) *V {
	if p := m.find(key); p != nil {
		return &p.Value
	}
	var zero V
	m.Insert(key, zero)
	return &m.find(key).Value
}

// Erase removes the pair with the given key and reports whether a pair was
// removed. Erasing an absent key is a no-op that returns false. Remaining
// pairs in the affected bucket keep their relative order. A successful
// erase shrinks the table while the load factor is below 1/4 and the
// capacity is above 1, halving the capacity and rehashing every surviving
// pair each round.
func (m *Map[K, V]) Erase(key K) bool {
	idx := m.bucketFor(key)
	b := m.buckets[idx]
	for i := range b {
		if b[i].Key != key {
			continue
		}
		m.buckets[idx] = append(b[:i], b[i+1:]...)
		m.count--
		for m.count*loadDen < len(m.buckets) && len(m.buckets) > minCapacity {
			m.rehash(len(m.buckets) / 2)
		}
		m.checkInvariants()
		return true
	}
	return false
}

// BucketIndex returns the index of the bucket holding key, or
// ErrKeyNotFound if the key is absent. The index is only meaningful until
// the next resize.
func (m *Map[K, V]) BucketIndex(key K) (int, error) {
	if !m.ContainsKey(key) {
		return 0, ErrKeyNotFound
	}
	return int(m.bucketFor(key)), nil
}

// BucketSize returns the number of pairs in the bucket holding key, or
// ErrKeyNotFound if the key is absent.
func (m *Map[K, V]) BucketSize(key K) (int, error) {
	if !m.ContainsKey(key) {
		return 0, ErrKeyNotFound
	}
	return len(m.buckets[m.bucketFor(key)]), nil
}

// Clear removes every pair from the table. The bucket array keeps its
// current capacity; clearing never shrinks.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.count = 0
	m.checkInvariants()
}

// Clone returns a deep copy of the table: identical capacity, count, and
// pair contents, sharing no storage with m. Mutating the clone never
// affects the original and vice versa.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		hash:    m.hash,
		seed:    m.seed,
		buckets: make([]bucket[K, V], len(m.buckets)),
		count:   m.count,
	}
	for i, b := range m.buckets {
		if len(b) > 0 {
			c.buckets[i] = append(bucket[K, V](nil), b...)
		}
	}
	c.checkInvariants()
	return c
}

// rehash redistributes every pair into a freshly allocated bucket array of
// newCapacity buckets and installs it, discarding the old array. Pairs
// coming from the same source bucket keep their relative order in their
// destination bucket (stable rehash). newCapacity must be a power of two.
func (m *Map[K, V]) rehash(newCapacity int) {
	if debug {
		fmt.Printf("rehash: capacity=%d->%d count=%d\n",
			len(m.buckets), newCapacity, m.count)
	}
	next := make([]bucket[K, V], newCapacity)
	mask := uint64(newCapacity - 1)
	for _, b := range m.buckets {
		for _, p := range b {
			idx := m.hash(m.seed, p.Key) & mask
			next[idx] = append(next[idx], p)
		}
	}
	m.buckets = next
}

func (m *Map[K, V]) checkInvariants() {
	if invariants {
		if c := len(m.buckets); c < minCapacity || c&(c-1) != 0 {
			panic(fmt.Sprintf("invariant failed: capacity %d is not a power of two\n%s",
				c, m.debugString()))
		}

		var count int
		for idx, b := range m.buckets {
			for i := range b {
				if want := m.bucketFor(b[i].Key); want != uint64(idx) {
					panic(fmt.Sprintf("invariant failed: key %v stored in bucket %d, indexes to %d\n%s",
						b[i].Key, idx, want, m.debugString()))
				}
				for j := i + 1; j < len(b); j++ {
					if b[i].Key == b[j].Key {
						panic(fmt.Sprintf("invariant failed: key %v duplicated in bucket %d\n%s",
							b[i].Key, idx, m.debugString()))
					}
				}
				count++
			}
		}
		if count != m.count {
			panic(fmt.Sprintf("invariant failed: found %d pairs, but count is %d\n%s",
				count, m.count, m.debugString()))
		}
	}
}

func (m *Map[K, V]) debugString() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "capacity=%d  count=%d  load-factor=%.4f\n",
		len(m.buckets), m.count, m.LoadFactor())
	for idx, b := range m.buckets {
		if len(b) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "  %4d:", idx)
		for _, p := range b {
			fmt.Fprintf(&buf, " %v=%v", p.Key, p.Value)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
