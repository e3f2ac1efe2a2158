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

// Iterator is a forward-only cursor over the pairs of a Map. It walks
// buckets in index order and pairs within a bucket in storage order, so the
// traversal visits every pair exactly once but in no externally meaningful
// order: bucket indices are hash-derived and change across resizes.
//
// A cursor holds a non-owning reference to its table and is valid only
// while the table is not structurally mutated. Advancing or dereferencing a
// cursor after an insert, erase, or resize is undefined.
type Iterator[K comparable, V any] struct {
	m      *Map[K, V]
	bucket int
	slot   int
}

// Begin returns a cursor positioned at the first pair: slot 0 of the first
// non-empty bucket. For an empty table Begin returns End.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	for i, b := range m.buckets {
		if len(b) > 0 {
			return Iterator[K, V]{m: m, bucket: i}
		}
	}
	return m.End()
}

// End returns the sentinel past-the-end cursor: bucket index equal to the
// capacity, slot 0.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m, bucket: len(m.buckets)}
}

// Next advances the cursor: to the next slot of the current bucket when one
// exists, otherwise to slot 0 of the next non-empty bucket, otherwise to
// End. Calling Next on the End position is a no-op.
func (it *Iterator[K, V]) Next() {
	if it.bucket >= len(it.m.buckets) {
		return
	}
	it.slot++
	if it.slot < len(it.m.buckets[it.bucket]) {
		return
	}
	it.slot = 0
	for it.bucket++; it.bucket < len(it.m.buckets); it.bucket++ {
		if len(it.m.buckets[it.bucket]) > 0 {
			return
		}
	}
}

// Equal reports whether the two cursors walk the same table and hold the
// same (bucket, slot) position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.m == other.m && it.bucket == other.bucket && it.slot == other.slot
}

// Pair returns the pair at the cursor's position. Dereferencing the End
// position fails with ErrIteratorEnd.
func (it Iterator[K, V]) Pair() (Pair[K, V], error) {
	if it.bucket >= len(it.m.buckets) || it.slot >= len(it.m.buckets[it.bucket]) {
		return Pair[K, V]{}, ErrIteratorEnd
	}
	return it.m.buckets[it.bucket][it.slot], nil
}

// All calls yield sequentially for each key and value in the table, in
// cursor order. If yield returns false, All stops the iteration. The table
// must not be mutated during the call.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	for _, b := range m.buckets {
		for _, p := range b {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
