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
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Equal reports whether m1 and m2 contain the same set of keys with equal
// values. Only content participates in the comparison: two tables with
// different capacities or bucket layouts are equal if they hold the same
// key to value mapping. Values are compared using ==.
func Equal[K, V comparable](m1, m2 *Map[K, V]) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	equal := true
	m1.All(func(key K, value V) bool {
		v2, ok := m2.Get(key)
		if !ok || value != v2 {
			equal = false
		}
		return equal
	})
	return equal
}

// EqualFunc is like Equal but compares values using eq, allowing value
// types that are not comparable.
func EqualFunc[K comparable, V1, V2 any](
	m1 *Map[K, V1], m2 *Map[K, V2], eq func(V1, V2) bool,
) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	equal := true
	m1.All(func(key K, value V1) bool {
		v2, ok := m2.Get(key)
		if !ok || !eq(value, v2) {
			equal = false
		}
		return equal
	})
	return equal
}

// String converts m to a string representation using K's and V's String
// functions.
func String[K interface {
	comparable
	fmt.Stringer
}, V fmt.Stringer](m *Map[K, V]) string {
	return StringFunc(m,
		func(key K) string { return key.String() },
		func(value V) string { return value.String() },
	)
}

type strKV struct {
	k string
	v string
}

// StringFunc converts m to a string representation with the help of strK
// and strV functions to stringify m's keys and values. Entries are sorted
// by stringified key so the result is independent of bucket layout.
func StringFunc[K comparable, V any](m *Map[K, V],
	strK func(key K) string,
	strV func(value V) string) string {
	if m == nil || m.Len() == 0 {
		return "chainmap.Map[]"
	}
	strs := make([]strKV, 0, m.Len())
	size := 0
	m.All(func(key K, value V) bool {
		e := strKV{k: strK(key), v: strV(value)}
		size += len(e.k) + len(e.v)
		strs = append(strs, e)
		return true
	})
	slices.SortFunc(strs, func(a, b strKV) bool { return a.k < b.k })

	var b strings.Builder
	b.Grow(len("chainmap.Map[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		size) // space for keys and values
	b.WriteString("chainmap.Map[")
	for i, e := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.k)
		b.WriteByte(':')
		b.WriteString(e.v)
	}
	b.WriteByte(']')
	return b.String()
}
