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
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func (d *Dict) toBuiltinMap() map[string]string {
	r := make(map[string]string)
	d.All(func(k, v string) bool {
		r[k] = v
		return true
	})
	return r
}

func TestDictBasic(t *testing.T) {
	d := NewDict()
	require.True(t, d.Empty())
	require.EqualValues(t, initialCapacity, d.Capacity())

	require.True(t, d.Insert("apple", "fruit"))
	require.False(t, d.Insert("apple", "vegetable"))
	require.EqualValues(t, 1, d.Len())

	v, err := d.At("apple")
	require.NoError(t, err)
	require.Equal(t, "fruit", v)

	_, err = d.At("pear")
	require.ErrorIs(t, err, ErrKeyNotFound)

	*d.GetOrInsert("pear") = "fruit"
	v, ok := d.Get("pear")
	require.True(t, ok)
	require.Equal(t, "fruit", v)
	require.True(t, d.ContainsKey("pear"))
}

func TestDictEraseStrict(t *testing.T) {
	d := NewDict()
	d.Insert("k", "v")

	// Unlike Map.Erase, which reports an absent key with a plain false,
	// the dict fails loudly.
	err := d.Erase("missing")
	require.ErrorIs(t, err, ErrInvalidKey)
	require.EqualValues(t, 1, d.Len())

	require.NoError(t, d.Erase("k"))
	require.False(t, d.ContainsKey("k"))

	err = d.Erase("k")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestDictUpdate(t *testing.T) {
	d, err := DictFromKeysValues(
		[]string{"a", "b"},
		[]string{"1", "2"},
	)
	require.NoError(t, err)

	// Update overwrites present keys and inserts absent ones.
	d.Update([]Pair[string, string]{
		{"b", "20"},
		{"c", "30"},
	})

	want := map[string]string{"a": "1", "b": "20", "c": "30"}
	if diff := cmp.Diff(want, d.toBuiltinMap()); diff != "" {
		t.Errorf("contents mismatch (-want +got):\n%s", diff)
	}
}

func TestDictFromKeysValues(t *testing.T) {
	t.Run("mismatch", func(t *testing.T) {
		_, err := DictFromKeysValues([]string{"a"}, []string{"1", "2"})
		require.ErrorIs(t, err, ErrSizeMismatch)
	})

	t.Run("duplicates", func(t *testing.T) {
		d, err := DictFromKeysValues(
			[]string{"a", "a"},
			[]string{"old", "new"},
		)
		require.NoError(t, err)
		require.EqualValues(t, 1, d.Len())
		v, err := d.At("a")
		require.NoError(t, err)
		require.Equal(t, "new", v)
	})
}

func TestDictResize(t *testing.T) {
	d := NewDict()
	for i := 0; i < 100; i++ {
		require.True(t, d.Insert(strconv.Itoa(i), "v"))
		require.LessOrEqual(t, d.LoadFactor(), 0.75)
	}
	require.EqualValues(t, 100, d.Len())

	for i := 0; i < 100; i++ {
		require.NoError(t, d.Erase(strconv.Itoa(i)))
		if d.Capacity() > minCapacity {
			require.GreaterOrEqual(t, d.LoadFactor(), 0.25)
		}
	}
	require.True(t, d.Empty())
}

func TestDictClone(t *testing.T) {
	d := NewDict()
	d.Insert("a", "1")
	d.Insert("b", "2")

	c := d.Clone()
	*c.GetOrInsert("a") = "changed"

	v, err := d.At("a")
	require.NoError(t, err)
	require.Equal(t, "1", v)

	v, err = c.At("a")
	require.NoError(t, err)
	require.Equal(t, "changed", v)
}

func TestDictIteration(t *testing.T) {
	d, err := DictFromKeysValues(
		[]string{"x", "y", "z"},
		[]string{"1", "2", "3"},
	)
	require.NoError(t, err)

	got := make(map[string]string)
	for it := d.Begin(); !it.Equal(d.End()); it.Next() {
		p, err := it.Pair()
		require.NoError(t, err)
		got[p.Key] = p.Value
	}
	require.Equal(t, map[string]string{"x": "1", "y": "2", "z": "3"}, got)
}
