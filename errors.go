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

import "errors"

var (
	// ErrKeyNotFound is returned by At, Ref, BucketIndex, and BucketSize
	// when the requested key is not in the table.
	ErrKeyNotFound = errors.New("chainmap: key not found")

	// ErrSizeMismatch is returned when constructing a table from key and
	// value sequences of unequal length.
	ErrSizeMismatch = errors.New("chainmap: keys and values lengths mismatch")

	// ErrInvalidKey is returned by Dict.Erase when the key to remove is
	// not present.
	ErrInvalidKey = errors.New("chainmap: invalid key")

	// ErrIteratorEnd is returned when dereferencing the past-the-end
	// iterator position.
	ErrIteratorEnd = errors.New("chainmap: iterator dereference past end")
)
