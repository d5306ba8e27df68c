// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := Range{2, 6}
	assert.Equal(t, 4, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
	assert.True(t, Range{3, 3}.IsEmpty())
	assert.Equal(t, Range{4, 6}, r.Intersect(Range{4, 9}))
	assert.Equal(t, Range{-1, -1}, r.Intersect(Range{6, 9}))
	assert.Equal(t, "[2,6)", r.String())
}
