// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("z", 1)
	om.Add("a", 2)
	om.Add("m", 3)
	om.Add("a", 4)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []KeyValue[string, int]{{"z", 1}, {"a", 4}, {"m", 3}}, om.Order)
	assert.Equal(t, 1, om.Map["a"])
}

func TestGetOrAdd(t *testing.T) {
	// the zero value is ready to use
	var om Map[string, *int]
	calls := 0
	newFn := func() *int { calls++; v := calls; return &v }

	a, added := om.GetOrAdd("a", newFn)
	assert.True(t, added)
	b, added := om.GetOrAdd("b", newFn)
	assert.True(t, added)
	a2, added := om.GetOrAdd("a", newFn)
	assert.False(t, added)
	assert.Same(t, a, a2)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, *b)
	assert.Equal(t, 2, om.Len())
}

func TestAll(t *testing.T) {
	om := New[string, int]()
	om.Add("x", 1)
	om.Add("y", 2)
	om.Add("z", 3)
	var keys []string
	for k, v := range om.All() {
		if v == 3 {
			break
		}
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"x", "y"}, keys)

	var nilMap *Map[string, int]
	assert.Equal(t, 0, nilMap.Len())
	for range nilMap.All() {
		t.Fatal("nil map should not yield")
	}
}
