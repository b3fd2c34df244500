package store

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Put("2_1", 1)
	m.Put("10_1", 2)
	m.Put("1_1", 3)

	assert.Equal(t, []string{"2_1", "10_1", "1_1"}, m.Keys())
	assert.Equal(t, []int{1, 2, 3}, m.Values())
}

func TestOrderedMapOverwriteKeepsPosition(t *testing.T) {
	m := NewOrderedMap[string]()
	m.Put("a", "1")
	m.Put("b", "2")
	m.Put("a", "3")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, []string{"3", "2"}, m.Values())
	assert.Equal(t, 2, m.Len())
}

func TestOrderedMapDelete(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())

	_, ok := m.Get("b")
	assert.False(t, ok)
}

func TestOrderedMapJSONRoundTripPreservesOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Put("2_1", 1)
	m.Put("10_1", 2)

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(raw), "2_1"), strings.Index(string(raw), "10_1"),
		"document key order must be insertion order")

	decoded := NewOrderedMap[int]()
	require.NoError(t, json.Unmarshal(raw, decoded))
	assert.Equal(t, []string{"2_1", "10_1"}, decoded.Keys())
}

func TestOrderedMapUnmarshalNull(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Put("a", 1)

	require.NoError(t, m.UnmarshalJSON([]byte("null")))
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
}
