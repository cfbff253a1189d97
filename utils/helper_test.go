package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntOrZero(t *testing.T) {
	cases := []struct {
		in       string
		expected int
	}{
		{"42", 42},
		{" 7 ", 7},
		{"-3", -3},
		{"invalid", 0},
		{"", 0},
		{"1.5", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, ParseIntOrZero(tc.in), tc.in)
	}
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []int{1, 2, 10}, SortedKeys(map[int]string{10: "c", 1: "a", 2: "b"}))
	assert.Empty(t, SortedKeys(map[int]string{}))
}

func TestDereferencePtr(t *testing.T) {
	s := "addr"
	assert.Equal(t, "addr", DereferencePtr(&s))
	assert.Equal(t, "", DereferencePtr[string](nil))
	assert.Equal(t, "n/a", DereferencePtr(nil, "n/a"))
}

func TestUnmarshalListFromJSON(t *testing.T) {
	type item struct {
		Id int `json:"id"`
	}

	list, err := UnmarshalListFromJSON[item]([]byte(`[{"id": 1}, {"id": 2}]`))
	require.NoError(t, err)
	assert.Equal(t, []item{{Id: 1}, {Id: 2}}, list)

	list, err = UnmarshalListFromJSON[item]([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = UnmarshalListFromJSON[item]([]byte(`[{"id": `))
	assert.Error(t, err)
}
