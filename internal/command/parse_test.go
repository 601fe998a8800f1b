package command_test

import (
	"math"
	"testing"

	"group-ledger/internal/command"
	"group-ledger/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected []string
		err      error
	}{
		{name: "Simple", line: "add_user trip alice", expected: []string{"add_user", "trip", "alice"}},
		{name: "Repeated spaces", line: "  list_users   trip  ", expected: []string{"list_users", "trip"}},
		{name: "Trailing newline", line: "list_groups\n", expected: []string{"list_groups"}},
		{name: "Empty", line: "", expected: []string{}},
		{name: "Four tokens", line: "add_xct trip alice 10", expected: []string{"add_xct", "trip", "alice", "10"}},
		{name: "Five tokens", line: "add_xct trip alice 10 extra", err: command.ErrTooManyArguments},
		{name: "Tab is part of token", line: "a\tb c", expected: []string{"a\tb", "c"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args, err := command.Tokenize(tc.line)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, args)
		})
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
	}{
		{"10", 10},
		{"-12.5", -12.5},
		{"+3", 3},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"2E-1", 0.2},
		{"12abc", 12},
		{"7e", 7},
		{"7e+", 7},
		{"3.25.1", 3.25},
		{"\t42", 42},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			amount, err := command.ParseAmount(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, amount)
		})
	}
}

func TestParseAmount_Special(t *testing.T) {
	amount, err := command.ParseAmount("inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(amount, 1))

	amount, err = command.ParseAmount("-Infinity")
	require.NoError(t, err)
	assert.True(t, math.IsInf(amount, -1))

	amount, err = command.ParseAmount("1e999")
	require.NoError(t, err)
	assert.True(t, math.IsInf(amount, 1))

	amount, err = command.ParseAmount("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(amount))
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "-", ".", "+.", "e5", "x12"} {
		t.Run(input, func(t *testing.T) {
			_, err := command.ParseAmount(input)
			assert.ErrorIs(t, err, domain.ErrInvalidNumber)
		})
	}
}

func TestParseCount(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"3", 3},
		{"-2", -2},
		{"+7", 7},
		{"0", 0},
		{"12abc", 12},
		{"4.9", 4},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			n, err := command.ParseCount(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, n)
		})
	}

	for _, input := range []string{"", "abc", "-", "x1"} {
		_, err := command.ParseCount(input)
		assert.ErrorIs(t, err, domain.ErrInvalidNumber, input)
	}
}
