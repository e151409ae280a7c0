package capture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var uint32TestCases = map[string]struct {
	Input string
	Value uint32
	OK    bool
}{
	"Zero":         {Input: "0", Value: 0, OK: true},
	"Max":          {Input: "4294967295", Value: 4294967295, OK: true},
	"Overflow":     {Input: "4294967296", OK: false},
	"Negative":     {Input: "-1", OK: false},
	"Empty":        {Input: "", OK: false},
	"Hex Rejected": {Input: "0x10", OK: false},
	"Junk":         {Input: "12a", OK: false},
}

func TestParseUint32(t *testing.T) {
	for name, testCase := range uint32TestCases {
		t.Run(name, func(t *testing.T) {
			val, ok := ParseUint32(testCase.Input)
			require.Equal(t, testCase.OK, ok)
			if testCase.OK {
				require.Equal(t, testCase.Value, val)
			}
		})
	}
}

func TestParseUint64(t *testing.T) {
	val, ok := ParseUint64("18446744073709551615")
	require.True(t, ok)
	require.Equal(t, uint64(18446744073709551615), val)

	_, ok = ParseUint64("18446744073709551616")
	require.False(t, ok)
}

var boolTestCases = map[string]struct {
	Input string
	Value bool
	OK    bool
}{
	"False":          {Input: "0", Value: false, OK: true},
	"True":           {Input: "1", Value: true, OK: true},
	"Word Rejected":  {Input: "true", OK: false},
	"Two Rejected":   {Input: "2", OK: false},
	"Empty Rejected": {Input: "", OK: false},
}

func TestParseBool(t *testing.T) {
	for name, testCase := range boolTestCases {
		t.Run(name, func(t *testing.T) {
			val, ok := ParseBool(testCase.Input)
			require.Equal(t, testCase.OK, ok)
			if testCase.OK {
				require.Equal(t, testCase.Value, val)
			}
		})
	}
}

var handleTestCases = map[string]struct {
	Input string
	Value Handle
	OK    bool
}{
	"Bare Hex":         {Input: "1A2B", Value: 0x1A2B, OK: true},
	"Lower Prefix":     {Input: "0x1a2b", Value: 0x1A2B, OK: true},
	"Upper Prefix":     {Input: "0XFF", Value: 0xFF, OK: true},
	"Zero":             {Input: "0", Value: 0, OK: true},
	"Empty":            {Input: "", OK: false},
	"Prefix Only":      {Input: "0x", OK: false},
	"Junk":             {Input: "0xZZ", OK: false},
	"Full 64 Bits":     {Input: "FFFFFFFFFFFFFFFF", Value: 0xFFFFFFFFFFFFFFFF, OK: true},
	"Too Many Nibbles": {Input: "1FFFFFFFFFFFFFFFF", OK: false},
}

func TestParseHandle(t *testing.T) {
	for name, testCase := range handleTestCases {
		t.Run(name, func(t *testing.T) {
			val, ok := ParseHandle(testCase.Input)
			require.Equal(t, testCase.OK, ok)
			if testCase.OK {
				require.Equal(t, testCase.Value, val)
			}
		})
	}
}

func TestHandleString(t *testing.T) {
	require.Equal(t, "0x1A2B", Handle(0x1a2b).String())
	require.Equal(t, "0x0", Handle(0).String())
}

func TestParseFloat32(t *testing.T) {
	val, ok := ParseFloat32("1.525")
	require.True(t, ok)
	require.InDelta(t, 1.525, val, 0.0001)

	_, ok = ParseFloat32("fast")
	require.False(t, ok)
}
