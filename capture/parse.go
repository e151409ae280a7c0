package capture

import (
	"fmt"
	"strconv"
	"strings"
)

// Handle is an opaque identifier recorded for a pool or allocation. Handles
// are only ever compared and looked up; the recorded pointer value has no
// meaning in the replaying process.
type Handle uint64

func (h Handle) String() string {
	return fmt.Sprintf("0x%X", uint64(h))
}

// ParseUint32 parses a base-10 unsigned value that must fit in 32 bits.
func ParseUint32(str string) (uint32, bool) {
	val, err := strconv.ParseUint(str, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(val), true
}

// ParseUint64 parses a base-10 unsigned 64-bit value.
func ParseUint64(str string) (uint64, bool) {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// ParseFloat32 parses a decimal floating-point value, as used for timestamps.
func ParseFloat32(str string) (float32, bool) {
	val, err := strconv.ParseFloat(str, 32)
	if err != nil {
		return 0, false
	}
	return float32(val), true
}

// ParseBool accepts exactly "0" or "1". Recordings never use any other
// boolean spelling, so anything else is treated as malformed.
func ParseBool(str string) (bool, bool) {
	switch str {
	case "0":
		return false, true
	case "1":
		return true, true
	}
	return false, false
}

// ParseHandle parses a hexadecimal handle, with or without a 0x prefix.
func ParseHandle(str string) (Handle, bool) {
	if len(str) > 2 && (strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X")) {
		str = str[2:]
	}
	if str == "" {
		return 0, false
	}
	val, err := strconv.ParseUint(str, 16, 64)
	if err != nil {
		return 0, false
	}
	return Handle(val), true
}
