// Package ranges implements inclusive 1-based line range sets, written on the
// command line as a comma-separated list such as "-10,15,18-25,31-".
package ranges

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

type lineRange struct {
	first uint64
	last  uint64
}

// Sequence is a sorted, merged set of inclusive line ranges. The zero value
// is the empty sequence, which includes every line.
type Sequence struct {
	ranges []lineRange
}

// Parse replaces the sequence with the ranges described by str. Each
// comma-separated part is a single line "a", a closed range "a-b", an open
// start "-b" (meaning 1 through b), or an open end "a-" (a through the end of
// the file). If any part is malformed the sequence is left unchanged.
func (s *Sequence) Parse(str string) error {
	var parsed []lineRange

	for _, part := range strings.Split(str, ",") {
		r, err := parseRange(part)
		if err != nil {
			return err
		}
		parsed = append(parsed, r)
	}

	slices.SortFunc(parsed, func(a, b lineRange) int {
		if a.first != b.first {
			if a.first < b.first {
				return -1
			}
			return 1
		}
		switch {
		case a.last < b.last:
			return -1
		case a.last > b.last:
			return 1
		default:
			return 0
		}
	})

	// Merge overlapping and adjacent ranges.
	merged := parsed[:0]
	for _, r := range parsed {
		if len(merged) > 0 && r.first-1 <= merged[len(merged)-1].last {
			if r.last > merged[len(merged)-1].last {
				merged[len(merged)-1].last = r.last
			}
			continue
		}
		merged = append(merged, r)
	}

	s.ranges = merged
	return nil
}

func parseRange(part string) (lineRange, error) {
	dash := strings.IndexByte(part, '-')
	if dash < 0 {
		line, err := parseLine(part)
		if err != nil {
			return lineRange{}, err
		}
		return lineRange{first: line, last: line}, nil
	}

	r := lineRange{first: 1, last: math.MaxUint64}
	if dash > 0 {
		first, err := parseLine(part[:dash])
		if err != nil {
			return lineRange{}, err
		}
		r.first = first
	}
	if dash < len(part)-1 {
		last, err := parseLine(part[dash+1:])
		if err != nil {
			return lineRange{}, err
		}
		r.last = last
	}
	if dash == 0 && dash == len(part)-1 {
		return lineRange{}, errors.Newf("invalid line range %q", part)
	}
	if r.first > r.last {
		return lineRange{}, errors.Newf("invalid line range %q", part)
	}

	return r, nil
}

func parseLine(str string) (uint64, error) {
	var line uint64
	if str == "" {
		return 0, errors.New("empty line number")
	}
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return 0, errors.Newf("invalid line number %q", str)
		}
		digit := uint64(str[i] - '0')
		if line > (math.MaxUint64-digit)/10 {
			return 0, errors.Newf("line number %q out of range", str)
		}
		line = line*10 + digit
	}
	if line == 0 {
		return 0, errors.Newf("invalid line number %q", str)
	}
	return line, nil
}

// IsEmpty reports whether the sequence contains no ranges at all.
func (s *Sequence) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Includes reports whether line belongs to the sequence. The empty sequence
// includes every line.
func (s *Sequence) Includes(line uint64) bool {
	if len(s.ranges) == 0 {
		return true
	}

	lo, hi := 0, len(s.ranges)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.ranges[mid].last < line {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(s.ranges) && s.ranges[lo].first <= line
}
