package capture

import "strings"

// LineScanner walks a recording one line at a time. Lines are separated by
// '\n'; a trailing '\r' is stripped so recordings made on Windows parse the
// same as ones made elsewhere.
type LineScanner struct {
	data       string
	offset     int
	lineNumber int
}

func NewLineScanner(data string) *LineScanner {
	return &LineScanner{data: data}
}

// Next returns the next line and true, or "" and false once the recording is
// exhausted. A final line without a terminating newline is still returned.
func (s *LineScanner) Next() (string, bool) {
	if s.offset >= len(s.data) {
		return "", false
	}

	line := s.data[s.offset:]
	newline := strings.IndexByte(line, '\n')
	if newline >= 0 {
		line = line[:newline]
		s.offset += newline + 1
	} else {
		s.offset = len(s.data)
	}

	line = strings.TrimSuffix(line, "\r")
	s.lineNumber++
	return line, true
}

// LineNumber is the 1-based number of the line most recently returned by Next.
func (s *LineScanner) LineNumber() int {
	return s.lineNumber
}

// Split decomposes a single recorded line into comma-separated fields while
// remembering where each field began, so that the tail of the line can be
// recovered verbatim. That matters for user data strings, which may themselves
// contain commas.
//
// A Split can be reused across lines to avoid reallocating the field slices.
type Split struct {
	line   string
	fields []string
	starts []int
}

// Set splits line on commas. If maxFields is greater than zero, splitting
// stops once that many fields have been produced and the remainder of the
// line, commas included, becomes the final field.
func (s *Split) Set(line string, maxFields int) {
	s.line = line
	s.fields = s.fields[:0]
	s.starts = s.starts[:0]

	start := 0
	for {
		if maxFields > 0 && len(s.fields) == maxFields-1 {
			s.fields = append(s.fields, line[start:])
			s.starts = append(s.starts, start)
			return
		}

		comma := strings.IndexByte(line[start:], ',')
		if comma < 0 {
			s.fields = append(s.fields, line[start:])
			s.starts = append(s.starts, start)
			return
		}

		s.fields = append(s.fields, line[start:start+comma])
		s.starts = append(s.starts, start)
		start += comma + 1
	}
}

// Count returns the number of fields produced by the last Set.
func (s *Split) Count() int {
	return len(s.fields)
}

// Field returns field index, counted from zero.
func (s *Split) Field(index int) string {
	return s.fields[index]
}

// Line returns the whole line passed to the last Set.
func (s *Split) Line() string {
	return s.line
}

// TailFrom returns the untouched remainder of the line starting at the first
// byte of field index, commas and all.
func (s *Split) TailFrom(index int) string {
	return s.line[s.starts[index]:]
}
