package capture

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// FormatHeader is the exact first line of every recording.
const FormatHeader = "Vulkan Memory Allocator,Calls recording"

var (
	// ErrInvalidFormat indicates the recording does not begin with the
	// expected header and version lines.
	ErrInvalidFormat = errors.New("invalid recording file format")
	// ErrUnsupportedVersion indicates the recording is well-formed but was
	// written by a recorder version this player does not understand.
	ErrUnsupportedVersion = errors.New("unsupported recording file version")
)

// Version is the recording file version from the second line of a recording.
type Version struct {
	Major uint32
	Minor uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d,%d", v.Major, v.Minor)
}

// Supported reports whether this player understands recordings written in
// version v. Versions 1.0 through 1.2 are accepted.
func (v Version) Supported() bool {
	return v.Major == 1 && v.Minor <= 2
}

// ParseVersion parses the version line of a recording, e.g. "1,2".
func ParseVersion(line string) (Version, error) {
	var split Split
	split.Set(line, 0)
	if split.Count() != 2 {
		return Version{}, errors.Wrapf(ErrInvalidFormat, "malformed version line %q", line)
	}

	major, ok := ParseUint32(split.Field(0))
	if !ok {
		return Version{}, errors.Wrapf(ErrInvalidFormat, "malformed version line %q", line)
	}
	minor, ok := ParseUint32(split.Field(1))
	if !ok {
		return Version{}, errors.Wrapf(ErrInvalidFormat, "malformed version line %q", line)
	}

	return Version{Major: major, Minor: minor}, nil
}
