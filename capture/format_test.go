package capture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var versionTestCases = map[string]struct {
	Line      string
	Version   Version
	ParseOK   bool
	Supported bool
}{
	"Version 1,0": {Line: "1,0", Version: Version{1, 0}, ParseOK: true, Supported: true},
	"Version 1,1": {Line: "1,1", Version: Version{1, 1}, ParseOK: true, Supported: true},
	"Version 1,2": {Line: "1,2", Version: Version{1, 2}, ParseOK: true, Supported: true},
	"Version 1,3": {Line: "1,3", Version: Version{1, 3}, ParseOK: true, Supported: false},
	"Version 2,0": {Line: "2,0", Version: Version{2, 0}, ParseOK: true, Supported: false},
	"Version 0,9": {Line: "0,9", Version: Version{0, 9}, ParseOK: true, Supported: false},
	"One Field":   {Line: "1", ParseOK: false},
	"Three Fields": {
		Line: "1,2,3", ParseOK: false,
	},
	"Non-Numeric": {Line: "one,two", ParseOK: false},
	"Empty":       {Line: "", ParseOK: false},
}

func TestParseVersion(t *testing.T) {
	for name, testCase := range versionTestCases {
		t.Run(name, func(t *testing.T) {
			version, err := ParseVersion(testCase.Line)
			if !testCase.ParseOK {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrInvalidFormat)
				return
			}

			require.NoError(t, err)
			require.Equal(t, testCase.Version, version)
			require.Equal(t, testCase.Supported, version.Supported())
		})
	}
}

func TestVersionString(t *testing.T) {
	require.Equal(t, "1,8", Version{Major: 1, Minor: 8}.String())
}
