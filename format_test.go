package langfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleProgram = `pub fn main(argc: c_int, argv: &&u8) -> c_int {
    const a = b;
    var c: u8;
}
`

// TestFormatFixedPoint is P1: formatting already-canonical input reproduces
// it byte for byte.
func TestFormatFixedPoint(t *testing.T) {
	out, err := Format("sample.src", []byte(sampleProgram))
	require.NoError(t, err)
	require.Equal(t, sampleProgram, string(out))
}

// TestFormatIdempotent is P2: formatting the output of a format is a
// no-op.
func TestFormatIdempotent(t *testing.T) {
	messy := "pub  fn main( argc:c_int,argv:&&u8 )->c_int{const a=b;var c:u8;}"

	once, err := Format("sample.src", []byte(messy))
	require.NoError(t, err)

	twice, err := Format("sample.src", once)
	require.NoError(t, err)

	require.Equal(t, string(once), string(twice))
}

// TestFormatCoversEveryIdentifier is a partial check of P3: every identifier
// of a syntactically valid program reappears somewhere in the formatted
// output.
func TestFormatCoversEveryIdentifier(t *testing.T) {
	out, err := Format("sample.src", []byte(sampleProgram))
	require.NoError(t, err)

	for _, want := range []string{"main", "argc", "c_int", "argv", "u8", "a", "b", "c"} {
		require.Contains(t, string(out), want)
	}
}

func TestFormatRejectsUnsupportedConstructs(t *testing.T) {
	cases := []string{
		`extern "c" fn abort();`,
		"var a align(4) = b;",
		"const a: var = b;",
	}

	for _, src := range cases {
		_, err := Format("sample.src", []byte(src))
		require.Error(t, err)
	}
}

func TestFormatReportsPositionOfFirstSyntaxError(t *testing.T) {
	_, err := Format("sample.src", []byte("const = 1;"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "sample.src:1:7:")
}
