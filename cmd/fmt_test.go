package cmd

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) (*rootCommand, afero.Fs, *bytes.Buffer) {
	t.Helper()

	fs := afero.NewMemMapFs()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	c := newRootCommand(fs, logger)

	var out bytes.Buffer
	c.cmd.SetOut(&out)
	c.cmd.SetErr(&out)

	return c, fs, &out
}

func TestFmtPrintsCanonicalFormByDefault(t *testing.T) {
	c, fs, out := newTestRoot(t)
	require.NoError(t, afero.WriteFile(fs, "a.src", []byte("const  a=b;"), 0o644))

	c.cmd.SetArgs([]string{"fmt", "a.src"})
	require.NoError(t, c.cmd.Execute())
	require.Equal(t, "const a = b;\n", out.String())

	unchanged, err := afero.ReadFile(fs, "a.src")
	require.NoError(t, err)
	require.Equal(t, "const  a=b;", string(unchanged))
}

func TestFmtWriteRewritesInPlace(t *testing.T) {
	c, fs, _ := newTestRoot(t)
	require.NoError(t, afero.WriteFile(fs, "a.src", []byte("const  a=b;"), 0o644))

	c.cmd.SetArgs([]string{"fmt", "--write", "a.src"})
	require.NoError(t, c.cmd.Execute())

	got, err := afero.ReadFile(fs, "a.src")
	require.NoError(t, err)
	require.Equal(t, "const a = b;\n", string(got))
}

func TestFmtWriteIsNoopOnCanonicalInput(t *testing.T) {
	c, fs, _ := newTestRoot(t)
	require.NoError(t, afero.WriteFile(fs, "a.src", []byte("const a = b;\n"), 0o644))

	c.cmd.SetArgs([]string{"fmt", "--write", "a.src"})
	require.NoError(t, c.cmd.Execute())

	got, err := afero.ReadFile(fs, "a.src")
	require.NoError(t, err)
	require.Equal(t, "const a = b;\n", string(got))
}

func TestFmtDiffReportsChanges(t *testing.T) {
	c, fs, out := newTestRoot(t)
	require.NoError(t, afero.WriteFile(fs, "a.src", []byte("const  a=b;"), 0o644))

	c.cmd.SetArgs([]string{"fmt", "--diff", "a.src"})
	require.NoError(t, c.cmd.Execute())
	require.Contains(t, out.String(), "-const  a=b;")
	require.Contains(t, out.String(), "+const a = b;")
}

func TestFmtRejectsUnsupportedConstruct(t *testing.T) {
	c, fs, _ := newTestRoot(t)
	require.NoError(t, afero.WriteFile(fs, "a.src", []byte("var a align(4) = b;"), 0o644))

	c.cmd.SetArgs([]string{"fmt", "a.src"})
	require.Error(t, c.cmd.Execute())
}

func TestDumpWritesFourSections(t *testing.T) {
	c, fs, out := newTestRoot(t)
	require.NoError(t, afero.WriteFile(fs, "a.src", []byte("const a = b;\n"), 0o644))

	c.cmd.SetArgs([]string{"a.src"})
	require.NoError(t, c.cmd.Execute())

	for _, section := range []string{"====input:====", "====tokenization:====", "====parse:====", "====fmt:===="} {
		require.Contains(t, out.String(), section)
	}
}

func TestDumpReportsParseFailure(t *testing.T) {
	c, fs, _ := newTestRoot(t)
	require.NoError(t, afero.WriteFile(fs, "a.src", []byte("const = 1;"), 0o644))

	c.cmd.SetArgs([]string{"a.src"})
	require.Error(t, c.cmd.Execute())
}
