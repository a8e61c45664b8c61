package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yscan/a11yscan/internal/adapters/inbound/cli"
)

func TestStatementCommand_Stdout(t *testing.T) {
	srv := newTestSite(t)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"statement", srv.URL, "--renderer", "static",
		"--org", "Example Corp", "--contact-email", "access@example.org"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "# Accessibility Statement for Example Corp")
	assert.Contains(t, out, "## Non-accessible content")
	assert.Contains(t, out, "image-alt")
	assert.Contains(t, out, "access@example.org")
}

func TestStatementCommand_WritesFile(t *testing.T) {
	srv := newTestSite(t)
	outPath := filepath.Join(t.TempDir(), "statement.md")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"statement", srv.URL, "--renderer", "static", "--out", outPath})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Statement written to")
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Accessibility Statement")
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "a11yscan")
}
