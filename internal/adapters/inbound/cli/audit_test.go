package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yscan/a11yscan/internal/adapters/inbound/cli"
)

// newTestSite serves a two-page site where the second page has an image
// without alt text.
func newTestSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `<!DOCTYPE html><html lang="en"><head><title>Home</title></head>
<body><a href="/about">About</a></body></html>`)
	})
	mux.HandleFunc("/about", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<!DOCTYPE html><html lang="en"><head><title>About</title></head>
<body><img src="team.jpg"></body></html>`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAuditCommand_JSON(t *testing.T) {
	srv := newTestSite(t)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"audit", srv.URL, "--renderer", "static", "--json"})
	require.NoError(t, cmd.Execute())

	var decoded struct {
		Summary struct {
			PagesScanned    int `json:"pages_scanned"`
			TotalViolations int `json:"total_violations"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Summary.PagesScanned)
	assert.GreaterOrEqual(t, decoded.Summary.TotalViolations, 1)
}

func TestAuditCommand_DefaultTUI(t *testing.T) {
	srv := newTestSite(t)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"audit", srv.URL, "--renderer", "static"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "a11yscan")
	assert.Contains(t, buf.String(), "image-alt")
}

func TestAuditCommand_FailOn(t *testing.T) {
	srv := newTestSite(t)

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"audit", srv.URL, "--renderer", "static", "--fail-on", "critical"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at or above severity critical")
}

func TestAuditCommand_FailOnInvalidSeverity(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"audit", "http://example.invalid/", "--renderer", "static", "--fail-on", "apocalyptic"})
	assert.Error(t, cmd.Execute())
}

func TestAuditCommand_CSVExport(t *testing.T) {
	srv := newTestSite(t)
	csvPath := filepath.Join(t.TempDir(), "audit.csv")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"audit", srv.URL, "--renderer", "static", "--csv", csvPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page,outcome,http_status,rule")
	assert.Contains(t, string(data), "image-alt")
}

func TestAuditCommand_MaxPagesOne(t *testing.T) {
	srv := newTestSite(t)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"audit", srv.URL, "--renderer", "static", "--max-pages", "1", "--json"})
	require.NoError(t, cmd.Execute())

	var decoded struct {
		Summary struct {
			PagesScanned int    `json:"pages_scanned"`
			Completion   string `json:"completion"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Summary.PagesScanned)
	assert.Equal(t, "budget_reached", decoded.Summary.Completion)
}

func TestAuditCommand_UnknownRenderer(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"audit", "http://example.invalid/", "--renderer", "telepathy"})
	assert.Error(t, cmd.Execute())
}
