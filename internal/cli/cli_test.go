package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const banksPage = `<html><body>
<table class="wikitable sortable"><tbody>
<tr><th>Rank</th><th>Bank name</th><th>Market cap (US$ billion)</th></tr>
<tr><td>1</td><td><a href="/wiki/JPMorgan_Chase">JPMorgan Chase</a></td><td>432.92
</td></tr>
<tr><td>2</td><td>Bank of America</td><td>231.52
</td></tr>
</tbody></table>
</body></html>`

const ratesCSV = "Currency,Rate\nEUR,0.93\nGBP,0.8\nINR,82.95\n"

// testEnv isolates a command run inside a temp directory.
type testEnv struct {
	dir  string
	args []string // args[1] is the source URL
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(banksPage))
	}))
	t.Cleanup(srv.Close)

	ratesFile := filepath.Join(dir, "exchange_rate.csv")
	require.NoError(t, os.WriteFile(ratesFile, []byte(ratesCSV), 0o644))

	return &testEnv{
		dir: dir,
		args: []string{
			"--source-url", srv.URL,
			"--rates-file", ratesFile,
			"--csv-path", filepath.Join(dir, "Largest_banks_data.csv"),
			"--db-driver", "sqlite",
			"--db-dsn", filepath.Join(dir, "Banks.db"),
			"--log-file", filepath.Join(dir, "ETL.log"),
		},
	}
}

func (e *testEnv) execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, e.args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRunCommand_EndToEnd(t *testing.T) {
	env := newTestEnv(t)

	out, logs, err := env.execute(t, "run")
	require.NoError(t, err)

	csvContent, err := os.ReadFile(filepath.Join(env.dir, "Largest_banks_data.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"Name,MC_USD_Billion,MC_GBP_Billion,MC_EUR_Billion,MC_INR_Billion\n"+
			"JPMorgan Chase,432.92,346.34,402.62,35910.71\n"+
			"Bank of America,231.52,185.22,215.31,19204.58\n",
		string(csvContent))

	assert.Equal(t, 3, strings.Count(out, "Executed query:"))
	assert.Contains(t, out, "SELECT Name, MC_INR_Billion FROM Largest_banks")
	assert.Contains(t, out, "35910.71")
	assert.Contains(t, out, "(2 rows)")

	logFile, err := os.ReadFile(filepath.Join(env.dir, "ETL.log"))
	require.NoError(t, err)
	assert.Equal(t, logs, string(logFile), "console mirrors the log file")
	assert.Contains(t, logs, "INFO Beginning the ETL process...")
	assert.Contains(t, logs, "INFO Calling load_to_db ...")
	assert.Contains(t, logs, "INFO Completed the ETL process.")
	assert.NotContains(t, logs, "Exception raised")
}

func TestRunCommand_IsDefault(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.execute(t)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.dir, "Largest_banks_data.csv"))
}

func TestQueryAndRunsCommands(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.execute(t, "run")
	require.NoError(t, err)

	out, _, err := env.execute(t, "query", "SELECT Name, MC_EUR_Billion FROM Largest_banks")
	require.NoError(t, err)
	assert.Contains(t, out, "Bank of America")
	assert.Contains(t, out, "215.31")

	out, _, err = env.execute(t, "runs", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "RUN ID")
	assert.Contains(t, out, "success")
	assert.Contains(t, out, "(1 rows)")
}

func TestCSVCommand(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.execute(t, "csv")
	require.Error(t, err, "nothing written yet")

	_, _, err = env.execute(t, "run")
	require.NoError(t, err)

	out, _, err := env.execute(t, "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "MC_INR_Billion")
	assert.Contains(t, out, "JPMorgan Chase")
	assert.Contains(t, out, "35910.71")
	assert.Contains(t, out, "(2 rows)")
}

func TestRunCommand_ExtractFailure(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	env.args[1] = srv.URL

	_, logs, err := env.execute(t, "run")

	require.Error(t, err)
	assert.Contains(t, logs, "ERROR Exception raised in extract.")
	assert.NoFileExists(t, filepath.Join(env.dir, "Largest_banks_data.csv"))
}

func TestQueryCommand_RequiresArgument(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.execute(t, "query")

	assert.Error(t, err)
}

func TestInvalidConfiguration(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.execute(t, "run", "--table-name", "bad-name")

	assert.ErrorContains(t, err, "invalid configuration")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "banks-etl version dev (commit: none)\n", out.String())
}

