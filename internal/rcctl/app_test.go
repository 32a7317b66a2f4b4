package rcctl

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"rcwebui/internal/settings"
	"rcwebui/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp() (*cli.App, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	var stdin, stdout, stderr bytes.Buffer
	app := New()
	app.Reader = &stdin
	app.Writer = &stdout
	app.ErrWriter = &stderr
	return app, &stdin, &stdout, &stderr
}

// run executes rcctl with --db pointing at dbPath.
func run(t *testing.T, app *cli.App, dbPath string, args ...string) error {
	t.Helper()
	return Run(app, append([]string{"rcctl", "--db", dbPath}, args...)...)
}

func newTestDB(t *testing.T) string {
	return filepath.Join(t.TempDir(), "settings.db")
}

// loginTo stores a login for the fake daemon, the way 'rcctl login' does.
func loginTo(t *testing.T, dbPath, url, authKey string) {
	t.Helper()
	store, err := settings.New(dbPath)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.SaveLogin(url, authKey))
}

func decodeOutput(t *testing.T, stdout *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out), stdout.String())
	return out
}

func TestCLI_NotLoggedIn(t *testing.T) {
	app, _, _, _ := newTestApp()

	err := run(t, app, newTestDB(t), "remotes")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestCLI_URLOverridesStoredLogin(t *testing.T) {
	stored := testutil.NewFakeRC(t)
	override := testutil.NewFakeRC(t)
	override.Reply("config/listremotes", map[string]interface{}{"remotes": []string{"override"}})

	dbPath := newTestDB(t)
	loginTo(t, dbPath, stored.URL, "")

	app, _, stdout, _ := newTestApp()
	require.NoError(t, run(t, app, dbPath, "--url", override.URL, "--auth-key", "a2V5", "remotes"))

	assert.Empty(t, stored.Requests())
	assert.Equal(t, "Basic a2V5", override.LastRequest().Auth)
	assert.Equal(t, []interface{}{"override"}, decodeOutput(t, stdout)["remotes"])
}

func TestCLI_StoredLoginSendsAuthKey(t *testing.T) {
	rc := testutil.NewFakeRC(t)
	rc.Reply("core/version", map[string]interface{}{"version": "v1.65.0"})

	dbPath := newTestDB(t)
	loginTo(t, dbPath, rc.URL, "dXNlcjpwYXNz")

	app, _, stdout, _ := newTestApp()
	require.NoError(t, run(t, app, dbPath, "version"))

	assert.Equal(t, "Basic dXNlcjpwYXNz", rc.LastRequest().Auth)
	assert.Equal(t, "v1.65.0", decodeOutput(t, stdout)["version"])
}

func TestCLI_RCErrorIsExplained(t *testing.T) {
	rc := testutil.NewFakeRC(t)
	dbPath := newTestDB(t)
	loginTo(t, dbPath, rc.URL, "")

	app, _, _, _ := newTestApp()
	err := run(t, app, dbPath, "dump")

	require.Error(t, err)
	assert.Equal(t, `rc error (HTTP 404): couldn't find method "config/dump"`, err.Error())
}

func TestCLI_OutputIsIndented(t *testing.T) {
	rc := testutil.NewFakeRC(t)
	rc.Reply("job/list", map[string]interface{}{"jobids": []int{1}})
	dbPath := newTestDB(t)
	loginTo(t, dbPath, rc.URL, "")

	app, _, stdout, _ := newTestApp()
	require.NoError(t, run(t, app, dbPath, "jobs"))

	assert.Equal(t, "{\n  \"jobids\": [\n    1\n  ]\n}\n", stdout.String())
}

func TestParseJobID(t *testing.T) {
	id, err := parseJobID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "-1", "1.5"} {
		_, err := parseJobID(bad)
		assert.Error(t, err, bad)
	}
}
