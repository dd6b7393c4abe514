package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDatabase points the configuration at a fresh sqlite file
func useTempDatabase(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("APP_ENV", "testing")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", filepath.Join(dir, "finance.db"))
	t.Setenv("IMPORT_KEYWORD_RULES_FILE", "")
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func createAccount(t *testing.T, name, kind string) uuid.UUID {
	t.Helper()

	out, err := run(t, "", "accounts", "create", "--name", name, "--kind", kind)
	require.NoError(t, err)

	fields := strings.Split(strings.TrimSpace(out), "\t")
	require.Len(t, fields, 3, "unexpected output %q", out)
	id, err := uuid.Parse(fields[0])
	require.NoError(t, err)
	assert.Equal(t, name, fields[1])
	assert.Equal(t, kind, fields[2])
	return id
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: none, built: unknown)")
}

func TestSample_WritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.csv")

	_, err := run(t, "", "sample", "--schema", "description_value", "--months", "2", "--seed", "7", "--start", "2025-01-01", "-o", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "data,valor,identificador,descrição\n"))

	stdout, err := run(t, "", "sample", "--schema", "description_value", "--months", "2", "--seed", "7", "--start", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, string(content), stdout)
}

func TestSample_Errors(t *testing.T) {
	_, err := run(t, "", "sample", "--start", "01/02/2025")
	assert.ErrorContains(t, err, "must be YYYY-MM-DD")

	_, err = run(t, "", "sample", "--schema", "ofx")
	assert.ErrorContains(t, err, "unrecognized")
}

func TestAccounts_CreateAndList(t *testing.T) {
	useTempDatabase(t)

	id := createAccount(t, "Everyday", "checking")

	out, err := run(t, "", "accounts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "BALANCE")
	assert.Contains(t, out, id.String())
	assert.Contains(t, out, "0.00")
}

func TestAccounts_CreateRejectsUnknownKind(t *testing.T) {
	useTempDatabase(t)

	_, err := run(t, "", "accounts", "create", "--name", "Wallet", "--kind", "cash")
	assert.Error(t, err)

	_, err = run(t, "", "accounts", "create", "--name", "Wallet", "--opening-balance", "ten")
	assert.ErrorContains(t, err, "invalid --opening-balance")
}

func TestImport_DryRunThenCommitThenReimport(t *testing.T) {
	dir := useTempDatabase(t)
	id := createAccount(t, "Card", "credit_card")

	statement := filepath.Join(dir, "statement.csv")
	_, err := run(t, "", "sample", "--months", "1", "--seed", "3", "--start", "2025-03-01", "-o", statement)
	require.NoError(t, err)

	out, err := run(t, "", "import", "--account", id.String(), "--dry-run", statement)
	require.NoError(t, err)
	assert.Contains(t, out, "statement.csv: schema title_amount")
	assert.Contains(t, out, "ROW")
	assert.Contains(t, out, "METHOD")

	out, err = run(t, "", "import", "--account", id.String(), statement)
	require.NoError(t, err)
	assert.NotRegexp(t, `^0 transactions imported`, out)
	assert.Contains(t, out, "failed=0")

	out, err = run(t, "", "import", "--account", id.String(), statement)
	require.NoError(t, err)
	assert.Regexp(t, `^0 transactions imported, \d+ duplicates skipped`, out)
}

func TestImport_FromStdin(t *testing.T) {
	useTempDatabase(t)
	id := createAccount(t, "Checking", "checking")

	statement := "data,valor,descrição\n" +
		"05/03/2025,5000.00,Salário\n" +
		"06/03/2025,-120.50,Supermercado\n" +
		"07/03/2025,0,Estorno\n"

	out, err := run(t, statement, "import", "--account", id.String(), "-")
	require.NoError(t, err)
	assert.Contains(t, out, "2 transactions imported")
	assert.Contains(t, out, "dropped rows:")
	assert.Contains(t, out, "row 4")
}

func TestImport_Errors(t *testing.T) {
	useTempDatabase(t)

	_, err := run(t, "", "import", "--account", "acc-1", "statement.csv")
	assert.ErrorContains(t, err, "invalid --account")

	_, err = run(t, "", "import", "statement.csv")
	assert.ErrorContains(t, err, "required flag")

	_, err = run(t, "", "import", "--account", uuid.NewString(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "reading statement")

	_, err = run(t, "date,title,amount\n", "import", "--account", uuid.NewString(), "-")
	assert.ErrorContains(t, err, "account not found")

	id := createAccount(t, "Checking", "checking")
	_, err = run(t, "name,price\nx,1\n", "import", "--account", id.String(), "-")
	assert.ErrorContains(t, err, "unrecognized")
}

func TestMigrate_SQLite(t *testing.T) {
	useTempDatabase(t)

	out, err := run(t, "", "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "schema up to date")

	_, err = run(t, "", "migrate", "status")
	assert.ErrorContains(t, err, "require the postgres driver")

	_, err = run(t, "", "migrate", "down")
	assert.ErrorContains(t, err, "require the postgres driver")
}

func TestInvalidConfiguration(t *testing.T) {
	useTempDatabase(t)
	t.Setenv("DB_DRIVER", "mysql")

	_, err := run(t, "", "accounts", "list")
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
