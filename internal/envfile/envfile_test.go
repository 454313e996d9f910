package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSetReplacesLineInPlace(t *testing.T) {
	path := writeEnv(t, "# Blue Pharma bot settings\nBOT_TOKEN=abc123\nADMIN_TELEGRAM_ID=your_telegram_user_id_here\nLOG_LEVEL=info\n")

	require.NoError(t, Set(path, "ADMIN_TELEGRAM_ID", "123456789"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"# Blue Pharma bot settings\nBOT_TOKEN=abc123\nADMIN_TELEGRAM_ID=123456789\nLOG_LEVEL=info\n",
		string(b))
}

func TestSetAppendsMissingKey(t *testing.T) {
	path := writeEnv(t, "BOT_TOKEN=abc123\n")

	require.NoError(t, Set(path, "ADMIN_TELEGRAM_ID", "42"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "BOT_TOKEN=abc123\nADMIN_TELEGRAM_ID=42\n", string(b))
}

func TestSetAppendsWithoutTrailingNewline(t *testing.T) {
	path := writeEnv(t, "BOT_TOKEN=abc123")

	require.NoError(t, Set(path, "LOG_LEVEL", "debug"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "BOT_TOKEN=abc123\nLOG_LEVEL=debug", string(b))
}

func TestSetPreservesCRLF(t *testing.T) {
	path := writeEnv(t, "BOT_TOKEN=abc123\r\nADMIN_TELEGRAM_ID=old\r\nLOG_LEVEL=info\r\n")

	require.NoError(t, Set(path, "ADMIN_TELEGRAM_ID", "99"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"BOT_TOKEN=abc123\r\nADMIN_TELEGRAM_ID=99\r\nLOG_LEVEL=info\r\n",
		string(b))
}

func TestSetAppendsCRLF(t *testing.T) {
	path := writeEnv(t, "BOT_TOKEN=abc123\r\n")

	require.NoError(t, Set(path, "LOG_LEVEL", "debug"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "BOT_TOKEN=abc123\r\nLOG_LEVEL=debug\r\n", string(b))
}

func TestSetMissingFile(t *testing.T) {
	err := Set(filepath.Join(t.TempDir(), ".env"), "K", "v")
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := writeEnv(t, "# comment\n\nPHARMATOOL_TEST_A=hello\nPHARMATOOL_TEST_B=\"quoted\"\nnot a pair\n")
	t.Setenv("PHARMATOOL_TEST_A", "")
	t.Setenv("PHARMATOOL_TEST_B", "")
	os.Unsetenv("PHARMATOOL_TEST_A")
	os.Unsetenv("PHARMATOOL_TEST_B")

	require.NoError(t, Load(path))
	assert.Equal(t, "hello", os.Getenv("PHARMATOOL_TEST_A"))
	assert.Equal(t, "quoted", os.Getenv("PHARMATOOL_TEST_B"))
}

func TestLoadDoesNotOverrideEnvironment(t *testing.T) {
	path := writeEnv(t, "PHARMATOOL_TEST_C=from_file\n")
	t.Setenv("PHARMATOOL_TEST_C", "from_env")

	require.NoError(t, Load(path))
	assert.Equal(t, "from_env", os.Getenv("PHARMATOOL_TEST_C"))
}

func TestLoadMissingFileIsFine(t *testing.T) {
	require.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}
