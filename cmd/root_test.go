package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gosweep/game"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExecuteLayout(t *testing.T) {
	layout := writeFile(t, "layout.yaml", "board: |-\n  *.\n  ..\n")

	var out bytes.Buffer
	err := execute([]string{"--layout", layout}, strings.NewReader("0, 0\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "SORRY GAME OVER :(")
}

func TestExecuteInvalidBoard(t *testing.T) {
	err := execute([]string{"-s", "2", "-m", "4"}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, game.ErrInvalidConfiguration)
}

func TestExecuteDirector(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"--director", "--size", "6", "--mines", "5", "--seed", "3"}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Where would you like to dig?")
}

func TestExecuteRandomDirector(t *testing.T) {
	err := execute([]string{"--director=random", "-s", "6", "-m", "5"}, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)

	err = execute([]string{"--director=psychic"}, strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestExecuteConfigFile(t *testing.T) {
	config := writeFile(t, "game.yaml", "size: 3\nmines: 0\nseed: 11\n")

	var out bytes.Buffer
	err := execute([]string{"-c", config}, strings.NewReader("1, 1\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "CONGRATULATIONS!!!! YOU ARE VICTORIOUS!")

	// Flags win over the file
	err = execute([]string{"-c", config, "--mines", "9"}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, game.ErrInvalidConfiguration)
}

func TestSetupLogging(t *testing.T) {
	require.NoError(t, setupLogging("debug"))
	assert.Equal(t, logrus.DebugLevel, game.Log.GetLevel())

	t.Setenv(logLevelEnv, "error")
	require.NoError(t, setupLogging(""))
	assert.Equal(t, logrus.ErrorLevel, game.Log.GetLevel())

	assert.Error(t, setupLogging("loud"))
}
