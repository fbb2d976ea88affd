package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"NOTEBOARD_MODE", "NOTEBOARD_MAX_UNIQUE", "NOTEBOARD_DUPLICATES", "NOTEBOARD_LOG_DIR"} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "noteboard version "+Version)
}

func TestReplay(t *testing.T) {
	isolateConfig(t)
	path := writeScript(t, "steps:\n  - add: Hello world\n  - add: hello world\n  - add: second\n")

	out, err := execute(t, "replay", path)
	require.NoError(t, err)

	assert.Contains(t, out, "duplicate")
	assert.Contains(t, out, "3 step(s), 1 rejected. Final: 2 note(s), score 4")
}

func TestReplay_FlagsOverrideConfig(t *testing.T) {
	isolateConfig(t)
	path := writeScript(t, "steps:\n  - add: a\n  - add: b\n")

	out, err := execute(t, "replay", "--max-unique", "1", path)
	require.NoError(t, err)

	assert.Contains(t, out, "capacity exceeded")
	assert.Contains(t, out, "Final: 1 note(s), score 2")
}

func TestReplay_ScoreModeAllowsDuplicates(t *testing.T) {
	isolateConfig(t)
	path := writeScript(t, "steps:\n  - add: a\n  - add: A\n")

	out, err := execute(t, "--mode", "score", "replay", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Final: 2 note(s), score 4")
}

func TestReplay_Errors(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "replay")
	assert.Error(t, err, "missing script argument")

	_, err = execute(t, "replay", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "--mode", "party", "replay", writeScript(t, "steps: []\n"))
	assert.Error(t, err)
}
