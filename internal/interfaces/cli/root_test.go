package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/PolicyLens/internal/application/assessment"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.txt")
	content := "We may sell your personal data to third parties. You have the right to access and delete your personal information at any time."
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := runCommand(t, "analyze", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Score:")
	assert.Contains(t, out, "Language: en")
	assert.Contains(t, out, "DATA_SELLING")
}

func TestAnalyzeCommand_JSONOutput(t *testing.T) {
	out, err := runCommand(t, "analyze",
		"--text", "We collect your personal data and share it with our advertising partners.",
		"--output", "json")
	require.NoError(t, err)

	var a assessment.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.NotEmpty(t, a.ID)
	require.NotNil(t, a.Score)
	assert.GreaterOrEqual(t, a.Score.Score, 0)
}

func TestAnalyzeCommand_NoInput(t *testing.T) {
	_, err := runCommand(t, "analyze")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document supplied")
}

func TestClausesCommand(t *testing.T) {
	out, err := runCommand(t, "clauses")
	require.NoError(t, err)
	assert.Contains(t, out, "DATA_SELLING")
	assert.Contains(t, out, "USER_RIGHTS")
	assert.Contains(t, out, "WEIGHT")
}

func TestCompareCommand(t *testing.T) {
	out, err := runCommand(t, "compare", "--score", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "Mieux que la moyenne")
}

func TestCompareCommand_InvalidScore(t *testing.T) {
	_, err := runCommand(t, "compare", "--score", "150")
	require.Error(t, err)
}

//Personal.AI order the ending
