package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chorin/internal/models"
	"github.com/thenoetrevino/chorin/internal/store"
)

func runListCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CHORIN_THEME_FILE", "")

	var out, errOut bytes.Buffer
	cmd := ListCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListCmd_Human(t *testing.T) {
	out, _, err := runListCmd(t)
	require.NoError(t, err)

	out = ansi.Strip(out)
	assert.Contains(t, out, "Username")
	assert.Contains(t, out, "1. Chore 1 (high) [5]")
	assert.Contains(t, out, "2. Chore 2 (mid) [3]")
	assert.Contains(t, out, "3. Chore 3 (low) [1]")
	assert.Contains(t, out, "Due: 3")
}

func TestListCmd_Quiet(t *testing.T) {
	out, _, err := runListCmd(t, "--quiet")
	require.NoError(t, err)

	assert.Equal(t, "Chore 1 (high) [5]\nChore 2 (mid) [3]\nChore 3 (low) [1]\n", out)
}

func TestListCmd_JSON(t *testing.T) {
	out, _, err := runListCmd(t, "--json")
	require.NoError(t, err)

	var result struct {
		Success bool    `json:"success"`
		Data    DueList `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.True(t, result.Success)
	assert.Equal(t, "Username", result.Data.Profile)
	require.Len(t, result.Data.Due, 3)
	assert.Equal(t, 1, result.Data.Due[1].Index)
	assert.Equal(t, "Chore 2 (mid) [3]", result.Data.Due[1].Label)
	assert.Equal(t, "mid", result.Data.Due[1].Priority)
	assert.Equal(t, store.Counts{Due: 3}, result.Data.Counts)
}

func TestListCmd_ConflictingFlags(t *testing.T) {
	_, _, err := runListCmd(t, "--json", "--quiet")
	require.Error(t, err)

	var exitErr *ExitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitUsage, exitErr.Code)
}

func TestCollectDueList_AfterTransition(t *testing.T) {
	h := store.NewHandle(store.Seed())
	_, err := h.TransitionDue(0, models.Abrogated)
	require.NoError(t, err)

	list := CollectDueList(h)
	require.Len(t, list.Due, 2)
	assert.Equal(t, 0, list.Due[0].Index)
	assert.Equal(t, "Chore 2", list.Due[0].Title)
	assert.Equal(t, []string{"Chore 2 (mid) [3]", "Chore 3 (low) [1]"}, list.QuietLines())
	assert.Equal(t, store.Counts{Due: 2, Abrogated: 1}, list.Counts)
}
