package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/shelf/internal/testutil"
	clitest "github.com/thenoetrevino/shelf/internal/testutil/cli"
)

func TestBoard_Human(t *testing.T) {
	app := clitest.SetupCLITest(t)
	clitest.CreateTestGame(t, app, "Chrono Trigger", "classics", "snes")
	clitest.CreateTestGame(t, app, "Loose", "")

	output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{})
	require.NoError(t, err)

	assert.Contains(t, output, "Storytelling Masters")
	assert.Contains(t, output, "(empty)")
	assert.Contains(t, output, "Chrono Trigger")
	assert.Contains(t, output, "#snes")
	assert.Contains(t, output, "Unassigned")
	assert.Contains(t, output, "Loose")
}

func TestBoard_Quiet(t *testing.T) {
	app := clitest.SetupCLITest(t)
	g1 := clitest.CreateTestGame(t, app, "A", "gameplay")
	g2 := clitest.CreateTestGame(t, app, "B", "")

	output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "gameplay:"+g1+"\n:"+g2+"\n", output)
}

func TestBoard_JSON(t *testing.T) {
	app := clitest.SetupCLITest(t)
	g1 := clitest.CreateTestGame(t, app, "A", "classics")

	output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	columns := testutil.JSONList(t, result, "columns")
	require.Len(t, columns, 3)

	classics := columns[2]
	assert.Equal(t, "classics", classics["id"])
	games := testutil.JSONList(t, classics, "games")
	require.Len(t, games, 1)
	assert.Equal(t, g1, games[0]["id"])
	assert.Equal(t, []any{}, result["unassigned"])
}
