package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/testutil"
	clitest "github.com/thenoetrevino/shelf/internal/testutil/cli"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cli.ExitCodeError
	require.True(t, errors.As(err, &exitErr), "expected ExitCodeError, got %v", err)
	return exitErr.Code
}

var validFlags = []string{
	"--title", "Chrono Trigger",
	"--description", "Time travel epic",
	"--review", "Peak **SNES**",
}

func TestGameCmd_Subcommands(t *testing.T) {
	names := []string{}
	for _, sub := range GameCmd().Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"create", "update", "delete", "show", "list", "move"}, names)
}

// ============================================================================
// create
// ============================================================================

func TestCreateGame_IntoColumn(t *testing.T) {
	app := clitest.SetupCLITest(t)

	args := append([]string{"--score", "9.5", "--tags", "classic, ,snes", "--column", "classics"}, validFlags...)
	output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), args)
	require.NoError(t, err)
	assert.Contains(t, output, "Game 'Chrono Trigger' created successfully (ID: game-1)")
	assert.Contains(t, output, "Column: Timeless Classics")

	g, ok := app.Board.Game("game-1")
	require.True(t, ok)
	assert.Equal(t, 9.5, g.Score)
	assert.Equal(t, []string{"classic", "snes"}, g.Tags)

	col, _ := app.Board.Column("classics")
	assert.Equal(t, []string{"game-1"}, col.GameIDs)
}

func TestCreateGame_DefaultsAndUnassigned(t *testing.T) {
	app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), append([]string{"--json"}, validFlags...))
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	g := result["game"].(map[string]any)
	assert.Equal(t, 7.0, g["score"])
	assert.Equal(t, []any{}, g["tags"])
	assert.Equal(t, "", g["column"])
	assert.Len(t, app.Board.Unassigned(), 1)
}

func TestCreateGame_Quiet(t *testing.T) {
	app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), append([]string{"--quiet"}, validFlags...))
	require.NoError(t, err)
	assert.Equal(t, "game-1", strings.TrimSpace(output))
}

func TestCreateGame_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"missing review", []string{"--title", "X", "--description", "D"}, cli.ExitValidation},
		{"blank title", []string{"--title", "  ", "--description", "D", "--review", "R"}, cli.ExitValidation},
		{"score above 10", append([]string{"--score", "10.5"}, validFlags...), cli.ExitValidation},
		{"negative score", append([]string{"--score=-1"}, validFlags...), cli.ExitValidation},
		{"bad image url", append([]string{"--image-url", "ftp://x/y.png"}, validFlags...), cli.ExitValidation},
		{"unknown column", append([]string{"--column", "nope"}, validFlags...), cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := clitest.SetupCLITest(t)
			_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, exitCode(t, err))
			assert.Empty(t, app.Board.Games(), "nothing is saved")
		})
	}
}

func TestCreateGame_JSONError(t *testing.T) {
	app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(),
		append([]string{"--score", "11", "--json"}, validFlags...))
	require.Error(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "INVALID_SCORE", result["error"].(map[string]any)["code"])
}

// ============================================================================
// update
// ============================================================================

func TestUpdateGame_ChangesOnlyGivenFields(t *testing.T) {
	app := clitest.SetupCLITest(t)
	id := clitest.CreateTestGame(t, app, "Secret of Mana", "gameplay", "coop")

	output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", id, "--score", "8.5"})
	require.NoError(t, err)
	assert.Contains(t, output, "updated successfully")

	g, _ := app.Board.Game(id)
	assert.Equal(t, 8.5, g.Score)
	assert.Equal(t, "Secret of Mana", g.Title)
	assert.Equal(t, []string{"coop"}, g.Tags)

	owner, _ := app.Board.OwnerOf(id)
	assert.Equal(t, "gameplay", owner)
}

func TestUpdateGame_Rejections(t *testing.T) {
	app := clitest.SetupCLITest(t)
	id := clitest.CreateTestGame(t, app, "Secret of Mana", "gameplay")

	_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", "game-404", "--score", "1"})
	assert.Equal(t, cli.ExitNotFound, exitCode(t, err))

	_, err = clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", id, "--review", ""})
	assert.Equal(t, cli.ExitValidation, exitCode(t, err))

	g, _ := app.Board.Game(id)
	assert.NotEmpty(t, g.Review)
}

// ============================================================================
// delete
// ============================================================================

func TestDeleteGame(t *testing.T) {
	app := clitest.SetupCLITest(t)
	id := clitest.CreateTestGame(t, app, "Chrono Trigger", "storytelling")

	output, err := clitest.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", id}, "no\n")
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")
	_, ok := app.Board.Game(id)
	require.True(t, ok)

	output, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", id, "--force"})
	require.NoError(t, err)
	assert.Contains(t, output, "deleted successfully")

	_, ok = app.Board.Game(id)
	assert.False(t, ok)
	col, _ := app.Board.Column("storytelling")
	assert.Empty(t, col.GameIDs)

	_, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", id, "--force"})
	assert.Equal(t, cli.ExitNotFound, exitCode(t, err))
}

// ============================================================================
// show
// ============================================================================

func TestShowGame(t *testing.T) {
	app := clitest.SetupCLITest(t)
	id := clitest.CreateTestGame(t, app, "Chrono Trigger", "classics", "snes")

	t.Run("positional id", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{id})
		require.NoError(t, err)
		assert.Contains(t, output, "Chrono Trigger")
		assert.Contains(t, output, "Timeless Classics")
		assert.Contains(t, output, "#snes")
		assert.Contains(t, output, "8.0/10")
		assert.Contains(t, output, "(no image)")
		assert.Contains(t, output, "A review of Chrono Trigger")
	})

	t.Run("json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", id, "--json"})
		require.NoError(t, err)
		g := testutil.ParseJSON(t, output)["game"].(map[string]any)
		assert.Equal(t, "classics", g["column"])
		assert.Equal(t, "", g["imageUrl"])
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{})
		assert.Equal(t, cli.ExitUsage, exitCode(t, err))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"game-404"})
		assert.Equal(t, cli.ExitNotFound, exitCode(t, err))
	})
}

// ============================================================================
// list
// ============================================================================

func TestListGames(t *testing.T) {
	app := clitest.SetupCLITest(t)
	zelda := clitest.CreateTestGame(t, app, "Zelda", "classics", "snes")
	chrono := clitest.CreateTestGame(t, app, "Chrono Trigger", "classics", "SNES", "time travel")
	ff7 := clitest.CreateTestGame(t, app, "Final Fantasy VII", "", "ps1")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"all sorted by title", []string{}, []string{chrono, ff7, zelda}},
		{"column order", []string{"--column", "classics"}, []string{zelda, chrono}},
		{"unassigned", []string{"--unassigned"}, []string{ff7}},
		{"tag glob", []string{"--tag", "ps{1,2}"}, []string{ff7}},
		{"tag case-insensitive", []string{"--tag", "snes"}, []string{chrono, zelda}},
		{"tag with column", []string{"--column", "classics", "--tag", "time*"}, []string{chrono}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), append(tt.args, "--quiet"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, testutil.QuietIDs(output))
		})
	}

	t.Run("json carries columns", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json", "--unassigned"})
		require.NoError(t, err)
		games := testutil.JSONList(t, testutil.ParseJSON(t, output), "games")
		require.Len(t, games, 1)
		assert.Equal(t, "", games[0]["column"])
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--column", "nope"})
		assert.Equal(t, cli.ExitNotFound, exitCode(t, err))
	})

	t.Run("bad glob", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--tag", "["})
		assert.Equal(t, cli.ExitUsage, exitCode(t, err))
	})
}

// ============================================================================
// move
// ============================================================================

func TestMoveGame(t *testing.T) {
	app := clitest.SetupCLITest(t)
	g1 := clitest.CreateTestGame(t, app, "Chrono Trigger", "storytelling")
	g2 := clitest.CreateTestGame(t, app, "Secret of Mana", "gameplay")

	output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", g1, "--to", "gameplay"})
	require.NoError(t, err)
	assert.Contains(t, output, "moved to 'Gameplay Innovation'")

	col, _ := app.Board.Column("gameplay")
	assert.Equal(t, []string{g2, g1}, col.GameIDs)
	col, _ = app.Board.Column("storytelling")
	assert.Empty(t, col.GameIDs)
	assert.False(t, app.Board.Dragging().Active)
}

func TestMoveGame_SameColumn(t *testing.T) {
	app := clitest.SetupCLITest(t)
	g1 := clitest.CreateTestGame(t, app, "A", "gameplay")
	g2 := clitest.CreateTestGame(t, app, "B", "gameplay")

	output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", g1, "--to", "gameplay"})
	require.NoError(t, err)
	assert.Contains(t, output, "already in")

	col, _ := app.Board.Column("gameplay")
	assert.Equal(t, []string{g1, g2}, col.GameIDs)
}

func TestMoveGame_AssignsUnassigned(t *testing.T) {
	app := clitest.SetupCLITest(t)
	id := clitest.CreateTestGame(t, app, "Loose", "")

	output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", id, "--to", "classics", "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "", result["from"])
	assert.Equal(t, "classics", result["to"])

	owner, ok := app.Board.OwnerOf(id)
	require.True(t, ok)
	assert.Equal(t, "classics", owner)
}

func TestMoveGame_NotFound(t *testing.T) {
	app := clitest.SetupCLITest(t)
	id := clitest.CreateTestGame(t, app, "A", "gameplay")

	_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "game-404", "--to", "gameplay"})
	assert.Equal(t, cli.ExitNotFound, exitCode(t, err))

	_, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", id, "--to", "nope"})
	assert.Equal(t, cli.ExitNotFound, exitCode(t, err))
}
