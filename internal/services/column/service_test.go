package column

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/shelf/internal/models"
	"github.com/thenoetrevino/shelf/internal/store"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var errDiskFull = errors.New("disk full")

type failingBackend struct {
	store.Backend
	failPut bool
}

func (f *failingBackend) Put(ctx context.Context, key string, data []byte) error {
	if f.failPut {
		return errDiskFull
	}
	return f.Backend.Put(ctx, key, data)
}

// threeColumns returns a seed of columns a, b, c with the given memberships
func threeColumns(a, b, c []string) func() []*models.Column {
	return func() []*models.Column {
		return []*models.Column{
			{ID: "a", Title: "A", GameIDs: append([]string{}, a...)},
			{ID: "b", Title: "B", GameIDs: append([]string{}, b...)},
			{ID: "c", Title: "C", GameIDs: append([]string{}, c...)},
		}
	}
}

func setupRepo(t *testing.T, seed func() []*models.Column) *Repository {
	t.Helper()
	return NewRepository(context.Background(), store.NewMemoryBackend(), WithSeed(seed))
}

func memberships(r *Repository) map[string][]string {
	out := make(map[string][]string)
	for _, c := range r.All() {
		out[c.ID] = c.GameIDs
	}
	return out
}

func totalMembers(r *Repository) int {
	n := 0
	for _, c := range r.All() {
		n += len(c.GameIDs)
	}
	return n
}

// assertSingleOwnership checks the one-column invariant and index consistency
func assertSingleOwnership(r *Repository) error {
	seen := make(map[string]string)
	for _, c := range r.All() {
		for _, id := range c.GameIDs {
			if prev, ok := seen[id]; ok {
				return fmt.Errorf("game %s in both %s and %s", id, prev, c.ID)
			}
			seen[id] = c.ID
			if owner, _ := r.OwnerOf(id); owner != c.ID {
				return fmt.Errorf("index says %s owns %s, membership says %s", owner, id, c.ID)
			}
		}
	}
	if len(seen) != len(r.owner) {
		return fmt.Errorf("index has %d entries, membership has %d", len(r.owner), len(seen))
	}
	return nil
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestNewRepository_SeedsDefaults(t *testing.T) {
	r := NewRepository(context.Background(), store.NewMemoryBackend())

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Storytelling Masters", all[0].Title)
	assert.Equal(t, "Gameplay Innovation", all[1].Title)
	assert.Equal(t, "Timeless Classics", all[2].Title)
}

func TestCreate_AppendsAtEnd(t *testing.T) {
	ctx := context.Background()
	r := setupRepo(t, threeColumns(nil, nil, nil))

	id, err := r.Create(ctx, "  Backlog  ")
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 4)
	assert.Equal(t, id, all[3].ID)
	assert.Equal(t, "Backlog", all[3].Title)
	assert.Empty(t, all[3].GameIDs)
	assert.Contains(t, id, models.ColumnIDPrefix)
}

func TestCreate_EmptyTitle(t *testing.T) {
	r := setupRepo(t, threeColumns(nil, nil, nil))

	_, err := r.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Equal(t, 3, r.Len())
}

func TestUpdate_RenamesInPlace(t *testing.T) {
	ctx := context.Background()
	r := setupRepo(t, threeColumns([]string{"g1"}, nil, nil))

	require.NoError(t, r.Update(ctx, "b", "Bee"))

	all := r.All()
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, "Bee", all[1].Title)
	assert.Equal(t, []string{"g1"}, all[0].GameIDs)
}

func TestUpdate_AbsentIsNoop(t *testing.T) {
	r := setupRepo(t, threeColumns(nil, nil, nil))
	require.NoError(t, r.Update(context.Background(), "zzz", "Nope"))
	assert.Equal(t, 3, r.Len())
}

func TestDelete_RemovesExactlyThatColumn(t *testing.T) {
	ctx := context.Background()
	r := setupRepo(t, threeColumns([]string{"g1"}, []string{"g2", "g3"}, nil))

	removed, err := r.Delete(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"g2", "g3"}, removed)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[1].ID)

	_, owned := r.OwnerOf("g2")
	assert.False(t, owned)
	require.NoError(t, assertSingleOwnership(r))
}

func TestDelete_AbsentIsNoop(t *testing.T) {
	r := setupRepo(t, threeColumns(nil, nil, nil))
	removed, err := r.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, removed)
	assert.Equal(t, 3, r.Len())
}

func TestAppendMember(t *testing.T) {
	ctx := context.Background()
	r := setupRepo(t, threeColumns([]string{"g1"}, nil, nil))

	require.NoError(t, r.AppendMember(ctx, "a", "g2"))
	assert.Equal(t, []string{"g1", "g2"}, memberships(r)["a"])

	owner, ok := r.OwnerOf("g2")
	require.True(t, ok)
	assert.Equal(t, "a", owner)
}

func TestAppendMember_RejectsSecondOwner(t *testing.T) {
	ctx := context.Background()
	r := setupRepo(t, threeColumns([]string{"g1"}, nil, nil))

	assert.ErrorIs(t, r.AppendMember(ctx, "b", "g1"), ErrAlreadyAssigned)
	assert.ErrorIs(t, r.AppendMember(ctx, "a", "g1"), ErrAlreadyAssigned)
	assert.Empty(t, memberships(r)["b"])
	assert.Equal(t, []string{"g1"}, memberships(r)["a"])
}

func TestAppendMember_AbsentColumnIsNoop(t *testing.T) {
	ctx := context.Background()
	r := setupRepo(t, threeColumns(nil, nil, nil))

	require.NoError(t, r.AppendMember(ctx, "missing", "g1"))
	_, owned := r.OwnerOf("g1")
	assert.False(t, owned)
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()
	r := setupRepo(t, threeColumns([]string{"g1", "g2"}, nil, nil))

	require.NoError(t, r.RemoveMember(ctx, "a", "g1"))
	assert.Equal(t, []string{"g2"}, memberships(r)["a"])

	// absent member and absent column are no-ops
	require.NoError(t, r.RemoveMember(ctx, "a", "g1"))
	require.NoError(t, r.RemoveMember(ctx, "missing", "g2"))
	assert.Equal(t, []string{"g2"}, memberships(r)["a"])
}

func TestTransferMember_AppendsToEndOfTarget(t *testing.T) {
	ctx := context.Background()
	r := setupRepo(t, threeColumns([]string{"g1", "g2"}, []string{"g3"}, nil))
	before := totalMembers(r)

	require.NoError(t, r.TransferMember(ctx, "a", "b", "g1"))

	m := memberships(r)
	assert.Equal(t, []string{"g2"}, m["a"])
	assert.Equal(t, []string{"g3", "g1"}, m["b"])
	assert.Equal(t, before, totalMembers(r))

	owner, _ := r.OwnerOf("g1")
	assert.Equal(t, "b", owner)
}

func TestTransferMember_SameColumnIsNoop(t *testing.T) {
	ctx := context.Background()
	r := setupRepo(t, threeColumns([]string{"g1", "g2"}, nil, nil))

	require.NoError(t, r.TransferMember(ctx, "a", "a", "g1"))
	assert.Equal(t, []string{"g1", "g2"}, memberships(r)["a"])
}

func TestTransferMember_NoopCases(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name           string
		source, target string
		game           string
	}{
		{"game not in source", "b", "c", "g1"},
		{"unknown game", "a", "b", "ghost"},
		{"missing source", "zzz", "b", "g1"},
		{"missing target", "a", "zzz", "g1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRepo(t, threeColumns([]string{"g1"}, nil, nil))
			require.NoError(t, r.TransferMember(ctx, tt.source, tt.target, tt.game))
			assert.Equal(t, map[string][]string{"a": {"g1"}, "b": {}, "c": {}}, memberships(r))
		})
	}
}

func TestPurgeMember_ScansEveryColumn(t *testing.T) {
	ctx := context.Background()
	r := setupRepo(t, threeColumns([]string{"g1", "g2"}, []string{"g3"}, nil))

	require.NoError(t, r.PurgeMember(ctx, "g2"))
	require.NoError(t, r.PurgeMember(ctx, "g2"))

	m := memberships(r)
	assert.Equal(t, []string{"g1"}, m["a"])
	assert.Equal(t, []string{"g3"}, m["b"])
	_, owned := r.OwnerOf("g2")
	assert.False(t, owned)
}

func TestLoad_CollapsesDuplicateMembership(t *testing.T) {
	r := setupRepo(t, threeColumns([]string{"g1", "g1", "g2"}, []string{"g2", "g3"}, []string{"g1"}))

	m := memberships(r)
	assert.Equal(t, []string{"g1", "g2"}, m["a"])
	assert.Equal(t, []string{"g3"}, m["b"])
	assert.Empty(t, m["c"])
	require.NoError(t, assertSingleOwnership(r))
}

func TestLoad_DropsDuplicateAndNilColumns(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	raw := `[{"id":"a","title":"A","gameIds":["g1"]},null,{"id":"a","title":"Again","gameIds":["g2"]},{"id":"b","title":"B"}]`
	require.NoError(t, backend.Put(ctx, models.ColumnsKey, []byte(raw)))

	r := NewRepository(ctx, backend)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Title)
	assert.NotNil(t, all[1].GameIDs)
}

func TestLoad_MalformedFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	require.NoError(t, backend.Put(ctx, models.ColumnsKey, []byte(`{"oops":`)))

	r := NewRepository(ctx, backend)
	assert.Equal(t, models.DefaultColumns(), r.All())
}

func TestPersistence_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	r := NewRepository(ctx, backend)
	require.NoError(t, r.AppendMember(ctx, "classics", "g1"))
	id, err := r.Create(ctx, "Backlog")
	require.NoError(t, err)

	reopened := NewRepository(ctx, backend)
	assert.Equal(t, r.All(), reopened.All())
	owner, _ := reopened.OwnerOf("g1")
	assert.Equal(t, "classics", owner)
	_, ok := reopened.Get(id)
	assert.True(t, ok)
}

func TestWriteFailure_RestoresState(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{Backend: store.NewMemoryBackend()}
	r := NewRepository(ctx, backend, WithSeed(threeColumns([]string{"g1"}, nil, nil)))
	before := r.All()

	backend.failPut = true

	assert.ErrorIs(t, r.TransferMember(ctx, "a", "b", "g1"), errDiskFull)
	assert.ErrorIs(t, r.AppendMember(ctx, "c", "g9"), errDiskFull)
	_, err := r.Delete(ctx, "a")
	assert.ErrorIs(t, err, errDiskFull)
	_, err = r.Create(ctx, "New")
	assert.ErrorIs(t, err, errDiskFull)

	assert.Equal(t, before, r.All())
	owner, _ := r.OwnerOf("g1")
	assert.Equal(t, "a", owner)
	_, owned := r.OwnerOf("g9")
	assert.False(t, owned)
}

func TestGet_ReturnsCopy(t *testing.T) {
	r := setupRepo(t, threeColumns([]string{"g1"}, nil, nil))

	c, ok := r.Get("a")
	require.True(t, ok)
	c.GameIDs[0] = "mutated"

	assert.Equal(t, []string{"g1"}, memberships(r)["a"])
}

// TestProperty_SingleOwnership drives random sequences of membership
// operations and checks that no game ever ends up in two columns and that
// transfers never lose or duplicate a game.
func TestProperty_SingleOwnership(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	columnIDs := []string{"a", "b", "c"}
	gameIDs := []string{"g1", "g2", "g3", "g4", "g5"}

	properties.Property("membership stays single-owner under any operation sequence", prop.ForAll(
		func(ops []int) bool {
			ctx := context.Background()
			r := NewRepository(ctx, store.NewMemoryBackend(), WithSeed(threeColumns(nil, nil, nil)))

			for _, op := range ops {
				kind := op % 4
				from := columnIDs[(op/4)%3]
				to := columnIDs[(op/12)%3]
				g := gameIDs[(op/36)%5]

				before := totalMembers(r)
				switch kind {
				case 0:
					err := r.AppendMember(ctx, from, g)
					if err != nil && !errors.Is(err, ErrAlreadyAssigned) {
						return false
					}
				case 1:
					if err := r.TransferMember(ctx, from, to, g); err != nil {
						return false
					}
					if totalMembers(r) != before {
						return false
					}
				case 2:
					if err := r.RemoveMember(ctx, from, g); err != nil {
						return false
					}
				case 3:
					if err := r.PurgeMember(ctx, g); err != nil {
						return false
					}
				}

				if assertSingleOwnership(r) != nil {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 179)),
	))

	properties.Property("transfer between distinct columns ends with the game last in target", prop.ForAll(
		func(src, dst int, prefix int) bool {
			if src == dst {
				return true
			}
			ctx := context.Background()
			r := NewRepository(ctx, store.NewMemoryBackend(), WithSeed(threeColumns(nil, nil, nil)))

			for i := range prefix {
				if err := r.AppendMember(ctx, columnIDs[dst], fmt.Sprintf("x%d", i)); err != nil {
					return false
				}
			}
			if err := r.AppendMember(ctx, columnIDs[src], "moving"); err != nil {
				return false
			}
			if err := r.TransferMember(ctx, columnIDs[src], columnIDs[dst], "moving"); err != nil {
				return false
			}

			target, _ := r.Get(columnIDs[dst])
			source, _ := r.Get(columnIDs[src])
			return target.GameIDs[len(target.GameIDs)-1] == "moving" && len(source.GameIDs) == 0
		},
		gen.IntRange(0, 2),
		gen.IntRange(0, 2),
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}
