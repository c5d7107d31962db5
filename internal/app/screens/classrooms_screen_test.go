package screens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassroomsScreenAddReloadsList(t *testing.T) {
	svcs := setupScreens(t)
	screen := NewClassroomsScreen(svcs.classrooms)
	ctx := context.Background()

	require.NoError(t, screen.Load(ctx))
	assert.Empty(t, screen.Filtered())

	require.NoError(t, screen.Add(ctx, "Turma A"))
	require.NoError(t, screen.Add(ctx, "Turma B"))

	// Mutations reload from storage; no manual Load needed.
	assert.Len(t, screen.Filtered(), 2)
}

func TestClassroomsScreenFilter(t *testing.T) {
	svcs := setupScreens(t)
	screen := NewClassroomsScreen(svcs.classrooms)
	ctx := context.Background()

	require.NoError(t, screen.Add(ctx, "Turma A"))
	require.NoError(t, screen.Add(ctx, "Turma B"))

	screen.SetSearch("a")
	filtered := screen.Filtered()
	require.Len(t, filtered, 2) // case-insensitive: "a" hits "Turma"

	screen.SetSearch("turma b")
	filtered = screen.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Turma B", filtered[0].Name)

	screen.SetSearch("xyz")
	assert.Empty(t, screen.Filtered())

	// The full list is untouched by filtering.
	screen.SetSearch("")
	assert.Len(t, screen.Filtered(), 2)
}

func TestClassroomsScreenSelectionToggle(t *testing.T) {
	svcs := setupScreens(t)
	screen := NewClassroomsScreen(svcs.classrooms)

	assert.Equal(t, int64(0), screen.SelectedID())

	screen.ToggleSelected(7)
	assert.Equal(t, int64(7), screen.SelectedID())

	// Tapping the same row again clears the selection.
	screen.ToggleSelected(7)
	assert.Equal(t, int64(0), screen.SelectedID())

	screen.ToggleSelected(7)
	screen.ToggleSelected(9)
	assert.Equal(t, int64(9), screen.SelectedID())
}

func TestClassroomsScreenModalState(t *testing.T) {
	svcs := setupScreens(t)
	screen := NewClassroomsScreen(svcs.classrooms)
	ctx := context.Background()

	require.NoError(t, screen.Add(ctx, "Turma A"))
	classroom := screen.Filtered()[0]

	assert.Equal(t, ModalClosed, screen.Mode())

	screen.OpenForAdd()
	assert.Equal(t, ModalAdd, screen.Mode())
	assert.Equal(t, ClassroomForm{}, screen.Form())

	screen.OpenForEdit(classroom)
	assert.Equal(t, ModalEdit, screen.Mode())
	assert.Equal(t, classroom.ID, screen.Form().ID)
	assert.Equal(t, "Turma A", screen.Form().Name)

	screen.CloseModal()
	assert.Equal(t, ModalClosed, screen.Mode())
	assert.Equal(t, ClassroomForm{}, screen.Form())
}

func TestClassroomsScreenUpdateAndDelete(t *testing.T) {
	svcs := setupScreens(t)
	screen := NewClassroomsScreen(svcs.classrooms)
	ctx := context.Background()

	require.NoError(t, screen.Add(ctx, "Turma A"))
	classroom := screen.Filtered()[0]

	require.NoError(t, screen.Update(ctx, classroom.ID, "Turma A - Tarde"))
	assert.Equal(t, "Turma A - Tarde", screen.Filtered()[0].Name)

	screen.ToggleSelected(classroom.ID)
	require.NoError(t, screen.Delete(ctx, classroom.ID))
	assert.Empty(t, screen.Filtered())
	assert.Equal(t, int64(0), screen.SelectedID())
}

func TestClassroomsScreenMutationErrorKeepsList(t *testing.T) {
	svcs := setupScreens(t)
	screen := NewClassroomsScreen(svcs.classrooms)
	ctx := context.Background()

	require.NoError(t, screen.Add(ctx, "Turma A"))

	// A failed mutation surfaces its error and leaves the list as last loaded.
	err := screen.Update(ctx, 999, "Turma X")
	require.Error(t, err)
	assert.Len(t, screen.Filtered(), 1)
	assert.Equal(t, "Turma A", screen.Filtered()[0].Name)
}
