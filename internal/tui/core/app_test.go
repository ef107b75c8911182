package core

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/database"
)

func TestAppDelegatesToModel(t *testing.T) {
	ctx := context.Background()
	db, err := database.InitDB(ctx, database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	a := New(ctx, app.New(db, nil), nil, "")
	assert.Nil(t, a.Init())
	assert.Equal(t, "Loading...", a.View().Content)

	updated, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Same(t, a, updated)
	assert.Equal(t, 120, a.GetModel().UIState.Width())

	_, _ = a.Update(tea.KeyPressMsg(tea.Key{Text: "+", Code: '+'}))
	rows := a.GetModel().App.BoardService.Rows()
	assert.Equal(t, 1, rows[0].Columns[0].Score)

	_, cmd := a.Update(tea.KeyPressMsg(tea.Key{Text: "q", Code: 'q'}))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
