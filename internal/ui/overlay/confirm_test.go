package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(t *testing.T, d *ConfirmDialog, keys ...string) (bool, []tea.Msg) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = d.Update(keyPress(k))
	}
	msgs := collect(t, cmd)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs, tea.Msg(CloseOverlayMsg{}))

	sels := selections(t, cmd)
	require.Len(t, sels, 1)
	assert.Equal(t, KeyConfirmClear, sels[0].Key)
	res, ok := sels[0].Value.(ConfirmResult)
	require.True(t, ok)
	return res.Confirmed, msgs
}

func TestConfirmDialog_Defaults(t *testing.T) {
	d := NewClearConfirmDialog(3)

	assert.Equal(t, "Clear notifications", d.Title())
	assert.False(t, d.Selected(), "defaults to No")
	assert.Contains(t, d.View(), "Remove all notifications?")
	assert.Contains(t, d.View(), "[Y] Yes")

	w, h := d.Size()
	assert.Equal(t, 50, w)
	assert.GreaterOrEqual(t, h, 6)

	assert.Contains(t, NewClearConfirmDialog(1).View(), "the notification on screen")
}

func TestConfirmDialog_Answers(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"y", []string{"y"}, true},
		{"Y", []string{"Y"}, true},
		{"n", []string{"n"}, false},
		{"esc", []string{"esc"}, false},
		{"enter on default", []string{"enter"}, false},
		{"move right then enter", []string{"right", "enter"}, true},
		{"tab then enter", []string{"tab", "enter"}, true},
		{"right left enter", []string{"l", "h", "enter"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewClearConfirmDialog(2)
			got, _ := answer(t, d, tt.keys...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmDialog_IgnoresOtherInput(t *testing.T) {
	d := NewClearConfirmDialog(2)

	_, cmd := d.Update(tea.WindowSizeMsg{Width: 80})
	assert.Nil(t, cmd)
	_, cmd = d.Update(keyPress("x"))
	assert.Nil(t, cmd)
	assert.Nil(t, d.Init())
}

func TestConfirmDialog_InStack(t *testing.T) {
	stack := NewStack()
	stack.Push(NewClearConfirmDialog(2))

	cmd := stack.Update(keyPress("y"))
	for _, msg := range collect(t, cmd) {
		stack.Update(msg)
	}

	assert.True(t, stack.IsEmpty())
}
