package menu

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/vrhud/internal/domain"
	"github.com/riordanpawley/vrhud/internal/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	name     string
	visible  bool
	selected bool
}

func (n *fakeNode) Name() string              { return n.name }
func (n *fakeNode) SetVisible(visible bool)   { n.visible = visible }
func (n *fakeNode) SetSelected(selected bool) { n.selected = selected }

type fakeScene struct {
	views   map[string]*fakeNode
	buttons map[string]*fakeNode
}

func newFakeScene(views, buttons []string) *fakeScene {
	s := &fakeScene{views: map[string]*fakeNode{}, buttons: map[string]*fakeNode{}}
	for _, v := range views {
		s.views[strings.ToLower(v)] = &fakeNode{name: v}
	}
	for _, b := range buttons {
		s.buttons[strings.ToLower(b)] = &fakeNode{name: b}
	}
	return s
}

func (s *fakeScene) View(name string) (View, bool) {
	n, ok := s.views[strings.ToLower(name)]
	return n, ok
}

func (s *fakeScene) Button(name string) (Button, bool) {
	n, ok := s.buttons[strings.ToLower(name)]
	return n, ok
}

type fakeHandler struct {
	title   string
	focused bool
	msgs    []tea.Msg
}

func (h *fakeHandler) Title() string { return h.title }
func (h *fakeHandler) View() string  { return h.title }
func (h *fakeHandler) Update(msg tea.Msg) tea.Cmd {
	h.msgs = append(h.msgs, msg)
	return nil
}
func (h *fakeHandler) SetFocused(focused bool) { h.focused = focused }

type nopTarget struct{}

func (nopTarget) SetStrength(float64) {}
func (nopTarget) SetActive(bool)      {}

func reg(name string) Registration {
	return Registration{Handler: name, New: func() Handler { return &fakeHandler{title: name} }}
}

func quietLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestRegistration_Names(t *testing.T) {
	r := Registration{Handler: "DisplayTabHandler"}

	assert.Equal(t, "DisplayTab", r.TabName())
	assert.Equal(t, "displaytab", r.ID())
}

func TestBuild_MatchesCaseInsensitively(t *testing.T) {
	scene := newFakeScene([]string{"generaltab", "DISPLAYTAB"}, []string{"GeneralTab", "displayTab"})
	logger, _ := quietLogger()

	m := Build(scene, []Registration{reg("GeneralTabHandler"), reg("DisplayTabHandler")}, nopTarget{}, tween.DefaultAnimatorOptions(), logger)

	require.Len(t, m.Tabs(), 2)
	assert.Equal(t, "generaltab", m.Current().ID)
	assert.Empty(t, m.Skipped())
}

func TestBuild_SkipsMissingResources(t *testing.T) {
	scene := newFakeScene([]string{"GeneralTab", "AudioTab"}, []string{"GeneralTab", "DisplayTab"})
	logger, buf := quietLogger()

	m := Build(scene, []Registration{
		reg("GeneralTabHandler"),
		reg("DisplayTabHandler"), // no view
		reg("AudioTabHandler"),   // no button
	}, nopTarget{}, tween.DefaultAnimatorOptions(), logger)

	require.Len(t, m.Tabs(), 1)
	require.Len(t, m.Skipped(), 2)
	assert.True(t, errors.Is(m.Skipped()[0], domain.ErrViewNotFound))
	assert.True(t, errors.Is(m.Skipped()[1], domain.ErrButtonNotFound))

	results := m.Results()
	require.Len(t, results, 3)
	assert.NoError(t, results[0])
	assert.ErrorIs(t, results[1], domain.ErrViewNotFound)
	assert.ErrorIs(t, results[2], domain.ErrButtonNotFound)

	assert.Contains(t, buf.String(), "skipping tab")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestBuild_SkipsDuplicatesAndNilConstructors(t *testing.T) {
	scene := newFakeScene([]string{"GeneralTab"}, []string{"GeneralTab"})
	logger, _ := quietLogger()

	m := Build(scene, []Registration{
		reg("GeneralTabHandler"),
		reg("GeneralTabHandler"),
	}, nopTarget{}, tween.DefaultAnimatorOptions(), logger)
	require.Len(t, m.Tabs(), 1)
	assert.True(t, errors.Is(m.Skipped()[0], domain.ErrDuplicateTab))

	m = Build(scene, []Registration{{Handler: "GeneralTabHandler"}}, nopTarget{}, tween.DefaultAnimatorOptions(), logger)
	assert.Empty(t, m.Tabs())
	assert.Nil(t, m.Current())
}

func TestMenu_FirstTabFocused(t *testing.T) {
	scene := newFakeScene([]string{"ATab", "BTab"}, []string{"ATab", "BTab"})
	logger, _ := quietLogger()
	m := Build(scene, []Registration{reg("ATabHandler"), reg("BTabHandler")}, nopTarget{}, tween.DefaultAnimatorOptions(), logger)

	assert.True(t, scene.views["atab"].visible)
	assert.True(t, scene.buttons["atab"].selected)
	assert.False(t, scene.views["btab"].visible)
	assert.True(t, m.Tabs()[0].Handler.(*fakeHandler).focused)
}

func TestMenu_SelectNextPrev(t *testing.T) {
	scene := newFakeScene([]string{"ATab", "BTab", "CTab"}, []string{"ATab", "BTab", "CTab"})
	logger, _ := quietLogger()
	m := Build(scene, []Registration{reg("ATabHandler"), reg("BTabHandler"), reg("CTabHandler")}, nopTarget{}, tween.DefaultAnimatorOptions(), logger)

	require.NoError(t, m.Select("ctab"))
	assert.Equal(t, "ctab", m.Current().ID)
	assert.True(t, scene.views["ctab"].visible)
	assert.False(t, scene.views["atab"].visible)

	m.Next()
	assert.Equal(t, "atab", m.Current().ID)

	m.Prev()
	assert.Equal(t, "ctab", m.Current().ID)

	err := m.Select("nope")
	assert.True(t, errors.Is(err, domain.ErrUnknownTab))
	assert.Equal(t, "ctab", m.Current().ID)
}

func TestMenu_HandleMsgOnlyWhenOpen(t *testing.T) {
	scene := newFakeScene([]string{"ATab"}, []string{"ATab"})
	logger, _ := quietLogger()
	m := Build(scene, []Registration{reg("ATabHandler")}, nopTarget{}, tween.DefaultAnimatorOptions(), logger)
	h := m.Current().Handler.(*fakeHandler)

	m.HandleMsg(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, h.msgs)

	m.Toggle()
	m.HandleMsg(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, h.msgs, 1)
}

func TestMenu_ToggleAnimatesScale(t *testing.T) {
	scene := newFakeScene(nil, nil)
	logger, _ := quietLogger()
	opts := tween.DefaultAnimatorOptions()
	m := Build(scene, nil, nopTarget{}, opts, logger)

	m.Toggle()
	assert.True(t, m.IsOpen())
	for i := 0; i < 20; i++ {
		m.Update(opts.Duration / 10)
	}
	assert.Equal(t, opts.TargetValue, m.Scale())

	m.Close()
	assert.False(t, m.IsOpen())
	assert.True(t, m.Animator().Animating())
	m.Update(time.Second)
	assert.Equal(t, 0.0, m.Scale())

	// empty menus never panic
	m.Next()
	m.Prev()
	assert.Nil(t, m.HandleMsg(tea.KeyMsg{}))
}
