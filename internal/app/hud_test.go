package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/vrhud/internal/config"
	"github.com/riordanpawley/vrhud/internal/logging"
	"github.com/riordanpawley/vrhud/internal/menu"
	"github.com/riordanpawley/vrhud/internal/tween"
	"github.com/riordanpawley/vrhud/internal/ui/hud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct{}

func (stubHandler) Title() string          { return "Stub" }
func (stubHandler) Update(tea.Msg) tea.Cmd { return nil }
func (stubHandler) View() string           { return "stub" }

func stepFor(h *HUD, d time.Duration) {
	const frame = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		h.Step(frame)
	}
}

func TestNewHUD_BuiltInTabs(t *testing.T) {
	h := NewHUD(config.DefaultConfig(), hud.DemoScene(), nil, logging.New())

	require.Len(t, h.Menu.Tabs(), 3)
	assert.Empty(t, h.Menu.Skipped())
	assert.True(t, h.Service.Ready())
	assert.True(t, h.Settled())
}

func TestNewHUD_SkipsUnmatchedTabs(t *testing.T) {
	regs := []menu.Registration{
		{Handler: "GeneralTabHandler", New: func() menu.Handler { return stubHandler{} }},
		{Handler: "AudioTabHandler", New: func() menu.Handler { return stubHandler{} }},
	}

	h := NewHUD(config.DefaultConfig(), hud.DemoScene(), regs, logging.New())

	require.Len(t, h.Menu.Tabs(), 1)
	assert.Len(t, h.Menu.Skipped(), 1)
}

func TestHUD_NotificationLifecycle(t *testing.T) {
	h := NewHUD(config.DefaultConfig(), hud.DemoScene(), nil, logging.New())

	h.Service.SendNotification("Hello")
	require.Equal(t, 1, h.Queue.Len())
	assert.True(t, h.PanelSurface.Active(), "panel shows before the first fade frame")

	stepFor(h, 200*time.Millisecond)
	assert.InDelta(t, 1.0, h.PanelSurface.Strength(), 1e-9)
	assert.Contains(t, h.Fade.Text(), "Hello")

	stepFor(h, 5*time.Second)
	assert.Equal(t, 0, h.Queue.Len())

	stepFor(h, 400*time.Millisecond)
	assert.False(t, h.PanelSurface.Active())
	assert.Equal(t, 0.0, h.PanelSurface.Strength())
	assert.True(t, h.Settled())
}

func TestHUD_MenuScale(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Menu.TargetScale = 1.2
	h := NewHUD(cfg, hud.DemoScene(), nil, logging.New())

	h.Menu.Toggle()
	assert.False(t, h.Settled())
	stepFor(h, 250*time.Millisecond)

	assert.True(t, h.MenuSurface.Active())
	assert.InDelta(t, 1.2, h.MenuSurface.Strength(), 1e-9)

	h.Menu.Toggle()
	stepFor(h, 250*time.Millisecond)
	assert.False(t, h.MenuSurface.Active())
}

func TestTabSettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Notifications.LifetimeMs = 8000
	cfg.Menu.RestartPolicy = "endpoint"

	s := TabSettings(cfg)

	assert.Equal(t, 8*time.Second, s.Lifetime)
	assert.Equal(t, tween.RestartFromEndpoint, s.Restart)
	assert.Equal(t, 1.0, s.MenuScale)
	assert.True(t, s.PanelEnabled)
}
