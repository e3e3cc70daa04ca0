package app

import (
	"log/slog"
	"time"

	"github.com/riordanpawley/vrhud/internal/config"
	"github.com/riordanpawley/vrhud/internal/fade"
	"github.com/riordanpawley/vrhud/internal/menu"
	"github.com/riordanpawley/vrhud/internal/notify"
	"github.com/riordanpawley/vrhud/internal/ui/hud"
	"github.com/riordanpawley/vrhud/internal/ui/overlay"
)

// HUD wires the menu, the notification queue and the panel fade together.
// All state advances in Step; nothing runs in the background.
type HUD struct {
	Menu    *menu.Menu
	Queue   *notify.Queue
	Fade    *fade.Controller
	Service *notify.Service

	MenuSurface  *hud.Surface
	PanelSurface *hud.Surface

	logger *slog.Logger
}

// NewHUD builds the overlay from cfg against scene. When regs is nil the
// built-in tabs are registered.
func NewHUD(cfg *config.Config, scene menu.Scene, regs []menu.Registration, logger *slog.Logger) *HUD {
	if logger == nil {
		logger = slog.Default()
	}
	if regs == nil {
		regs = overlay.Registrations(TabSettings(cfg))
	}

	h := &HUD{
		MenuSurface:  &hud.Surface{},
		PanelSurface: &hud.Surface{},
		logger:       logger,
	}

	h.Queue = notify.NewQueue(cfg.Notifications.QueueOptions())
	h.Fade = fade.New(h.PanelSurface, cfg.Notifications.FadeOptions())
	h.Fade.Bind(h.Queue)

	h.Service = notify.NewService(logger.With("component", "notify"))
	h.Service.Init(h.Queue)

	h.Menu = menu.Build(scene, regs, h.MenuSurface, cfg.Menu.AnimatorOptions(), logger.With("component", "menu"))
	h.Menu.Animator().OnSettled(func(open bool) {
		logger.Debug("menu settled", "open", open)
	})

	return h
}

// TabSettings seeds the built-in tabs from cfg
func TabSettings(cfg *config.Config) overlay.TabSettings {
	opts := cfg.Menu.AnimatorOptions()
	return overlay.TabSettings{
		Lifetime:     cfg.Notifications.QueueOptions().Lifetime,
		Restart:      opts.Restart,
		MenuScale:    opts.TargetValue,
		PanelEnabled: true,
	}
}

// Step advances every animation and timer by dt. Expiry runs first so a
// queue that empties this frame starts its fade-out in the same frame.
func (h *HUD) Step(dt time.Duration) {
	h.Queue.Update(dt)
	h.Fade.Update(dt)
	h.Menu.Update(dt)
}

// Settled reports whether nothing is left to animate or expire
func (h *HUD) Settled() bool {
	return h.Queue.Len() == 0 && !h.Fade.Fading() && !h.Menu.Animator().Animating()
}
