package main

import (
	"flag"

	"github.com/hubastard/iui/engine/config"
	"github.com/hubastard/iui/engine/core"
	glbackend "github.com/hubastard/iui/engine/gfx/gl"
	"github.com/hubastard/iui/engine/platform"
	"github.com/sirupsen/logrus"
)

type App struct {
	cfg config.Config
	log *logrus.Logger
	ui  *LayerUI
}

func (a *App) OnStart(e *core.Engine) {
	a.ui = NewLayerUI(a.cfg.UIOptions(a.log), a.log.WithField("component", "sandbox"))
	e.PushLayer(a.ui)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine) {
	a.log.WithField("uptime", e.Uptime()).Info("sandbox shutting down")
}

func main() {
	cfgPath := flag.String("config", "iui.yaml", "optional YAML config file")
	envPath := flag.String("env", ".env", "optional env file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath, *envPath)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := cfg.Logger()
	// The engine logs through the standard logger.
	logrus.SetLevel(log.GetLevel())
	logrus.SetFormatter(log.Formatter)

	app := &App{cfg: cfg, log: log}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg.Window, newWindow, newRenderer); err != nil {
		log.WithError(err).Fatal("engine stopped")
	}
}
