package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ai-entity/audio"
	"github.com/lixenwraith/ai-entity/config"
	"github.com/lixenwraith/ai-entity/core"
	"github.com/lixenwraith/ai-entity/engine"
	"github.com/lixenwraith/ai-entity/entity"
	"github.com/lixenwraith/ai-entity/interaction"
	"github.com/lixenwraith/ai-entity/logging"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/render"
	"github.com/lixenwraith/ai-entity/showcase"
	"github.com/lixenwraith/ai-entity/vmath"
)

// options are the command line flags shared by every command
type options struct {
	configPath string
	debug      bool
	color      string
	fps        int
	seed       int64
	noAudio    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "ai-entity",
		Short:        "An animated neural entity for the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default ./ai-entity.toml)")
	pf.Int64Var(&opts.seed, "seed", 0, "random seed for layout and effects (0 uses the clock)")

	f := cmd.Flags()
	f.BoolVar(&opts.debug, "debug", false, "write debug logs to the log file")
	f.StringVar(&opts.color, "color", "auto", "color mode: auto, truecolor, 256")
	f.IntVar(&opts.fps, "fps", parameter.DefaultFPS, "frames per second")
	f.BoolVar(&opts.noAudio, "no-audio", false, "disable sound")

	cmd.AddCommand(newLayoutCmd(opts), newConfigCmd(opts))
	return cmd
}

// loadConfig reads the config store and applies flags the user set explicitly
func loadConfig(cmd *cobra.Command, opts *options) (*config.Store, config.Config, error) {
	store, err := config.Load(opts.configPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	cfg := store.Config()

	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("fps") {
		cfg.Render.FPS = opts.fps
	}
	if changed("color") {
		cfg.Render.Color = opts.color
	}
	if changed("seed") {
		cfg.Render.Seed = opts.seed
	}
	if changed("no-audio") && opts.noAudio {
		cfg.Audio.Enabled = false
	}
	if changed("debug") && opts.debug {
		cfg.Log.Enabled = true
	}
	return store, cfg.Sanitize(), nil
}

// applyColorMode steers tcell's color detection, must run before NewScreen
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	}
}

func seedOf(cfg config.Config) uint64 {
	if cfg.Render.Seed != 0 {
		return uint64(cfg.Render.Seed)
	}
	return uint64(time.Now().UnixNano())
}

func run(ctx context.Context, cmd *cobra.Command, opts *options) error {
	store, cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Log, opts.debug)
	if err != nil {
		// Screen is not up yet, stderr is still ours
		cmd.PrintErrln("logging disabled:", err)
	}
	defer closeLog()
	core.SetLogger(logger)

	applyColorMode(cfg.Render.Color)
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.SetTerminal(screen)
	defer core.RestoreTerminal()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	pal := render.DefaultPalette()
	screen.SetStyle(tcell.StyleDefault.Background(render.Tcell(pal.Background)))
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := vmath.NewFastRand(seedOf(cfg))
	renderer := render.NewCellRenderer(screen, pal)
	canvas := render.NewScreenCanvas(screen)

	ent, err := entity.New(canvas,
		entity.WithRand(rng),
		entity.WithLogger(logger),
		entity.WithTuning(cfg.Tuning()),
		entity.WithDrawer(renderer),
		entity.WithTooltip(renderer.Tooltip()),
	)
	if err != nil {
		logger.Warn("entity unavailable", zap.Error(err))
	}

	player := audio.NewPlayer(audio.WithLogger(logger), audio.WithVolume(cfg.Audio.Volume))
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			logger.Warn("continuing without audio", zap.Error(err))
		}
	}
	defer player.Close()

	show := showcase.New(renderer.Panel(), showcase.WithRand(rng), showcase.WithLogger(logger))
	ent.OnPulse(player.PlayPulse)
	ent.OnRevealed(player.PlaySweep)
	ent.OnNodeClick(func(i int) { show.HandleNode(i) })

	events := make(chan tcell.Event, parameter.EventQueueSize)
	quit := make(chan struct{})
	core.Go(func() { screen.ChannelEvents(events, quit) })

	loop := engine.NewLoop(events,
		engine.WithInterval(engine.IntervalForFPS(cfg.Render.FPS)),
		engine.WithLogger(logger),
		engine.WithCrashHandler(core.HandleCrash),
	)
	mgr := interaction.NewManager(ent, loop, canvas,
		interaction.WithChrome(renderer),
		interaction.WithDemo(show),
		interaction.WithRand(rng),
		interaction.WithLogger(logger),
	)
	loop.OnEvent(mgr.HandleEvent)
	loop.OnFrame(func(now time.Time) {
		show.Update(now)
		ent.Tick()
	})

	if store.Watch(func(c config.Config) {
		loop.After(0, func() { ent.SetTuning(c.Tuning()) })
	}) {
		logger.Info("watching config", zap.String("file", store.File()))
	}

	logger.Info("started",
		zap.Int("fps", cfg.Render.FPS),
		zap.String("color", cfg.Render.Color),
		zap.Bool("audio", cfg.Audio.Enabled),
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(core.Guard(func() error {
		defer cancel()
		err := loop.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}))
	g.Go(core.Guard(func() error {
		<-gctx.Done()
		close(quit)
		return nil
	}))
	err = g.Wait()

	mgr.Detach()
	ent.Close()
	renderer.Release()
	logger.Info("stopped", zap.Uint64("frames", loop.Frames()))
	return err
}
