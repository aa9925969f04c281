package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/example/icled/internal/config"
	"github.com/example/icled/internal/control"
	"github.com/example/icled/internal/effects"
	"github.com/example/icled/internal/icled"
	"github.com/example/icled/internal/output"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "icled.yaml", "path to icled.yaml")
		driver     = pflag.String("driver", "", "output: sim | spi | screen | serial (overrides config)")
		addr       = pflag.String("addr", "", "HTTP listen address (overrides config)")
		effect     = pflag.String("effect", "", "startup effect (overrides config)")
		verbose    = pflag.BoolP("verbose", "v", false, "debug logging")
	)
	pflag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; using defaults")
		cfg = config.Default()
	}
	if *driver != "" {
		cfg.Driver = *driver
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *effect != "" {
		cfg.Effect = *effect
	}

	if err := run(cfg); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("daemon exited")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zero, one := icled.DutyCodes(cfg.PeriodTicks)
	tr := openTransfer(cfg, zero, one)
	if c, ok := tr.(io.Closer); ok {
		defer c.Close()
	}

	drv, err := icled.New(tr, cfg.PeriodTicks, log.Logger)
	if err != nil {
		return err
	}
	if err := drv.Init(); err != nil {
		return err
	}

	sel := &effects.Selector{}
	if m, ok := effects.ParseMode(cfg.Effect); ok {
		sel.Set(m)
	} else {
		log.Warn().Str("effect", cfg.Effect).Msg("unknown startup effect; using sweep")
	}

	runner := effects.NewRunner(drv, sel, cfg.Brightness, log.Logger)
	ctrl := control.NewServer(drv, sel, log.Logger)
	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     ctrl.Handler(),
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return runner.Run(ctx) })
	g.Go(func() error { return ctrl.BroadcastLoop(ctx, cfg.PreviewFPS) })
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Str("driver", cfg.Driver).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
		_ = drv.Clear()
		return ctx.Err()
	})
	return g.Wait()
}

// openTransfer builds the configured output, falling back to the simulator
// when hardware is unavailable.
func openTransfer(cfg *config.Config, zero, one uint16) icled.Transfer {
	switch cfg.Driver {
	case "sim":
		return output.NewSim(zero, one)

	case "spi":
		if _, err := host.Init(); err != nil {
			log.Warn().Err(err).Msg("host init failed; falling back to sim")
			return output.NewSim(zero, one)
		}
		freq := physic.Frequency(cfg.SPI.SpeedHz) * physic.Hertz
		tr, err := output.NewSPI(cfg.SPI.Dev, freq, zero, one)
		if err != nil {
			log.Warn().Err(err).Str("dev", cfg.SPI.Dev).Msg("SPI init failed; falling back to sim")
			return output.NewSim(zero, one)
		}
		return tr

	case "screen":
		return output.NewScreen(zero, one)

	case "serial":
		tr, err := output.NewSerial(cfg.Serial.Device, cfg.Serial.Baud, zero, one)
		if err != nil {
			log.Warn().Err(err).Str("device", cfg.Serial.Device).Msg("serial init failed; falling back to sim")
			return output.NewSim(zero, one)
		}
		return tr

	default:
		log.Warn().Str("driver", cfg.Driver).Msg("unknown driver; using sim")
		return output.NewSim(zero, one)
	}
}
