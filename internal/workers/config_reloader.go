package workers

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/bbp-gateway/internal/logger"
)

// Reloader re-reads a piece of configuration. [config.Monitor] implements it.
type Reloader interface {
	Reload() error
}

// ConfigReloader reloads the service configuration whenever the process
// receives SIGHUP. Failed reloads are logged and the previous settings stay
// in effect.
type ConfigReloader struct {
	target Reloader

	notify func(c chan<- os.Signal, sig ...os.Signal)
	stop   func(c chan<- os.Signal)

	logger *logger.Logger
}

func NewConfigReloader(target Reloader, logger *logger.Logger) *ConfigReloader {
	return &ConfigReloader{
		target: target,
		notify: signal.Notify,
		stop:   signal.Stop,
		logger: logger,
	}
}

func (r *ConfigReloader) Run(ctx context.Context) error {
	signals := make(chan os.Signal, 1)
	r.notify(signals, syscall.SIGHUP)
	defer r.stop(signals)

	r.logger.Info().Msg("config reloader started, send SIGHUP to reload")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("config reloader stopped")
			return nil
		case sig := <-signals:
			r.reload(sig)
		}
	}
}

func (r *ConfigReloader) reload(sig os.Signal) {
	if err := r.target.Reload(); err != nil {
		r.logger.Error().Err(err).Stringer("signal", sig).Msg("error reloading config, keeping current settings")
		return
	}
	r.logger.Info().Stringer("signal", sig).Msg("config reloaded")
}
