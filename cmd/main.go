package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sensor_bridge/internal/config"
	"sensor_bridge/internal/handlers"
	"sensor_bridge/internal/logger"
	"sensor_bridge/internal/metrics"
	"sensor_bridge/internal/repository"
	"sensor_bridge/internal/serialport"
	"sensor_bridge/internal/server"
	"sensor_bridge/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config file (default: configs/config.yml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level)

	// wire dependencies
	repos := repository.NewRepository()
	promMetrics := metrics.NewPromMetrics()
	services := service.NewService(repos, promMetrics, log)
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		CORSOrigins: cfg.HTTP.CORSOrigins,
		WSInterval:  cfg.WS.DefaultInterval,
		Metrics:     promMetrics.Handler(),
	})

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := startIngest(ctx, cfg.Serial, services, log)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, source, log)
}

// startIngest connects the ingestor to its byte source and returns the
// source so it can be closed on shutdown. When the device cannot be opened
// the failure is logged once and nil is returned; the HTTP side keeps
// serving the all-null reading. There is no retry.
func startIngest(ctx context.Context, cfg config.SerialConfig, services *service.Service, log *logger.Logger) io.Closer {
	if cfg.Simulate {
		pr, pw := io.Pipe()
		go services.Simulator.Run(ctx, cfg.SimulateTick, pw)
		go consume(ctx, services.Ingestor, pr, "simulator", log)
		log.Infow("serial_simulated", "tick", cfg.SimulateTick)
		return pr
	}

	port, err := serialport.Open(cfg.Port, serialport.PortOptions{
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   cfg.Parity,
	})
	if err != nil {
		log.Errorw("serial_open_failed", "port", cfg.Port, "err", err)
		return nil
	}
	log.Infow("serial_connected", "port", cfg.Port, "baud_rate", cfg.BaudRate)

	go consume(ctx, services.Ingestor, port, cfg.Port, log)
	return port
}

// consume runs the ingestor until its source ends and reports why it ended.
func consume(ctx context.Context, ing service.Ingestor, src io.Reader, name string, log *logger.Logger) {
	err := ing.Consume(ctx, src)
	switch {
	case errors.Is(err, context.Canceled):
		return
	case err != nil:
		log.Errorw("serial_read_failed", "source", name, "err", err)
	default:
		log.Warnw("serial_stream_ended", "source", name)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, source io.Closer, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines; closing the source unblocks a pending read
	cancel()
	if source != nil {
		if err := source.Close(); err != nil {
			log.Warnw("serial_close_failed", "err", err)
		}
	}

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
