package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/banshee-data/trackcore/internal/api"
	"github.com/banshee-data/trackcore/internal/component"
	"github.com/banshee-data/trackcore/internal/config"
	"github.com/banshee-data/trackcore/internal/core"
	"github.com/banshee-data/trackcore/internal/fsutil"
	"github.com/banshee-data/trackcore/internal/monitoring"
	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/protocol/pb"
	"github.com/banshee-data/trackcore/internal/shm"
	"github.com/banshee-data/trackcore/internal/source"
	"github.com/banshee-data/trackcore/internal/version"
)

var (
	configPath  = flag.String("config", "", "Path to a YAML or JSON config file")
	listen      = flag.String("listen", "", "Control gRPC listen address (overrides config)")
	httpListen  = flag.String("http-listen", "", "Status HTTP listen address (overrides config)")
	sourceURI   = flag.String("source", "", "Frame source URI (overrides config)")
	targetFPS   = flag.Float64("fps", 0, "Target frames per second (overrides config when > 0)")
	entities    = flag.Int("entities", -1, "Number of identities to track (overrides config when >= 0)")
	devMode     = flag.Bool("dev", false, "Human-readable debug logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

const shutdownTimeout = 5 * time.Second

// overrides are the command-line values that replace file settings.
type overrides struct {
	listen, httpListen, source string
	fps                        float64
	entities                   int
}

func (o overrides) apply(cfg *config.Config) {
	if o.listen != "" {
		cfg.Listen = &o.listen
	}
	if o.httpListen != "" {
		cfg.HTTPListen = &o.httpListen
	}
	if o.source != "" {
		cfg.Source = &o.source
	}
	if o.fps > 0 {
		cfg.TargetFPS = &o.fps
	}
	if o.entities >= 0 {
		cfg.EntityCount = &o.entities
	}
}

func loadConfig(path string, o overrides) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		var err error
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	o.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(version.String())
		return
	}

	initLog := monitoring.InitProduction
	if *devMode {
		initLog = monitoring.InitDevelopment
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := initLog(); err != nil {
		log.Fatalf("failed to initialise logging: %v", err)
	}
	defer monitoring.Sync()

	cfg, err := loadConfig(*configPath, overrides{
		listen:     *listen,
		httpListen: *httpListen,
		source:     *sourceURI,
		fps:        *targetFPS,
		entities:   *entities,
	})
	if err != nil {
		monitoring.L().Fatal("failed to load config", zap.Error(err))
	}

	if err := run(cfg); err != nil {
		monitoring.L().Error("trackcore stopped", zap.Error(err))
		monitoring.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger := monitoring.L()
	logger.Info("starting", zap.String("version", version.String()))

	metrics := monitoring.NewMetrics()
	pool := shm.NewPool()
	defer pool.Close()

	src, err := source.Open(cfg.GetSource(), pool)
	if err != nil {
		return err
	}
	components, err := cfg.GetComponents()
	if err != nil {
		return err
	}
	reg := component.NewRegistry(component.Options{
		Connect: component.ConnectOptions{
			RetryInterval: cfg.GetConnectRetryInterval(),
			Deadline:      cfg.GetConnectDeadline(),
		},
		PortRangeStart: cfg.GetPortRangeStart(),
		Metrics:        metrics,
	})
	orch, err := core.New(core.Options{
		Source:          src,
		SinkFactory:     source.RawFileSinks(fsutil.OSFileSystem{}, cfg.GetRecordingDir()),
		Registry:        reg,
		Components:      components,
		Arena:           cfg.GetArena(),
		TargetFPS:       cfg.GetTargetFPS(),
		Realtime:        cfg.GetRealtime(),
		Entities:        cfg.GetEntityCount(),
		RecordingConfig: cfg.Recording,
		Metrics:         metrics,
		Logger:          logger,
	})
	if err != nil {
		_ = src.Close()
		return err
	}

	lis, err := net.Listen("tcp", cfg.GetListen())
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("failed to listen on %s: %w", cfg.GetListen(), err)
	}
	grpcServer := grpc.NewServer()
	pb.RegisterControlServer(grpcServer, core.NewService(orch))

	httpServer := &http.Server{
		Addr:              cfg.GetHTTPListen(),
		Handler:           api.NewServer(orch, metrics).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	var wg sync.WaitGroup
	var runErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = orch.Run(runCtx)
		logger.Info("orchestrator routine stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("control service listening", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("control service failed", zap.Error(err))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
		}
	}()

	if cfg.Seek != nil {
		seekCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		if err := orch.Command(seekCtx, protocol.SeekCommand(*cfg.Seek)); err != nil {
			logger.Warn("initial seek failed", zap.Uint32("frame", *cfg.Seek), zap.Error(err))
		}
		cancel()
	}

	select {
	case <-ctx.Done():
		logger.Info("signal received, shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*shutdownTimeout)
		if err := orch.Command(shutdownCtx, protocol.ShutdownCommand()); err != nil {
			logger.Warn("shutdown command failed, cancelling", zap.Error(err))
			cancelRun()
		}
		cancel()
	case <-orch.Done():
	}

	grpcServer.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown error", zap.Error(err))
		_ = httpServer.Close()
	}

	wg.Wait()
	logger.Info("graceful shutdown complete")
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
