package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"git.uuxo.net/uuxo/mime-resolver/internal/config"
	"git.uuxo.net/uuxo/mime-resolver/internal/handlers"
	"git.uuxo.net/uuxo/mime-resolver/internal/logging"
	"git.uuxo.net/uuxo/mime-resolver/internal/metrics"
	"git.uuxo.net/uuxo/mime-resolver/internal/mimeutil"
	"git.uuxo.net/uuxo/mime-resolver/internal/platform"
	"git.uuxo.net/uuxo/mime-resolver/internal/server"
	"git.uuxo.net/uuxo/mime-resolver/internal/workers"
)

var log = logrus.New()

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration file")
	genConfig := flag.Bool("genconfig", false, "write a minimal config.toml and exit")
	validateOnly := flag.Bool("validate", false, "validate the configuration and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *genConfig {
		if err := config.CreateMinimalConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write config.toml: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("config.toml written")
		return
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Printf("mime-resolver %s\n", cfg.Build.Version)
		return
	}

	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	if *validateOnly {
		fmt.Println("configuration OK")
		return
	}

	// One logger for the whole process.
	config.SetLogger(log)
	logging.SetupLogging(cfg, log)
	metrics.SetLogger(log)
	platform.SetLogger(log)
	server.SetLogger(log)
	handlers.SetLogger(log)
	workers.SetLogger(log)

	logging.LogSystemInfo(log, cfg.Build.Version)

	metrics.InitMetrics()
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			metrics.UpdateSystemMetrics()
		}
	}()

	var registry *platform.Registry
	var resolver *mimeutil.Resolver
	if cfg.Platform.Enabled {
		cacheTTL, _ := time.ParseDuration(cfg.Platform.CacheTTL)
		opts := platform.Options{CacheTTL: cacheTTL}
		if cfg.Platform.RedisEnabled {
			opts.RedisAddr = cfg.Platform.RedisAddr
			opts.RedisPassword = cfg.Platform.RedisPassword
			opts.RedisDB = cfg.Platform.RedisDBIndex
		}
		registry = platform.New(opts)
		resolver = mimeutil.NewResolver(registry)
	} else {
		log.Info("Platform registry disabled, resolving from static tables only")
		resolver = mimeutil.NewResolver(nil)
	}

	pool := workers.NewPool(cfg.Workers.NumWorkers, cfg.Workers.PrewarmQueueSize)
	pool.Start()
	if registry != nil && cfg.Server.PreCaching {
		platform.Prewarm(registry, pool, mimeutil.StandardTypes())
	}

	mux := http.NewServeMux()
	handlers.NewAPI(resolver).Register(mux, cfg.Server.CORSOrigins)

	listenAddr := cfg.Server.BindIP + ":" + cfg.Server.ListenAddress
	if cfg.Server.MetricsEnabled {
		if cfg.Server.MetricsPort != "" && cfg.Server.MetricsPort != cfg.Server.ListenAddress {
			metricsMux := http.NewServeMux()
			metricsMux.Handle("/metrics", promhttp.Handler())
			go func() {
				addr := cfg.Server.BindIP + ":" + cfg.Server.MetricsPort
				log.Infof("Metrics listening on %s", addr)
				if err := http.ListenAndServe(addr, metricsMux); err != nil {
					log.Errorf("Metrics server error: %v", err)
				}
			}()
		} else {
			mux.Handle("/metrics", promhttp.Handler())
		}
	}

	if cfg.Server.PIDFilePath != "" {
		if err := logging.WritePIDFile(cfg.Server.PIDFilePath, log); err != nil {
			log.Warnf("Continuing without PID file: %v", err)
		}
	}

	readTimeout, _ := time.ParseDuration(cfg.Timeouts.Read)
	writeTimeout, _ := time.ParseDuration(cfg.Timeouts.Write)
	idleTimeout, _ := time.ParseDuration(cfg.Timeouts.Idle)
	shutdownTimeout, _ := time.ParseDuration(cfg.Timeouts.Shutdown)

	srv := server.New(listenAddr, mux, readTimeout, writeTimeout, idleTimeout)

	_, cancel := context.WithCancel(context.Background())
	server.SetupGracefulShutdown(srv, cancel, shutdownTimeout, func() {
		pool.Stop()
		if cfg.Server.PIDFilePath != "" {
			logging.RemovePIDFile(cfg.Server.PIDFilePath, log)
		}
	})

	server.PrintStartupBanner(cfg.Build.Version, listenAddr)
	if err := server.Start(srv); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
