package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/haresh143heri/Ebasket-Return-App/internal/config"
	"github.com/haresh143heri/Ebasket-Return-App/internal/server"
)

var (
	port    = flag.Int("port", 0, "listen port (overrides config.toml)")
	devMode = flag.Bool("dev", false, "dev mode: text logs, gin debug")
	dataDir = flag.String("dataDir", "", "data directory (overrides config.toml)")
	backend = flag.String("backend", "", "storage backend: sqlite or memory")
)

func main() {
	flag.Parse()

	// .env carries the admin credentials in local setups; absence is fine.
	_ = godotenv.Load()

	log := config.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Warnf("config load failed, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *backend != "" {
		cfg.Data.Backend = *backend
	}
	config.ApplyLogSettings(cfg)

	srv, err := server.NewServer(cfg, log)
	if err != nil {
		log.Fatalf("server init failed: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Infof("listening on %s", addr)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := srv.Close(); err != nil {
		log.Errorf("close store: %v", err)
	}
}
