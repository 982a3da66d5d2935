// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moov-io/base/admin"
	"github.com/moov-io/csb34/internal/version"
	"github.com/moov-io/csb34/pkg/audittrail"
	"github.com/moov-io/csb34/pkg/config"
	"github.com/moov-io/csb34/pkg/orders"
	"github.com/moov-io/csb34/pkg/util"
	"github.com/moov-io/csb34/x/route"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"
)

var (
	flagConfigFile = flag.String("config", "", "Filepath for config file to load")
)

func main() {
	flag.Parse()

	cfg := readConfig(util.Or(os.Getenv("CONFIG_FILE"), *flagConfigFile))
	cfg.Logger.Log("startup", fmt.Sprintf("Starting csb34 server version %s", version.Version))

	// Listen for application termination.
	errs := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	adminServer := setupAdmin(cfg, errs)
	defer adminServer.Shutdown()

	auditTrail, err := audittrail.NewStorage(cfg.AuditTrail, cfg.Output)
	if err != nil {
		panic(fmt.Sprintf("ERROR: creating audit trail: %v", err))
	}
	defer auditTrail.Close()

	generator, err := orders.NewGenerator(cfg, auditTrail)
	if err != nil {
		panic(fmt.Sprintf("ERROR: creating file generator: %v", err))
	}

	// Create HTTP handler
	handler := mux.NewRouter()
	route.PingRoute(cfg.Logger, handler)
	orders.NewRouter(cfg.Logger, generator).RegisterRoutes(handler)

	serve := setupServer(cfg, handler, errs)
	defer shutdownServer(cfg.Logger, serve)

	if err := <-errs; err != nil {
		cfg.Logger.Log("exit", err)
	}
}

func readConfig(path string) *config.Config {
	cfg, err := config.FromFile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
		cfg = config.SetupLogger(cfg)
	}
	if util.Yes(os.Getenv("LOG_DISABLED")) {
		cfg.Logger = log.NewNopLogger()
	}
	return cfg
}

func setupAdmin(cfg *config.Config, errs chan error) *admin.Server {
	// Spin up admin HTTP server and optionally override admin.bind_address
	addr := util.Or(os.Getenv("HTTP_ADMIN_BIND_ADDRESS"), cfg.Admin.BindAddress)
	adminServer := admin.NewServer(addr)
	adminServer.AddVersionHandler(version.Version) // Setup 'GET /version'
	go func() {
		cfg.Logger.Log("admin", fmt.Sprintf("listening on %s", adminServer.BindAddr()))
		if err := adminServer.Listen(); err != nil {
			err = fmt.Errorf("problem starting admin http: %v", err)
			cfg.Logger.Log("admin", err)
			errs <- err
		}
	}()
	return adminServer
}

func setupServer(cfg *config.Config, handler http.Handler, errs chan error) *http.Server {
	serve := &http.Server{
		Addr:    util.Or(os.Getenv("HTTP_BIND_ADDRESS"), cfg.HTTP.BindAddress),
		Handler: handler,

		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		cfg.Logger.Log("http", fmt.Sprintf("listening on %s", serve.Addr))
		if err := serve.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			err = fmt.Errorf("problem starting http: %v", err)
			cfg.Logger.Log("http", err)
			errs <- err
		}
	}()
	return serve
}

func shutdownServer(logger log.Logger, serve *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := serve.Shutdown(ctx); err != nil {
		logger.Log("shutdown", err)
	}
}
