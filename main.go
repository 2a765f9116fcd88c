package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marinelle/pkg/config"
	"marinelle/pkg/handlers"
	"marinelle/pkg/services"

	"github.com/gin-gonic/gin"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// Initialize config
	config.Init()

	addr := flag.String("addr", config.ListenAddr, "listen address")
	backend := flag.String("backend", config.BackendURL, "content backend origin")
	siteFile := flag.String("site", config.SiteFile, "site definition file (yaml, toml or json)")
	lang := flag.String("lang", config.SiteLang, "page language (it, en)")
	flag.Parse()

	_, _ = maxprocs.Set(maxprocs.Logger(log.Printf))

	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	site := services.DefaultSite()
	if *siteFile != "" {
		var err error
		if site, err = services.LoadSite(*siteFile); err != nil {
			log.Fatalf("[WEB]: %v", err)
		}
	}

	if err := run(*addr, handlers.Options{
		Site:       site,
		Lang:       *lang,
		BackendURL: *backend,
		SSL:        config.SSL,
	}); err != nil {
		log.Fatal(err)
	}
}

// run serves until SIGINT/SIGTERM. Cancelling the base context tears down
// every page view that is still waiting for content.
func run(addr string, opts handlers.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handlers.NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[WEB]: %s listening on %s, content from %s", opts.Site.Name, addr, services.ScrapeURL(opts.BackendURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("[WEB]: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

