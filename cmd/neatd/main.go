// neatd is a demo server exposing a hello resource through a Dispatch.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/whilp/neat/dispatch"
	"github.com/whilp/neat/middleware"
	"github.com/whilp/neat/request"
	"github.com/whilp/neat/resource"
	"github.com/whilp/neat/response"
)

func hello() *resource.Resource {
	r := resource.New("hello", resource.WithMimetypes(map[string]string{
		"application/json": "json",
	}))

	r.Handle("list", func(req *request.Request) response.Response {
		return response.NewTextResponse("hello")
	})

	r.Handle("retrieve", func(req *request.Request) response.Response {
		return response.NewTextResponse("Hello, " + req.PopSegment())
	})

	r.Handle("retrieve_json", func(req *request.Request) response.Response {
		resp, err := response.NewJSONResponse(map[string]string{
			"message": "Hello, " + req.PopSegment(),
		})
		if err != nil {
			return response.NewErrorResponse(response.StatusInternalServerError)
		}
		return resp
	})

	return r
}

func main() {
	configPath := flag.String("config", "neatd.toml", "path to the config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	setupLogging(cfg.Logging)

	d, err := dispatch.New(hello())
	if err != nil {
		log.Fatalf("failed to build dispatch: %v", err)
	}
	d.Use(middleware.Recovery, middleware.RequestID, middleware.Logging)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	c.Log = log.StandardLogger()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      c.Handler(d),
		ReadTimeout:  cfg.ReadTimeoutDuration(),
		WriteTimeout: cfg.WriteTimeoutDuration(),
	}

	go func() {
		log.Infof("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
