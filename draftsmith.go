// Package draftsmith is a web-triggered blog drafting pipeline: submit a
// topic and images, pull curated context from Airtable, have Gemini propose
// titles, pick one, have Gemini draft HTML content around the uploaded
// images, and publish the result as a WordPress draft.
//
// All external collaborators are injected as explicit clients (no package
// globals) so handlers can run against fakes in tests.
package draftsmith

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// App wires config, injected clients, middleware, and routes together.
type App struct {
	Config    Config
	Echo      *echo.Echo
	Log       zerolog.Logger
	Records   *Aggregator
	Generator TextGenerator
	CMS       CMSClient

	publisher *Publisher
	processor *BodyProcessor
}

// New creates a draftsmith App from its configuration and collaborators.
func New(cfg Config, log zerolog.Logger, records *Aggregator, gen TextGenerator, cms CMSClient) *App {
	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Log:       log,
		Records:   records,
		Generator: gen,
		CMS:       cms,
		publisher: NewPublisher(cms),
		processor: NewBodyProcessor(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupRoutes() {
	e := a.Echo
	e.GET("/", a.handleForm)
	e.POST("/generate", a.handleGenerate)
	e.POST("/finalize", a.handleFinalize)
}

// Start runs the HTTP server until it is shut down.
func (a *App) Start() error {
	a.Log.Info().Str("addr", a.Config.Addr).Msg("listening")
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
