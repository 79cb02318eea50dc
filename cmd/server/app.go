package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"

	"github.com/callegarimattia/battleship/internal/api"
	"github.com/callegarimattia/battleship/internal/dto"
	"github.com/callegarimattia/battleship/internal/env"
	"github.com/callegarimattia/battleship/internal/session"
	"github.com/callegarimattia/battleship/internal/storage"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Application wires together storage, the session manager, and the Echo
// router into a runnable local practice judge, mirroring the teacher's
// convention of a single top-level struct that owns Setup and Run.
type Application struct {
	E       *echo.Echo
	cfg     *env.Config
	manager *session.Manager
}

// Setup builds the Echo instance and registers every route. It is
// exported separately from Run so tests can exercise the router with
// httptest without binding a real port.
func (a *Application) Setup() {
	cfg, err := env.LoadServerConfig()
	if err != nil {
		log.Fatalf("loading server config: %v", err)
	}
	a.cfg = cfg

	store := a.buildStore(cfg)
	maps := a.buildMapLoader(cfg)

	seed := cfg.RNGSeed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	a.manager = session.NewManager(store, rng, maps)

	e := echo.New()
	e.HTTPErrorHandler = jsonErrorHandler
	e.Use(echoMiddleware.Recover())

	handler := api.NewEchoHandler(a.manager, rand.New(rand.NewSource(seed+1)), cfg.JWTSecret)

	// /token mints a session for a caller setting up against this
	// practice server; it issues identity, so it can't itself require one.
	e.Any("/token", handler.IssueToken)

	// Routes accept any HTTP method so that RequireGET can surface a 400
	// for non-GET requests per SPEC_FULL.md §8, instead of Echo's router
	// rejecting the wrong verb with its own default 405 before our
	// middleware ever runs.
	g := e.Group("", api.RequireGET, api.RequireToken)
	g.Any("/fire", handler.Status)
	g.Any("/fire/:row/:column", handler.Fire)
	g.Any("/fire/:row/:column/avenger/:avenger", handler.FireAvenger)
	g.Any("/reset", handler.Reset)

	a.E = e
}

// Run starts listening on cfg.Port, calling Setup first if needed.
func (a *Application) Run() error {
	if a.E == nil {
		a.Setup()
	}
	return a.E.Start(":" + a.cfg.Port)
}

func (a *Application) buildStore(cfg *env.Config) storage.Store {
	if cfg.StorageBackend != "mongo" {
		return storage.NewMemory()
	}

	mongoStore, err := storage.NewMongo(context.Background(), cfg.MongoURI, cfg.MongoDatabase, "battleship")
	if err != nil {
		log.Printf("mongo storage unavailable (%v), falling back to memory", err)
		return storage.NewMemory()
	}
	return mongoStore
}

func (a *Application) buildMapLoader(cfg *env.Config) *session.MapLoader {
	if cfg.ReferenceMapsDir == "" {
		return nil
	}

	loader, err := session.NewMapLoader(os.DirFS(cfg.ReferenceMapsDir))
	if err != nil || loader.Len() == 0 {
		return nil
	}
	return loader
}

// jsonErrorHandler renders every non-2xx response as
// {"error": "<message>"}, per SPEC_FULL.md §8's error taxonomy — Echo's
// default handler uses a "message" field instead.
func jsonErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := err.Error()

	var he *echo.HTTPError
	if asHTTPError(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if !c.Response().Committed {
		if writeErr := c.JSON(code, dto.ErrorResponse{Error: message}); writeErr != nil {
			log.Printf("writing error response: %v", writeErr)
		}
	}
}

func asHTTPError(err error, target **echo.HTTPError) bool {
	he, ok := err.(*echo.HTTPError)
	if ok {
		*target = he
	}
	return ok
}
