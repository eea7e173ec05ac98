// Package server exposes the query pipeline over HTTP: a search form, a
// results page that polls until the background task finishes, and a small
// status API. Answers come back as constrained markup and are converted to
// HTML here, at the display boundary.
package server

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cinequery/cinequery/internal/markup"
)

// Answerer runs one query end to end and returns the markup answer.
type Answerer interface {
	Answer(ctx context.Context, query string, includePeople bool) (string, error)
}

const (
	shutdownTimeout = 10 * time.Second
	janitorInterval = time.Hour
)

// Server wires the echo router, the task store, and the answer pipeline.
type Server struct {
	echo   *echo.Echo
	engine Answerer
	tasks  *taskStore
	logger *slog.Logger
}

// New builds a Server around the given pipeline. A nil logger discards
// everything.
func New(engine Answerer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = newRenderer()
	e.Use(middleware.Recover())

	s := &Server{
		echo:   e,
		engine: engine,
		tasks:  newTaskStore(),
		logger: logger,
	}

	e.GET("/", s.index)
	e.POST("/search", s.search)
	e.GET("/results/:id", s.results)
	e.GET("/api/status/:id", s.status)

	return s
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	go s.tasks.janitor(ctx, janitorInterval, func(count int) {
		s.logger.Info("pruned expired tasks", "count", count)
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()

	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")

	return s.echo.Shutdown(shutdownCtx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) index(c echo.Context) error {
	return c.Render(http.StatusOK, "index", indexData{Examples: exampleQueries})
}

func (s *Server) search(c echo.Context) error {
	query := c.FormValue("query")
	includePeople := c.FormValue("include_people") != ""

	if query == "" {
		return c.Render(http.StatusBadRequest, "index", indexData{
			Examples: exampleQueries,
			Error:    "Type a question first.",
		})
	}

	task := s.tasks.create(query)

	s.logger.Info("search started", "task", task.ID, "query", query, "include_people", includePeople)

	go s.run(task.ID, query, includePeople)

	return c.Redirect(http.StatusSeeOther, "/results/"+task.ID)
}

// run executes the pipeline for one task. It deliberately does not use the
// request context: the task outlives the redirect response.
func (s *Server) run(taskID, query string, includePeople bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	answer, err := s.engine.Answer(ctx, query, includePeople)
	if err != nil {
		s.logger.Error("search failed", "task", taskID, "error", err)
		s.tasks.fail(taskID, "Something went wrong answering that. Try again in a moment.")
		return
	}

	s.tasks.complete(taskID, answer)
	s.logger.Info("search completed", "task", taskID)
}

func (s *Server) results(c echo.Context) error {
	task, ok := s.tasks.get(c.Param("id"))
	if !ok {
		return c.Render(http.StatusNotFound, "index", indexData{
			Examples: exampleQueries,
			Error:    "That result has expired. Run the search again.",
		})
	}

	data := resultsData{Task: task}
	if task.Status == StatusCompleted {
		data.HTML = template.HTML(markup.Render(task.Result)) //nolint:gosec // answers come from the in-repo pipeline
	}

	return c.Render(http.StatusOK, "results", data)
}

func (s *Server) status(c echo.Context) error {
	task, ok := s.tasks.get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, statusResponse{Status: "not_found"})
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status: string(task.Status),
		Query:  task.Query,
	})
}
