// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/runoshun/issue-drafter/internal/infra/config"
	"github.com/runoshun/issue-drafter/internal/infra/gemini"
	"github.com/runoshun/issue-drafter/internal/infra/gitremote"
	"github.com/runoshun/issue-drafter/internal/infra/jsonstore"
	"github.com/runoshun/issue-drafter/internal/infra/logging"
	"github.com/runoshun/issue-drafter/internal/infra/markdown"
	"github.com/runoshun/issue-drafter/internal/usecase"
	"github.com/runoshun/issue-drafter/internal/web"
	"go.uber.org/zap"
)

// Options holds the command-line overrides applied on top of the
// configuration files.
type Options struct {
	Stderr     io.Writer // Log output; defaults to os.Stderr
	ConfigPath string    // Project config file; defaults to ./drafter.toml
	DataDir    string    // Overrides [store] dir
	LogLevel   string    // Overrides [log] level
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Issues       domain.IssueRepository
	Repositories domain.RepositoryRegistry
	Completer    domain.Completer
	Remotes      domain.RemoteReader
	IDs          domain.IDGenerator
	Clock        domain.Clock

	// Pointer fields
	ConfigLoader  *config.Loader
	ConfigManager *config.Manager
	Renderer      *markdown.Renderer
	Logger        *zap.Logger
	Config        *domain.Config

	closeLog func() error
}

// Open loads configuration and builds every dependency in place.
// Calling Open on an already opened container is a no-op.
func (c *Container) Open(ctx context.Context, opts Options) error {
	if c.Opened() {
		return nil
	}

	projectPath := opts.ConfigPath
	if projectPath == "" {
		projectPath = domain.ProjectConfigFileName
	}
	loader := config.NewLoader(projectPath)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DataDir != "" {
		cfg.Store.Dir = opts.DataDir
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(opts.LogLevel)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Stderr: opts.Stderr,
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		_ = closeLog()
		return err
	}

	c.ConfigLoader = loader
	c.ConfigManager = config.NewManager(loader)
	c.Config = cfg
	c.Logger = logger
	c.closeLog = closeLog
	c.Issues = jsonstore.NewIssueStore(cfg.IssuesPath(), logger)
	c.Repositories = jsonstore.NewRepoStore(cfg.RepositoriesPath(), logger)
	c.Completer = completer
	c.Remotes = gitremote.NewReader()
	c.IDs = domain.UUIDGenerator{}
	c.Clock = domain.RealClock{}
	c.Renderer = markdown.NewRenderer()

	logger.Debug("container opened",
		zap.String("data_dir", cfg.Store.Dir),
		zap.String("model", cfg.Generation.Model),
		zap.Bool("completer_configured", cfg.Generation.APIKey != ""))
	return nil
}

// newCompleter builds the Gemini client. Without an API key the returned
// completer fails every call with ErrNoAPIKey, so commands that never
// generate keep working.
func newCompleter(ctx context.Context, cfg *domain.Config) (domain.Completer, error) {
	client, err := gemini.New(ctx, gemini.Config{
		APIKey:  cfg.Generation.APIKey,
		Model:   cfg.Generation.Model,
		Timeout: cfg.Generation.Timeout,
	})
	if errors.Is(err, domain.ErrNoAPIKey) {
		return unavailableCompleter{err: err}, nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

type unavailableCompleter struct {
	err error
}

func (u unavailableCompleter) Complete(context.Context, string) (string, error) {
	return "", u.err
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, issues domain.IssueRepository, repos domain.RepositoryRegistry, completer domain.Completer, remotes domain.RemoteReader, ids domain.IDGenerator, clock domain.Clock, logger *zap.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Container{
		Issues:       issues,
		Repositories: repos,
		Completer:    completer,
		Remotes:      remotes,
		IDs:          ids,
		Clock:        clock,
		Renderer:     markdown.NewRenderer(),
		Logger:       logger,
		Config:       cfg,
	}
}

// Opened reports whether the ports are bound.
func (c *Container) Opened() bool {
	return c != nil && c.Issues != nil
}

// Close flushes the logger and closes the log file.
func (c *Container) Close() error {
	if c == nil || c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// UseCase factory methods

// GenerateIssueUseCase returns a new GenerateIssue use case.
func (c *Container) GenerateIssueUseCase() *usecase.GenerateIssue {
	return usecase.NewGenerateIssue(c.Issues, c.Completer, c.IDs, c.Clock, c.Logger, c.Config.Generation.Language)
}

// ShowIssueUseCase returns a new ShowIssue use case.
func (c *Container) ShowIssueUseCase() *usecase.ShowIssue {
	return usecase.NewShowIssue(c.Issues)
}

// ListIssuesUseCase returns a new ListIssues use case.
func (c *Container) ListIssuesUseCase() *usecase.ListIssues {
	return usecase.NewListIssues(c.Issues)
}

// AddRepositoryUseCase returns a new AddRepository use case.
func (c *Container) AddRepositoryUseCase() *usecase.AddRepository {
	return usecase.NewAddRepository(c.Repositories, c.IDs, c.Clock)
}

// ListRepositoriesUseCase returns a new ListRepositories use case.
func (c *Container) ListRepositoriesUseCase() *usecase.ListRepositories {
	return usecase.NewListRepositories(c.Repositories)
}

// DeleteRepositoryUseCase returns a new DeleteRepository use case.
func (c *Container) DeleteRepositoryUseCase() *usecase.DeleteRepository {
	return usecase.NewDeleteRepository(c.Repositories)
}

// ImportRepositoryUseCase returns a new ImportRepository use case.
func (c *Container) ImportRepositoryUseCase() *usecase.ImportRepository {
	return usecase.NewImportRepository(c.Remotes, c.AddRepositoryUseCase())
}

// WebServer returns the HTTP server wired to this container's use cases.
func (c *Container) WebServer() (*web.Server, error) {
	return web.New(web.Deps{
		GenerateIssue:    c.GenerateIssueUseCase(),
		ShowIssue:        c.ShowIssueUseCase(),
		ListIssues:       c.ListIssuesUseCase(),
		AddRepository:    c.AddRepositoryUseCase(),
		ListRepositories: c.ListRepositoriesUseCase(),
		DeleteRepository: c.DeleteRepositoryUseCase(),
		Renderer:         c.Renderer,
		Logger:           c.Logger.Named("http"),
	})
}
