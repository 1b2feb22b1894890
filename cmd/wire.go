package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	credfile "github.com/bnema/todo-tasks-cli/internal/adapters/credentials/file"
	"github.com/bnema/todo-tasks-cli/internal/adapters/gateway/todoapi"
	tasklistrender "github.com/bnema/todo-tasks-cli/internal/adapters/render/tasklist"
	tomlrepo "github.com/bnema/todo-tasks-cli/internal/adapters/repo/toml"
	"github.com/bnema/todo-tasks-cli/internal/application"
	"github.com/bnema/todo-tasks-cli/internal/config"
	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/spf13/viper"
)

type app struct {
	config      config.Config
	session     *application.SessionService
	tasks       *application.TaskService
	gateway     *todoapi.Client
	renderTasks func([]domain.Task, tasklistrender.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	credentials := credfile.NewStore(cfg.CredentialsPath)

	gateway := &todoapi.Client{
		BaseURL:     cfg.APIBaseURL,
		APIKey:      cfg.APIKey,
		HTTPClient:  http.DefaultClient,
		Credentials: credentials,
		Logger:      logger,
	}

	repo, err := tomlrepo.NewRepository(cfg.TasksPath)
	if err != nil {
		return nil, fmt.Errorf("wire task repository: %w", err)
	}

	return &app{
		config:      cfg,
		session:     application.NewSessionService(credentials, logger),
		tasks:       application.NewTaskService(repo, gateway, logger),
		gateway:     gateway,
		renderTasks: tasklistrender.Render,
	}, nil
}
