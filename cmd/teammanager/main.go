package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gbtux/teammanager/internal/cli"
	"github.com/gbtux/teammanager/internal/cli/formatter"
	"github.com/gbtux/teammanager/internal/config"
	"github.com/gbtux/teammanager/internal/db"
	"github.com/gbtux/teammanager/internal/repository"
	"github.com/gbtux/teammanager/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config lives next to the default database: ~/.teammanager/config.yaml
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	featureRepo := repository.NewSQLiteFeatureRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Projects:     service.NewProjectService(projectRepo),
		Features:     service.NewFeatureService(featureRepo),
		Dependencies: service.NewDependencyService(depRepo, uow),
		Gantt:        service.NewGanttService(featureRepo, depRepo, uow, observer),
		Import:       service.NewImportService(uow, observer),
		Timeline:     cfg.Timeline,
	}

	return cli.NewRootCmd(app).Execute()
}
