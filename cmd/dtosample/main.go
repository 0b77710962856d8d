package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spec-kit/department-dto/internal/cli"
	"github.com/spec-kit/department-dto/internal/config"
	"github.com/spec-kit/department-dto/internal/observability"
	"github.com/spec-kit/department-dto/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries command results only.
	cfg.Logger.Output = "stderr"
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	departments := service.NewDepartmentService(service.DepartmentDependencies{Logger: logger})
	err = cli.NewRootCommand(departments).ExecuteContext(context.Background())
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
