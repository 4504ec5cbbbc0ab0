// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/reportguard/reportguard/controllers"
	"github.com/reportguard/reportguard/database"
	"github.com/reportguard/reportguard/database/repositories"
	"github.com/reportguard/reportguard/echohttp"
	"github.com/reportguard/reportguard/pdf"
	"github.com/reportguard/reportguard/router"
	"github.com/reportguard/reportguard/services"
	"github.com/reportguard/reportguard/shared"
	"github.com/reportguard/reportguard/storage"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error()) // print detailed error message to stdout
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	artifacts, err := storage.NewDiskStore(shared.GetEnv("REPORTS_DIR", "./reports"))
	if err != nil {
		slog.Error("failed to initialize reports directory", "error", err)
		panic(errors.New("failed to initialize reports directory"))
	}

	renderTimeout := services.DefaultRenderTimeout
	if raw := os.Getenv("RENDER_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			slog.Warn("invalid RENDER_TIMEOUT, using default", "value", raw, "default", renderTimeout)
		} else {
			renderTimeout = parsed
		}
	}

	reportRepository := repositories.NewReportRepository(db)
	reportService := services.NewReportService(reportRepository, pdf.NewRenderer(), artifacts, renderTimeout)
	reportController := controllers.NewReportController(reportService, artifacts)

	server := echohttp.Server()
	// generated artifacts are additionally exposed read-only under /reports
	server.Static("/reports", artifacts.Dir())

	apiV1 := router.NewAPIV1Router(server)
	router.NewReportRouter(apiV1, reportController)

	port := shared.GetEnv("PORT", "8080")
	slog.Info("starting server", "port", port, "reportsDir", artifacts.Dir())
	if err := server.Start(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
