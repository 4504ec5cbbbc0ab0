// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/reportguard/reportguard/database/models"
	"github.com/reportguard/reportguard/dtos"
	"github.com/reportguard/reportguard/services"
	"github.com/reportguard/reportguard/shared"
	"github.com/reportguard/reportguard/utils"
	"gorm.io/gorm"
)

type ReportController struct {
	reportService shared.ReportService
	artifacts     shared.ArtifactStore
}

func NewReportController(reportService shared.ReportService, artifacts shared.ArtifactStore) *ReportController {
	return &ReportController{
		reportService: reportService,
		artifacts:     artifacts,
	}
}

func (c *ReportController) Generate(ctx shared.Context) error {
	var req dtos.GenerateReportRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to parse request body").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	report, err := c.reportService.GenerateReport(ctx.Request().Context(), req.ExecutionID, req.Title, req.Findings)
	if err != nil {
		if errors.Is(err, services.ErrMissingExecutionID) || errors.Is(err, services.ErrNoFindings) {
			return echo.NewHTTPError(400, err.Error())
		}
		var genErr *services.GenerationError
		if errors.As(err, &genErr) {
			return echo.NewHTTPError(500, echo.Map{
				"error":    genErr.Name,
				"message":  genErr.Err.Error(),
				"reportId": genErr.ReportID,
			}).WithInternal(err)
		}
		return err
	}

	return ctx.JSON(200, dtos.GenerateReportResponseFromModel(report))
}

func (c *ReportController) Read(ctx shared.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid report id").WithInternal(err)
	}

	report, err := c.reportService.GetReport(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "report not found")
		}
		return err
	}

	return ctx.JSON(200, dtos.ReportResponse{
		Envelope: dtos.NewEnvelope(),
		Report:   dtos.ReportDTOFromModel(report),
	})
}

func (c *ReportController) ReadByExecutionID(ctx shared.Context) error {
	executionID := ctx.Param("executionId")
	if executionID == "" {
		return echo.NewHTTPError(400, "execution id is required")
	}

	report, err := c.reportService.GetReportByExecutionID(executionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "report not found")
		}
		return err
	}

	return ctx.JSON(200, dtos.ReportResponse{
		Envelope: dtos.NewEnvelope(),
		Report:   dtos.ReportDTOFromModel(report),
	})
}

func (c *ReportController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx)
	sort := shared.GetSortQuery(ctx)

	var status *models.ReportStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, ok := models.ParseReportStatus(raw)
		if !ok {
			return echo.NewHTTPError(400, fmt.Sprintf("unknown report status: %s", raw))
		}
		status = &parsed
	}

	paged, err := c.reportService.ListReports(pageInfo, status, sort)
	if err != nil {
		return err
	}

	return ctx.JSON(200, dtos.ReportListResponse{
		Envelope: dtos.NewEnvelope(),
		Data:     utils.Map(paged.Data, dtos.ReportDTOFromModel),
		Pagination: dtos.Pagination{
			Page:  paged.Page,
			Limit: paged.Limit,
			Total: paged.Total,
			Pages: paged.Pages(),
		},
	})
}

func (c *ReportController) Download(ctx shared.Context) error {
	return c.serveArtifact(ctx, true)
}

func (c *ReportController) View(ctx shared.Context) error {
	return c.serveArtifact(ctx, false)
}

func (c *ReportController) serveArtifact(ctx shared.Context, attachment bool) error {
	name := ctx.Param("filename")
	path, err := c.artifacts.Path(name)
	if err != nil {
		return echo.NewHTTPError(400, "invalid file name").WithInternal(err)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(404, "report file not found")
		}
		return err
	}

	if attachment {
		return ctx.Attachment(path, name)
	}
	return ctx.Inline(path, name)
}

func (c *ReportController) Delete(ctx shared.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid report id").WithInternal(err)
	}

	deletedFile, err := c.reportService.DeleteReport(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "report not found")
		}
		return err
	}

	return ctx.JSON(200, dtos.DeleteReportResponse{
		Envelope:    dtos.NewEnvelope(),
		Message:     "report deleted",
		DeletedFile: deletedFile,
	})
}

func (c *ReportController) Health(ctx shared.Context) error {
	if err := c.reportService.Health(ctx.Request().Context()); err != nil {
		return echo.NewHTTPError(500, "database unreachable").WithInternal(err)
	}

	return ctx.JSON(200, dtos.HealthResponse{
		Envelope: dtos.NewEnvelope(),
		Database: "connected",
	})
}
