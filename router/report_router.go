// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/reportguard/reportguard/controllers"
)

type ReportRouter struct {
	*echo.Group
}

func NewReportRouter(apiV1 APIV1Router, reportController *controllers.ReportController) ReportRouter {
	reportRouter := apiV1.Group.Group("/reports")

	reportRouter.POST("/generate", reportController.Generate)
	reportRouter.GET("", reportController.List)
	reportRouter.GET("/health", reportController.Health)
	reportRouter.GET("/execution/:executionId", reportController.ReadByExecutionID)
	reportRouter.GET("/download/:filename", reportController.Download)
	reportRouter.GET("/view/:filename", reportController.View)
	reportRouter.GET("/:id", reportController.Read)
	reportRouter.DELETE("/:id", reportController.Delete)

	return ReportRouter{Group: reportRouter}
}
