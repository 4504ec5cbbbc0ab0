// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(server *echo.Echo) APIV1Router {
	return APIV1Router{Group: server.Group("/api/v1")}
}
