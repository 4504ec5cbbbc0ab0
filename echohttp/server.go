// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package echohttp

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func registerMiddlewares(e *echo.Echo) {
	e.Use(middleware.CORS())
	e.Use(logger())
	e.Use(recovermiddleware())

	e.HTTPErrorHandler = errorHandler(e)
}

// errorHandler renders every error as the stable JSON envelope
// {success:false, error, message, timestamp}. Doing the logging straight
// inside the error handler keeps controller methods clean.
func errorHandler(e *echo.Echo) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		slog.Error(err.Error())

		if c.Response().Committed {
			return
		}

		he, ok := err.(*echo.HTTPError)
		if ok {
			if he.Internal != nil {
				if herr, ok := he.Internal.(*echo.HTTPError); ok {
					he = herr
				}
			}
		} else {
			he = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
			}
		}

		payload := echo.Map{
			"success":   false,
			"error":     http.StatusText(he.Code),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		switch m := he.Message.(type) {
		case string:
			payload["message"] = m
			if e.Debug {
				payload["detail"] = err.Error()
			}
		case echo.Map:
			for k, v := range m {
				payload[k] = v
			}
		case error:
			payload["message"] = m.Error()
		}

		if c.Request().Method == http.MethodHead { // Issue #608
			c.NoContent(he.Code) // nolint: errcheck
			return
		}
		c.JSON(he.Code, payload) // nolint: errcheck
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}
