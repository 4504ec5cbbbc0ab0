// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func queryContext(target string) Context {
	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetPageInfo(t *testing.T) {
	t.Run("should default to the first page of twenty", func(t *testing.T) {
		assert.Equal(t, PageInfo{Page: 1, Limit: 20}, GetPageInfo(queryContext("/reports")))
	})

	t.Run("should parse explicit values", func(t *testing.T) {
		assert.Equal(t, PageInfo{Page: 3, Limit: 50}, GetPageInfo(queryContext("/reports?page=3&limit=50")))
	})

	t.Run("should cap the limit at one hundred", func(t *testing.T) {
		assert.Equal(t, PageInfo{Page: 1, Limit: 100}, GetPageInfo(queryContext("/reports?limit=5000")))
	})

	t.Run("should ignore garbage and negative values", func(t *testing.T) {
		assert.Equal(t, PageInfo{Page: 1, Limit: 20}, GetPageInfo(queryContext("/reports?page=abc&limit=-5")))
	})
}

func TestPages(t *testing.T) {
	assert.Equal(t, 3, Paged[int]{PageInfo: PageInfo{Limit: 5}, Total: 12}.Pages())
	assert.Equal(t, 1, Paged[int]{PageInfo: PageInfo{Limit: 20}, Total: 20}.Pages())
	assert.Equal(t, 0, Paged[int]{PageInfo: PageInfo{Limit: 20}, Total: 0}.Pages())
	assert.Equal(t, 0, Paged[int]{Total: 10}.Pages())
}

func TestGetSortQuery(t *testing.T) {
	t.Run("should default to newest first", func(t *testing.T) {
		assert.Equal(t, SortQuery{Field: "created_at", Operator: "desc"}, GetSortQuery(queryContext("/reports")))
	})

	t.Run("should map exposed field names to columns", func(t *testing.T) {
		sort := GetSortQuery(queryContext("/reports?sortBy=executionId&sortOrder=asc"))
		assert.Equal(t, SortQuery{Field: "execution_id", Operator: "asc"}, sort)
		assert.Equal(t, "execution_id asc", sort.SQL())
	})

	t.Run("should fall back on unknown fields and operators", func(t *testing.T) {
		sort := GetSortQuery(queryContext("/reports?sortBy=password;drop&sortOrder=sideways"))
		assert.Equal(t, SortQuery{Field: "created_at", Operator: "desc"}, sort)
	})
}
