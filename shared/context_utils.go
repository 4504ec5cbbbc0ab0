// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

type PageInfo struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p PageInfo) ApplyOnDB(db *gorm.DB) *gorm.DB {
	return db.Offset((p.Page - 1) * p.Limit).Limit(p.Limit)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

// Pages is the total page count for the query, ceil(total/limit).
func (p Paged[T]) Pages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	switch {
	case limit > 100:
		limit = 100
	case limit <= 0:
		limit = 20
	}

	return PageInfo{
		Page:  page,
		Limit: limit,
	}
}

type SortQuery struct {
	Field    string
	Operator string // asc or desc
}

// sortable report columns. Everything else falls back to createdAt to keep
// the ORDER BY clause injection free.
var sortableFields = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"generatedAt": "generated_at",
	"executionId": "execution_id",
	"status":      "status",
	"title":       "title",
	"fileSize":    "file_size",
}

func GetSortQuery(ctx Context) SortQuery {
	field, ok := sortableFields[ctx.QueryParam("sortBy")]
	if !ok {
		field = "created_at"
	}

	operator := strings.ToLower(ctx.QueryParam("sortOrder"))
	if operator != "asc" {
		operator = "desc"
	}

	return SortQuery{
		Field:    field,
		Operator: operator,
	}
}

func (s SortQuery) SQL() string {
	return s.Field + " " + s.Operator
}
