// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dtos

import "github.com/tugascript/devlogs/appsearch/internal/utils"

type SearchResultDTO struct {
	Query      string
	Offset     int
	Columns    []string
	Apps       []AppDTO
	Pagination PaginationDTO
}

func (r *SearchResultDTO) HasResult() bool {
	return len(r.Apps) > 0
}

// NewSearchResultDTO labels the columns of the first app. Every row of a
// single query shares the same columns.
func NewSearchResultDTO(query string, offset int, apps []AppDTO, pagination PaginationDTO) SearchResultDTO {
	var columns []string
	if len(apps) > 0 {
		columns = utils.MapSlice(apps[0].Columns(), func(c *string) string {
			return utils.ColumnLabel(*c)
		})
	}

	return SearchResultDTO{
		Query:      query,
		Offset:     offset,
		Columns:    columns,
		Apps:       apps,
		Pagination: pagination,
	}
}
