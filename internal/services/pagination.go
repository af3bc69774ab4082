// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import "github.com/tugascript/devlogs/appsearch/internal/services/dtos"

const PageSize int = 10

// Paginate derives the neighbouring page offsets from the current offset and
// the number of rows the current page returned.
func Paginate(offset, resultCount int) dtos.PaginationDTO {
	return dtos.PaginationDTO{
		PreviousOffset: offset - PageSize,
		NextOffset:     offset + PageSize,
		IsFirstPage:    offset < PageSize,
		IsLastPage:     resultCount < PageSize,
	}
}
