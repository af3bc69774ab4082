// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dtos

// PaginationDTO holds the offsets of the neighbouring pages. PreviousOffset is
// not clamped and is negative on the first page.
type PaginationDTO struct {
	PreviousOffset int
	NextOffset     int
	IsFirstPage    bool
	IsLastPage     bool
}
