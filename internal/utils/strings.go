// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func Capitalized(s string) string {
	s = strings.TrimSpace(s)

	if len(s) == 0 {
		return s
	}

	// casers keep state and cannot be shared between requests
	return cases.Title(language.English).String(s)
}

// DbSearch wraps s in LIKE wildcards. Case and any wildcard characters inside s
// are left to the store.
func DbSearch(s string) string {
	return "%" + s + "%"
}

// ColumnLabel turns a column name such as "content_rating" into "Content Rating".
func ColumnLabel(column string) string {
	return Capitalized(strings.Join(strings.FieldsFunc(column, func(r rune) bool {
		return r == '_' || r == '-'
	}), " "))
}
