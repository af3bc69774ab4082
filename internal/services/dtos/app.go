// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dtos

import (
	"github.com/tugascript/devlogs/appsearch/internal/providers/database"
	"github.com/tugascript/devlogs/appsearch/internal/utils"
)

type AppDTO struct {
	Name   string
	Values []string

	columns []string
}

func (a *AppDTO) Columns() []string {
	return a.columns
}

func MapAppToDTO(app *database.App) AppDTO {
	values := make([]string, len(app.Values))
	for i, v := range app.Values {
		values[i] = utils.FormatValue(v)
	}

	return AppDTO{
		Name:    app.Name(),
		Values:  values,
		columns: app.Columns,
	}
}
