// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package database

const appNameColumn string = "name"

// App is one catalog row. Columns keep the order the store returned them in;
// only the name column means anything to this service.
type App struct {
	Columns []string
	Values  []interface{}
}

func (a *App) Value(column string) (interface{}, bool) {
	for i, c := range a.Columns {
		if c == column {
			return a.Values[i], true
		}
	}

	return nil, false
}

func (a *App) Name() string {
	value, ok := a.Value(appNameColumn)
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

type FindAppsByNameParams struct {
	Name   string
	Limit  int32
	Offset int32
}
