// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package templates

import (
	"fmt"

	"github.com/tugascript/devlogs/appsearch/internal/services/dtos"
)

const resultTemplateName = "result"

const resultBody = searchForm + `
{{if .HasResult}}
<table id="results">
    <thead>
        <tr>
            {{range .Columns}}<th>{{.}}</th>{{end}}
        </tr>
    </thead>
    <tbody>
        {{range .Recs}}
        <tr>
            {{range .Values}}<td>{{.}}</td>{{end}}
        </tr>
        {{end}}
    </tbody>
</table>
{{else}}
<p id="no-results">No apps found for "{{.Query}}".</p>
{{end}}
<nav id="pagination">
    {{if not .IsFirstPage}}<a id="previous-page" href="/search?q={{.Query}}&currentOffset={{.PreviousOffset}}">Previous</a>{{end}}
    {{if not .IsLastPage}}<a id="next-page" href="/search?q={{.Query}}&currentOffset={{.NextOffset}}">Next</a>{{end}}
</nav>
`

var resultTemplate = parsePage(resultTemplateName, resultBody)

type resultTemplateData struct {
	Title          string
	Query          string
	Columns        []string
	Recs           []dtos.AppDTO
	HasResult      bool
	PreviousOffset int
	NextOffset     int
	IsFirstPage    bool
	IsLastPage     bool
}

func BuildResultTemplate(result *dtos.SearchResultDTO) (string, error) {
	return executePage(resultTemplate, resultTemplateData{
		Title:          fmt.Sprintf("Search results for %q", result.Query),
		Query:          result.Query,
		Columns:        result.Columns,
		Recs:           result.Apps,
		HasResult:      result.HasResult(),
		PreviousOffset: result.Pagination.PreviousOffset,
		NextOffset:     result.Pagination.NextOffset,
		IsFirstPage:    result.Pagination.IsFirstPage,
		IsLastPage:     result.Pagination.IsLastPage,
	})
}
