// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package templates

const indexTemplateName = "index"

const searchForm = `
<form id="search-form" action="/search" method="get">
    <input type="search" name="q" value="{{.Query}}" placeholder="Search apps by name" autofocus>
    <button type="submit">Search</button>
</form>
`

var indexTemplate = parsePage(indexTemplateName, searchForm)

type indexTemplateData struct {
	Title string
	Query string
}

func BuildIndexTemplate() (string, error) {
	return executePage(indexTemplate, indexTemplateData{Title: "App Search"})
}
