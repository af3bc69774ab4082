// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package templates

import "net/http"

const errorTemplateName = "error"

const errorBody = `
<section id="error">
    <h2>{{.Status}} {{.StatusText}}</h2>
    <p>{{.Message}}</p>
    <a href="/">Back to search</a>
</section>
`

var errorTemplate = parsePage(errorTemplateName, errorBody)

type errorTemplateData struct {
	Title      string
	Status     int
	StatusText string
	Message    string
}

func BuildErrorTemplate(status int, message string) (string, error) {
	statusText := http.StatusText(status)
	return executePage(errorTemplate, errorTemplateData{
		Title:      statusText,
		Status:     status,
		StatusText: statusText,
		Message:    message,
	})
}
