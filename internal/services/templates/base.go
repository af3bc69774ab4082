// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

const baseTemplate = `
<!DOCTYPE html>
<html lang="en">

<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="/css/style.css">
</head>

<body>
    <header id="title-container">
        <a href="/"><h1>App Search</h1></a>
    </header>
    <main id="page-content">
        %s
    </main>
</body>

</html>
`

func buildEntryTemplate(body string) string {
	return fmt.Sprintf(baseTemplate, body)
}

// parsePage panics on a malformed page, so a broken template fails at start up.
func parsePage(name, body string) *template.Template {
	return template.Must(template.New(name).Parse(buildEntryTemplate(body)))
}

func executePage(t *template.Template, data any) (string, error) {
	var content bytes.Buffer
	if err := t.Execute(&content, data); err != nil {
		return "", err
	}

	return content.String(), nil
}
