package ui

import (
	"bytes"
	"fmt"
	"github.com/umalmyha/customers-console/internal/model"
	"html/template"
	"io"
)

var resultsTable = template.Must(template.New("results").Parse(`<table class="table-striped" cellpadding="10">
<tr><th style="width:10%">ID</th><th style="width:15%">First Name</th><th style="width:15%">Last Name</th><th style="width:20%">Email</th><th style="width:30%">Address</th><th style="width:10%">Active</th></tr>
{{- range .}}{{if .}}
<tr><td>{{.ID}}</td><td>{{.FirstName}}</td><td>{{.LastName}}</td><td>{{.Email}}</td><td>{{.Address}}</td><td>{{.Active}}</td></tr>
{{- end}}{{end}}
</table>`))

func WriteTable(w io.Writer, rows []*model.Customer) error {
	if err := resultsTable.Execute(w, rows); err != nil {
		return fmt.Errorf("failed to render results table - %w", err)
	}
	return nil
}

func TableHTML(rows []*model.Customer) (template.HTML, error) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, rows); err != nil {
		return "", err
	}
	//nolint:gosec // content is produced by html/template and escaped already
	return template.HTML(buf.String()), nil
}
