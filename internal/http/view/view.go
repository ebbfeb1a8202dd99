// Package view renders the single HTML page of the web form.
package view

import (
	"bytes"
	_ "embed"
	"html/template"

	"faq-bot/internal/models"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

// Page is the data behind index.html. Match is nil until a question has
// been answered.
type Page struct {
	Question string
	Match    *models.FAQItem
	Error    string
}

func Render(p Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := index.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
