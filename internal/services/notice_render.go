package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
)

//go:embed templates/notice.html
var noticeTemplates embed.FS

var noticeHTML = template.Must(template.New("notice.html").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	ParseFS(noticeTemplates, "templates/notice.html"))

// RenderHTML renders the printable hard copy of a notice
func RenderHTML(doc models.NoticeDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := noticeHTML.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render notice: %w", err)
	}
	return buf.Bytes(), nil
}
