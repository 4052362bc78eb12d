// Package render produces the standalone read-only document shown to the
// recipient of a share link. The view is presentation-only: it never touches
// the persistence layer and establishes no session state.
package render

import (
	"bytes"
	"html/template"
	"regexp"

	"github.com/globalnotes/notes-workspace/internal/model"
)

// scriptPattern strips <script>...</script> spans before insertion. This is
// the only sanitization applied, matching the minimal defense the shared
// view promises; other markup renders as-is.
var scriptPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)

var pageTmpl = template.Must(template.New("shared-note").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} - Shared Note</title>
<style>
    html, body { margin: 0; padding: 0; width: 100%; background-color: #f9f9f9; }
    body {
        font-family: 'Inter', -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
        line-height: 1.6; color: #333;
        display: flex; justify-content: center;
        padding: 40px 20px; box-sizing: border-box;
    }
    .shared-container {
        background: white; padding: 40px; border-radius: 12px;
        box-shadow: 0 4px 12px rgba(0,0,0,0.05);
        width: 100%; max-width: 800px; height: fit-content;
    }
    h1 {
        margin-top: 0; font-size: 2em; color: #1a1a1a;
        border-bottom: 2px solid #eaeaea; padding-bottom: 15px; margin-bottom: 25px;
    }
    .content { font-size: 1.1em; white-space: pre-wrap; }
    .content img { max-width: 100%; height: auto; border-radius: 8px; }
    .meta {
        margin-top: 40px; font-size: 0.85em; color: #888;
        border-top: 1px solid #eaeaea; padding-top: 20px; text-align: center;
    }
    @media (max-width: 600px) {
        body { padding: 10px; }
        .shared-container { padding: 20px; }
        h1 { font-size: 1.5rem; }
    }
</style>
</head>
<body>
<div class="shared-container">
    <h1>{{.Title}}</h1>
    <div class="content">{{.Content}}</div>
    <div class="meta">{{if .SharedBy}}Shared by <strong>{{.SharedBy}}</strong> via {{.Company}}{{else}}Shared via {{.Company}}{{end}}</div>
</div>
</body>
</html>
`))

type pageData struct {
	Title    string
	Content  template.HTML
	SharedBy string
	Company  string
}

// SharedNote renders the read-only view for a decoded payload. The title and
// sharer name are escaped; the content keeps its markup minus script spans.
func SharedNote(payload model.SharePayload, sharedBy, company string) (string, error) {
	title := payload.Title
	if title == "" {
		title = "Untitled Shared Note"
	}
	data := pageData{
		Title:    title,
		Content:  template.HTML(scriptPattern.ReplaceAllString(payload.Content, "")),
		SharedBy: sharedBy,
		Company:  company,
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
