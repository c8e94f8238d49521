package server

import (
	"bytes"
	"fmt"
	"html/template"
)

// PageVars contains variables for the upload page template.
type PageVars struct {
	Title      string
	Error      string
	MaxUpload  string
	Extensions string
}

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// RenderIndex renders the upload page.
func RenderIndex(vars PageVars) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, vars); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// indexHTML is the upload page template.
const indexHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
      body {
        font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
        max-width: 480px;
        margin: 40px auto;
        padding: 0 12px;
        color: #222;
      }
      form {
        display: flex;
        flex-direction: column;
        gap: 10px;
      }
      label {
        font-size: 13px;
        color: #555;
      }
      input[type=text] {
        padding: 6px;
        font-size: 15px;
      }
      .error {
        padding: 8px 10px;
        border: 1px solid #e5a0a0;
        background-color: #fdf0f0;
        color: #a11;
      }
      .hint {
        font-size: 12px;
        color: #666;
      }
    </style>
  </head>
  <body>
    <h1>{{.Title}}</h1>
    {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
    <form method="post" action="/" enctype="multipart/form-data">
      <label for="file">Image</label>
      <input id="file" type="file" name="file" accept="{{.Extensions}}" required>
      <p class="hint">gif, png, jpg or jpeg, up to {{.MaxUpload}}</p>
      <label for="topText">Top text</label>
      <input id="topText" type="text" name="topText">
      <label for="bottomText">Bottom text</label>
      <input id="bottomText" type="text" name="bottomText">
      <button type="submit">Make meme</button>
    </form>
  </body>
</html>`
