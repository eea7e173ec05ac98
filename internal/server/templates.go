package server

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// exampleQueries seeds the index page so first-time visitors see what the
// service can answer.
var exampleQueries = []string{
	"What's trending this week?",
	"Tell me about Interstellar",
	"Recommend good sci-fi movies",
	"Shows similar to Severance",
	"Who is Christopher Nolan?",
}

type indexData struct {
	Examples []string
	Error    string
}

type resultsData struct {
	Task Task
	// HTML is the rendered answer. Only the results handler writes it,
	// and only from markup.Render output.
	HTML template.HTML
}

type statusResponse struct {
	Status string `json:"status"`
	Query  string `json:"query,omitempty"`
}

// renderer adapts html/template to echo's Renderer interface.
type renderer struct {
	templates *template.Template
}

func (r *renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func newRenderer() *renderer {
	return &renderer{templates: template.Must(template.New("").Parse(pageTemplates))}
}

const pageTemplates = `
{{define "head"}}
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>cinequery</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 44rem; margin: 2rem auto; padding: 0 1rem; color: #1a1a1a; }
  h1, h2, h3 { line-height: 1.25; }
  a { color: #0a6847; }
  form { margin: 1.5rem 0; }
  input[type=text] { width: 70%; padding: .5rem; font-size: 1rem; }
  button { padding: .5rem 1rem; font-size: 1rem; cursor: pointer; }
  .error { color: #b3261e; }
  .examples li { margin: .25rem 0; }
  .spinner { margin: 2rem 0; font-style: italic; color: #555; }
  .answer ul { padding-left: 1.25rem; }
</style>
{{end}}

{{define "index"}}<!doctype html>
<html lang="en">
<head>{{template "head"}}</head>
<body>
  <h1>cinequery</h1>
  <p>Ask about movies, TV shows, and the people who make them.</p>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <form method="post" action="/search">
    <input type="text" name="query" placeholder="What's trending this week?" autofocus>
    <button type="submit">Search</button>
    <label><input type="checkbox" name="include_people" value="1"> include people</label>
  </form>
  <h2>Try one of these</h2>
  <ul class="examples">
    {{range .Examples}}<li>{{.}}</li>
    {{end}}
  </ul>
</body>
</html>
{{end}}

{{define "results"}}<!doctype html>
<html lang="en">
<head>{{template "head"}}</head>
<body>
  <p><a href="/">&larr; new search</a></p>
  <h2>{{.Task.Query}}</h2>
  {{if eq .Task.Status "processing"}}
  <p class="spinner" id="spinner">Looking that up&hellip;</p>
  <script>
    (function poll() {
      fetch("/api/status/{{.Task.ID}}")
        .then(function (r) { return r.json(); })
        .then(function (s) {
          if (s.status === "processing") { setTimeout(poll, 1500); }
          else { location.reload(); }
        })
        .catch(function () { setTimeout(poll, 3000); });
    })();
  </script>
  {{else if eq .Task.Status "error"}}
  <p class="error">{{.Task.Err}}</p>
  {{else}}
  <div class="answer">{{.HTML}}</div>
  {{end}}
</body>
</html>
{{end}}
`
