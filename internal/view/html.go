package view

import "html/template"

// PanelTemplate is the name to pass to gin's HTML renderer.
const PanelTemplate = "panel.html"

// Template renders a Page. Buttons post to the feedback endpoint; the page
// is not re-rendered afterwards.
var Template = template.Must(template.New(PanelTemplate).Parse(`<!doctype html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>AI Summary</title></head>
<body>
<main class="main" data-max-height="{{.Resize.MaxHeight}}">
{{range .Display.Sections}}<section class="{{.Variant}}">
<h2>{{.Title}}</h2>
<p>{{.Content}}</p>
</section>
{{if .Divider}}<div class="EPDivider"></div>{{end}}
{{end}}<div class="feedback" style="margin-bottom:16px">
{{range .Display.Feedback}}<button type="button" class="icon-button {{.Icon}}{{if .Selected}} is-selected{{end}}" aria-pressed="{{.Selected}}" title="{{.Label}}"
 onclick="fetch('{{$.FeedbackURL}}',{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify({value:'{{.Value}}'})})">{{.Label}}</button>
{{end}}</div>
{{with .Display.Footer}}<p class="footer"><small>{{.Text}}</small></p>{{end}}
</main>
</body>
</html>
`))

// Page is the data bound to Template.
type Page struct {
	Locale      string
	Display     Display
	Resize      ResizeRequest
	FeedbackURL string
}
