// Package views holds the server-rendered pages for the drafting flow,
// written as templ components that emit escaped HTML directly.
package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

const pageStyle = `body{font-family:system-ui,sans-serif;max-width:42rem;margin:2rem auto;padding:0 1rem;color:#1c1917}
h1{font-size:1.4rem}label{display:block;margin-top:1rem;font-weight:600}
input[type=text],textarea{width:100%;padding:.5rem;margin-top:.25rem;border:1px solid #a8a29e;border-radius:4px}
button{margin-top:1.5rem;padding:.5rem 1.25rem;border:1px solid #1c1917;border-radius:4px;background:#1c1917;color:#fff;cursor:pointer}
.title-option{display:block;margin:.5rem 0;font-weight:400}.error{color:#b91c1c}`

// page wraps body content in the shared HTML shell.
func page(siteName, title string, body func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		fmt.Fprintf(&b, "<title>%s — %s</title>", html.EscapeString(title), html.EscapeString(siteName))
		fmt.Fprintf(&b, "<style>%s</style>", pageStyle)
		b.WriteString("</head><body><main>")
		fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(siteName))
		body(&b)
		b.WriteString("</main></body></html>")
		_, err := w.Write(b.Bytes())
		return err
	})
}

// SubmitForm is the entry page: topic, extra context, and image uploads.
func SubmitForm(siteName, csrfToken string) templ.Component {
	return page(siteName, "New draft", func(b *bytes.Buffer) {
		b.WriteString(`<form method="post" action="/generate" enctype="multipart/form-data">`)
		hiddenField(b, "_csrf", csrfToken)
		b.WriteString(`<label for="topic">Topic</label>`)
		b.WriteString(`<input type="text" id="topic" name="topic" placeholder="Leave empty to let the model pick">`)
		b.WriteString(`<label for="extra_context">Additional context or events</label>`)
		b.WriteString(`<textarea id="extra_context" name="extra_context" rows="3"></textarea>`)
		b.WriteString(`<label for="images">Images</label>`)
		b.WriteString(`<input type="file" id="images" name="images" accept="image/*" multiple>`)
		b.WriteString(`<button type="submit">Generate titles</button>`)
		b.WriteString(`</form>`)
	})
}

// TitleChoice lists the candidate titles and echoes the pipeline state
// (attachment URLs, extra context) as hidden fields for the finalize step.
func TitleChoice(siteName string, titles []string, urls, extraContext, csrfToken string) templ.Component {
	return page(siteName, "Choose a title", func(b *bytes.Buffer) {
		b.WriteString(`<p>Pick the title for the draft:</p>`)
		b.WriteString(`<form method="post" action="/finalize">`)
		hiddenField(b, "_csrf", csrfToken)
		hiddenField(b, "urls", urls)
		hiddenField(b, "extra_context", extraContext)
		for i, t := range titles {
			esc := html.EscapeString(t)
			checked := ""
			if i == 0 {
				checked = " checked"
			}
			fmt.Fprintf(b, `<label class="title-option"><input type="radio" name="chosen" value="%s"%s> %s</label>`,
				esc, checked, esc)
		}
		b.WriteString(`<button type="submit">Write and publish draft</button>`)
		b.WriteString(`</form>`)
	})
}

// Confirmation shows the published draft's title and public URL.
func Confirmation(siteName, title, postURL string) templ.Component {
	return page(siteName, "Draft published", func(b *bytes.Buffer) {
		b.WriteString(`<p>Draft created:</p>`)
		fmt.Fprintf(b, `<p><strong>%s</strong></p>`, html.EscapeString(title))
		esc := html.EscapeString(postURL)
		fmt.Fprintf(b, `<p><a href="%s">%s</a></p>`, esc, esc)
		b.WriteString(`<p><a href="/">Start another draft</a></p>`)
	})
}

// PipelineFailure reports which stage of the flow failed.
func PipelineFailure(siteName, message string) templ.Component {
	return page(siteName, "Pipeline failure", func(b *bytes.Buffer) {
		fmt.Fprintf(b, `<p class="error">%s</p>`, html.EscapeString(message))
		b.WriteString(`<p><a href="/">Back to the form</a></p>`)
	})
}

// NotFound is the 404 page.
func NotFound(siteName string) templ.Component {
	return page(siteName, "Not found", func(b *bytes.Buffer) {
		b.WriteString(`<p class="error">Page not found.</p>`)
		b.WriteString(`<p><a href="/">Back to the form</a></p>`)
	})
}

// ServerError is the 500 page.
func ServerError(siteName string) templ.Component {
	return page(siteName, "Server error", func(b *bytes.Buffer) {
		b.WriteString(`<p class="error">Something went wrong.</p>`)
		b.WriteString(`<p><a href="/">Back to the form</a></p>`)
	})
}

func hiddenField(b *bytes.Buffer, name, value string) {
	fmt.Fprintf(b, `<input type="hidden" name="%s" value="%s">`,
		html.EscapeString(name), html.EscapeString(value))
}
