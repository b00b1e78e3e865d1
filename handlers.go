package draftsmith

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"draftsmith/views"
)

// attachmentSeparator joins uploaded-image URLs in the hidden form field that
// carries them from /generate to /finalize. Pipeline state rides the rendered
// page; there is no server-side session.
const attachmentSeparator = "|"

func (a *App) handleForm(c echo.Context) error {
	return Render(c, views.SubmitForm(a.Config.SiteName, CsrfToken(c)))
}

// handleGenerate uploads the submitted images, aggregates the curated
// records, and asks the model for ten candidate titles.
func (a *App) handleGenerate(c echo.Context) error {
	ctx := c.Request().Context()
	topic := strings.TrimSpace(c.FormValue("topic"))
	extraContext := strings.TrimSpace(c.FormValue("extra_context"))

	media, err := a.readUploads(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}

	urls, err := UploadImages(ctx, a.CMS, media)
	if err != nil {
		return err
	}

	rc, err := a.Records.FetchContext(ctx)
	if err != nil {
		return err
	}

	genCtx, cancel := context.WithTimeout(ctx, a.Config.GenTimeout)
	defer cancel()
	raw, err := a.Generator.Generate(genCtx, ComposeTitlePrompt(rc, topic, extraContext))
	if err != nil {
		return err
	}

	titles := ParseTitles(strings.TrimSpace(raw))
	if err := ValidateTitleCount(titles); err != nil {
		a.Log.Error().Int("count", len(titles)).Msg("title batch rejected")
		return err
	}

	a.Log.Info().Str("topic", topic).Int("images", len(urls)).Msg("titles offered")
	return Render(c, views.TitleChoice(a.Config.SiteName, titles,
		strings.Join(urls, attachmentSeparator), extraContext, CsrfToken(c)))
}

// handleFinalize takes the chosen title plus the echoed hidden-field state,
// records the title, drafts the body, post-processes it, and publishes the
// draft exactly once.
func (a *App) handleFinalize(c echo.Context) error {
	ctx := c.Request().Context()
	chosen := c.FormValue("chosen")
	if chosen == "" {
		return c.String(http.StatusBadRequest, "No title chosen")
	}
	extraContext := strings.TrimSpace(c.FormValue("extra_context"))
	urls := FilterEmpty(strings.Split(c.FormValue("urls"), attachmentSeparator))

	if err := a.Records.AppendPrevious(ctx, chosen); err != nil {
		return err
	}

	rc, err := a.Records.FetchContext(ctx)
	if err != nil {
		return err
	}

	genCtx, cancel := context.WithTimeout(ctx, a.Config.GenTimeout)
	defer cancel()
	raw, err := a.Generator.Generate(genCtx, ComposeBodyPrompt(chosen, rc, extraContext, len(urls)))
	if err != nil {
		return err
	}

	if n := CountSentinels(raw); n != len(urls) {
		a.Log.Warn().Int("sentinels", n).Int("images", len(urls)).Msg("placeholder count mismatch")
	}

	content := a.processor.Process(raw, chosen, urls)

	post, err := a.publisher.Publish(ctx, chosen, content)
	if err != nil {
		return err
	}

	a.Log.Info().Int("post_id", post.ID).Str("title", chosen).Msg("draft published")
	return Render(c, views.Confirmation(a.Config.SiteName, chosen, post.URL))
}

// readUploads normalizes every submitted image file in submission order.
func (a *App) readUploads(c echo.Context) ([]Media, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	files := form.File["images"]
	media := make([]Media, 0, len(files))
	for _, fh := range files {
		if fh.Size == 0 {
			continue // browsers submit one empty part when no file is picked
		}
		src, err := fh.Open()
		if err != nil {
			return nil, err
		}
		m, err := NormalizeImage(src, fh.Filename, a.Config.MaxImageWidth)
		src.Close()
		if err != nil {
			return nil, err
		}
		media = append(media, m)
	}
	return media, nil
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if msg, ok := pipelineMessage(err); ok {
		a.Log.Error().Err(err).Msg("pipeline failure")
		_ = RenderStatus(c, http.StatusBadGateway, views.PipelineFailure(a.Config.SiteName, msg))
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.SiteName))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error().Err(err).Msg("server error")
		_ = RenderStatus(c, code, views.ServerError(a.Config.SiteName))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// pipelineMessage maps a stage error to the operator-facing failure text.
func pipelineMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrDataSource):
		return "Fetching records from the datastore failed.", true
	case errors.Is(err, ErrUpload):
		return "Uploading an image to the CMS failed.", true
	case errors.Is(err, ErrMalformedOutput):
		return "The model returned an unusable response. Submit again.", true
	case errors.Is(err, ErrGeneration):
		return "The generation service call failed.", true
	case errors.Is(err, ErrPublish):
		return "Publishing the draft to the CMS failed.", true
	}
	return "", false
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
