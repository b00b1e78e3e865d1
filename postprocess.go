package draftsmith

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// imgTagTemplate is the display styling WordPress drafts get for every
// substituted image.
const imgTagTemplate = `<img src=%q alt="Uploaded image" style="display: block; margin: 0 auto; width: 600px;">`

// ReplaceImagePlaceholders substitutes sentinel tokens with <img> tags, one
// URL per token, in order. Exactly min(tokens, len(urls)) substitutions
// happen: surplus URLs are dropped, surplus tokens are left in place for the
// sanitizer to strip.
func ReplaceImagePlaceholders(body string, urls []string) string {
	for _, u := range urls {
		if !strings.Contains(body, imageSentinel) {
			break
		}
		body = strings.Replace(body, imageSentinel, fmt.Sprintf(imgTagTemplate, u), 1)
	}
	return body
}

// DemoteHeadings rewrites model headings to the CMS display scheme:
// <h2> becomes <h4> and <h1> becomes <h5>, open and close tags alike.
func DemoteHeadings(body string) string {
	r := strings.NewReplacer(
		"<h2", "<h4",
		"</h2>", "</h4>",
		"<h1", "<h5",
		"</h1>", "</h5>",
	)
	return r.Replace(body)
}

// StripTitleHeading removes any heading element whose text is exactly the
// chosen title. The body prompt forbids restating the title, but models do it
// anyway.
func StripTitleHeading(body, title string) string {
	if strings.TrimSpace(title) == "" {
		return body
	}
	re := regexp.MustCompile(`(?i)<h[1-6][^>]*>\s*` + regexp.QuoteMeta(title) + `\s*</h[1-6]>`)
	return re.ReplaceAllString(body, "")
}

// newContentPolicy is the allowlist applied to model output before publishing.
// UGC policy plus the inline style carried by substituted <img> tags.
func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("style").OnElements("img")
	return p
}

// BodyProcessor turns raw model HTML into publishable post content.
type BodyProcessor struct {
	policy *bluemonday.Policy
}

func NewBodyProcessor() *BodyProcessor {
	return &BodyProcessor{policy: newContentPolicy()}
}

// Process runs the full post-processing chain: image substitution, heading
// demotion, title-heading removal, then sanitization. Model output is
// untrusted until the final step.
func (bp *BodyProcessor) Process(raw, chosenTitle string, imageURLs []string) string {
	body := ReplaceImagePlaceholders(raw, imageURLs)
	body = DemoteHeadings(body)
	body = StripTitleHeading(body, chosenTitle)
	return bp.policy.Sanitize(body)
}

// CountSentinels reports how many image placeholders the model emitted.
// The generate handler logs a warning when this disagrees with the number of
// uploaded images.
func CountSentinels(body string) int {
	return strings.Count(body, imageSentinel)
}
