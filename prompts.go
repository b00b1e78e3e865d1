package draftsmith

import (
	"fmt"
	"strings"
)

// imageSentinel is the literal token the model is instructed to emit in place
// of each image. The post-processor substitutes real <img> tags for it.
const imageSentinel = "<IMAGEHERE/>"

// titleCount is the fixed number of candidate titles requested per batch.
const titleCount = 10

// ComposeTitlePrompt builds the title-generation instruction. Pure: the same
// inputs always produce the same string. Every previous title appears verbatim
// so the model can exclude it; the 15-word topic clause is present only when a
// topic was supplied.
func ComposeTitlePrompt(rc RecordContext, topic, extraContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d possible blog titles, given the following parameters:\n", titleCount)
	fmt.Fprintf(&b, "Preferences: %s\n", strings.Join(rc.Preferences, "; "))
	fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(keywordTexts(rc.Keywords), "; "))
	fmt.Fprintf(&b, "Context: %s\n", strings.Join(rc.Context, "; "))
	fmt.Fprintf(&b, "Additional Context/Events: %s\n", extraContext)
	fmt.Fprintf(&b, "Do NOT reuse these previous blog titles: %s.\n", strings.Join(rc.Previous, "; "))
	if topic != "" {
		fmt.Fprintf(&b, "Make sure each title contains the main idea of topic '%s'. "+
			"NOTE: DO NOT INCLUDE ALL SMALL DETAILS only main points. Max length for title is 15 words.\n", topic)
	}
	fmt.Fprintf(&b, "NOTE: THE OUTPUT MUST BE in the format: title 1, title 2, ... title %d (no commas inside titles)", titleCount)
	return b.String()
}

// ComposeBodyPrompt builds the body-generation instruction for the chosen
// title. The model is told to emit exactly imageCount sentinel tokens, to
// hyperlink each keyword with its URL, and not to restate the title as a
// heading.
func ComposeBodyPrompt(title string, rc RecordContext, extraContext string, imageCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a blog post with title %s, it should include an intro, body (with headings), and conclusion.\n\n", title)
	fmt.Fprintf(&b, "Preferences: %s\n", strings.Join(rc.Preferences, "; "))
	fmt.Fprintf(&b, "Keywords: %s (use the links provided in the keywords, and make sure to embed them in the blog post)\n",
		strings.Join(keywordsWithLinks(rc.Keywords), "; "))
	fmt.Fprintf(&b, "Context: %s\n", strings.Join(rc.Context, "; "))
	fmt.Fprintf(&b, "Additional Context/Events: %s\n", extraContext)
	fmt.Fprintf(&b, "Note you need to include and add in EXACTLY %d images\n\n", imageCount)
	fmt.Fprintf(&b, "Do NOT reuse these previous blog titles: %s\n\n", strings.Join(rc.Previous, "; "))
	b.WriteString("NOTE: YOUR OUTPUT MUST BE IN HTML FORMAT, an example is shown below:\n")
	b.WriteString("Do not include the title at the start\n\n")
	b.WriteString("<p>Welcome to this sample blog post. Below are examples of how to include images with working URLs.</p><br>" +
		"<h2>Example 1: Displaying a Cat Image</h2><br><p>Here's an image of a cat:</p><br>" + imageSentinel + "<br>" +
		"<h2>Example 2: Displaying a Dog Image</h2><br><p>Here's an image of a dog:</p><br>" + imageSentinel + "<br>\n\n")
	fmt.Fprintf(&b, "as can be seen, the image locations are represented with the %s token", imageSentinel)
	return b.String()
}

func keywordTexts(kws []Keyword) []string {
	out := make([]string, 0, len(kws))
	for _, k := range kws {
		out = append(out, k.Text)
	}
	return out
}

func keywordsWithLinks(kws []Keyword) []string {
	out := make([]string, 0, len(kws))
	for _, k := range kws {
		if k.Link == "" {
			out = append(out, k.Text)
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s)", k.Text, k.Link))
	}
	return out
}
