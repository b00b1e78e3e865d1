package draftsmith

import (
	"strings"
	"testing"
)

func testRecordContext() RecordContext {
	return RecordContext{
		Preferences: []string{"casual tone", "short paragraphs"},
		Keywords:    []Keyword{{Text: "soil health", Link: "https://x"}},
		Context:     []string{"gardening blog for beginners"},
		Previous:    []string{"Composting 101", "Mulch Matters"},
	}
}

func TestComposeTitlePromptContainsExclusionList(t *testing.T) {
	rc := testRecordContext()
	prompt := ComposeTitlePrompt(rc, "raised beds", "spring planting season")

	for _, prev := range rc.Previous {
		if !strings.Contains(prompt, prev) {
			t.Errorf("prompt missing previous title %q", prev)
		}
	}
	if !strings.Contains(prompt, "raised beds") {
		t.Error("prompt missing topic")
	}
	if !strings.Contains(prompt, "spring planting season") {
		t.Error("prompt missing extra context")
	}
	if !strings.Contains(prompt, "Max length for title is 15 words") {
		t.Error("topic supplied but 15-word clause missing")
	}
	if !strings.Contains(prompt, "no commas inside titles") {
		t.Error("prompt missing output grammar constraint")
	}
}

func TestComposeTitlePromptEmptyTopicOmitsLengthClause(t *testing.T) {
	prompt := ComposeTitlePrompt(testRecordContext(), "", "")
	if strings.Contains(prompt, "15 words") {
		t.Error("empty topic must omit the max-15-words clause entirely")
	}
	if strings.Contains(prompt, "main idea of topic") {
		t.Error("empty topic must omit the topic clause")
	}
}

func TestComposeTitlePromptDeterministic(t *testing.T) {
	rc := testRecordContext()
	if ComposeTitlePrompt(rc, "a", "b") != ComposeTitlePrompt(rc, "a", "b") {
		t.Error("same inputs must produce the same prompt")
	}
}

func TestComposeBodyPromptContainsKeywordAndLink(t *testing.T) {
	prompt := ComposeBodyPrompt("Why Mulch Works", testRecordContext(), "", 2)

	if !strings.Contains(prompt, "soil health") {
		t.Error("body prompt missing keyword text")
	}
	if !strings.Contains(prompt, "https://x") {
		t.Error("body prompt missing keyword link")
	}
	if !strings.Contains(prompt, "Why Mulch Works") {
		t.Error("body prompt missing chosen title")
	}
	if !strings.Contains(prompt, "EXACTLY 2 images") {
		t.Error("body prompt missing image count instruction")
	}
	if !strings.Contains(prompt, imageSentinel) {
		t.Error("body prompt missing sentinel token example")
	}
	if !strings.Contains(prompt, "Do not include the title at the start") {
		t.Error("body prompt missing no-title-heading instruction")
	}
}

func TestComposeBodyPromptContainsExclusionList(t *testing.T) {
	rc := testRecordContext()
	prompt := ComposeBodyPrompt("T", rc, "", 0)
	for _, prev := range rc.Previous {
		if !strings.Contains(prompt, prev) {
			t.Errorf("body prompt missing previous title %q", prev)
		}
	}
}
