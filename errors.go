package draftsmith

import "errors"

// Pipeline stage errors. Handlers wrap these with fmt.Errorf("%w: ...") so the
// error handler can map a failure back to the stage that produced it. None of
// them are retried; a failed stage terminates the request.
var (
	// ErrDataSource means the record store was unreachable or a table is missing.
	ErrDataSource = errors.New("record store failure")

	// ErrGeneration means the text-generation call itself failed.
	ErrGeneration = errors.New("generation failure")

	// ErrUpload means a media upload failed. The batch aborts on the first
	// failure; already-uploaded images stay on the CMS.
	ErrUpload = errors.New("media upload failure")

	// ErrPublish means creating or fetching back the draft post failed.
	ErrPublish = errors.New("publish failure")

	// ErrMalformedOutput means the model response did not match the format
	// the prompt mandated (wrong title count).
	ErrMalformedOutput = errors.New("malformed generation output")
)
