package draftsmith

// Keyword is a curated keyword record with the URL it should link to.
type Keyword struct {
	Text string
	Link string
}

// RecordContext is the aggregated output of the four curated tables,
// in datastore iteration order.
type RecordContext struct {
	Preferences []string
	Keywords    []Keyword
	Context     []string
	Previous    []string
}

// Media is one user-submitted image before upload: filename, declared
// content type, and processed bytes. It lives for a single request cycle.
type Media struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MediaRef is the CMS-assigned identity of an uploaded image.
type MediaRef struct {
	ID  int
	URL string
}

// PublishedPost identifies a draft created on the CMS.
type PublishedPost struct {
	ID  int
	URL string
}
