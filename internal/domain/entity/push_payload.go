package entity

// PushPayload carries the host notification fields used to build
// platform-specific push messages.
type PushPayload struct {
	Username        string `json:"username,omitempty"`
	Excerpt         string `json:"excerpt,omitempty"`
	PostURL         string `json:"post_url,omitempty"`
	TopicTitle      string `json:"topic_title,omitempty"`
	TranslatedTitle string `json:"translated_title,omitempty"`

	// When UseTitleAndBody is set, Title and Body are used verbatim instead of
	// deriving the message from Username and Excerpt.
	UseTitleAndBody bool   `json:"use_title_and_body,omitempty"`
	Title           string `json:"title,omitempty"`
	Body            string `json:"body,omitempty"`
}
