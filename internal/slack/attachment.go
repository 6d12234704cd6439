package slack

// Attachment is a decorated block shown under the message text.
// See https://api.slack.com/docs/attachments
type Attachment struct {
	// Fallback is the plain summary for clients that cannot render attachments.
	Fallback Text

	Text    *Text
	Pretext *Text
	Color   *Color
	Fields  []Field

	// The author and title links only render when the matching name or
	// title text is set.
	AuthorName *Text
	AuthorLink *URL
	AuthorIcon *URL

	Title     *Text
	TitleLink *URL

	ImageURL *URL
	ThumbURL *URL

	Footer     *Text
	FooterIcon *URL
	Timestamp  *Timestamp
}

// Encode implements Encoder.
func (a Attachment) Encode() any {
	o := object{}
	o.set("fallback", a.Fallback)
	putOptional(o, "text", a.Text)
	putOptional(o, "pretext", a.Pretext)
	putOptional(o, "color", a.Color)
	putList(o, "fields", a.Fields)
	putOptional(o, "author_name", a.AuthorName)
	putOptional(o, "author_link", a.AuthorLink)
	putOptional(o, "author_icon", a.AuthorIcon)
	putOptional(o, "title", a.Title)
	putOptional(o, "title_link", a.TitleLink)
	putOptional(o, "image_url", a.ImageURL)
	putOptional(o, "thumb_url", a.ThumbURL)
	putOptional(o, "footer", a.Footer)
	putOptional(o, "footer_icon", a.FooterIcon)
	putOptional(o, "ts", a.Timestamp)
	return map[string]any(o)
}

func (a Attachment) MarshalJSON() ([]byte, error) { return marshal(a) }
