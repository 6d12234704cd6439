package slack

// Payload is the body of an incoming-webhook request.
// See https://api.slack.com/messaging/webhooks
//
// IconURL and IconEmoji may both be set; Slack decides which one wins.
type Payload struct {
	// Text is optional when Attachments carry the content.
	Text *Text
	// Channel overrides the webhook's default channel.
	Channel  *string
	Username *string

	IconURL   *URL
	IconEmoji *string

	Attachments []Attachment

	UnfurlLinks *bool
	UnfurlMedia *bool
	LinkNames   *LinkNames
	Parse       *ParseMode
}

// Encode implements Encoder. The result holds only keys whose values are set.
func (p Payload) Encode() any {
	o := object{}
	putOptional(o, "text", p.Text)
	putScalar(o, "channel", p.Channel)
	putScalar(o, "username", p.Username)
	putOptional(o, "icon_url", p.IconURL)
	putScalar(o, "icon_emoji", p.IconEmoji)
	putList(o, "attachments", p.Attachments)
	putScalar(o, "unfurl_links", p.UnfurlLinks)
	putScalar(o, "unfurl_media", p.UnfurlMedia)
	putOptional(o, "link_names", p.LinkNames)
	putOptional(o, "parse", p.Parse)
	return map[string]any(o)
}

// Map is Encode with a concrete return type.
func (p Payload) Map() map[string]any {
	return p.Encode().(map[string]any)
}

func (p Payload) MarshalJSON() ([]byte, error) { return marshal(p) }
