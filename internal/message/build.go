package message

import (
	"fmt"
	"os"

	"github.com/soyeahso/slackhook/internal/config"
	"github.com/soyeahso/slackhook/internal/slack"
)

// Load reads and builds the message document at path.
func Load(path string) (slack.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return slack.Payload{}, &DocumentError{Message: err.Error()}
	}
	doc, err := Parse(data)
	if err != nil {
		return slack.Payload{}, err
	}
	return Build(doc)
}

// Build converts a document into a payload. Every invalid value is reported
// in a single *ValidationError rather than stopping at the first.
func Build(doc Document) (slack.Payload, error) {
	verr := &ValidationError{}
	p := slack.Payload{
		Text:        optText(doc.Text),
		Channel:     doc.Channel,
		Username:    doc.Username,
		IconURL:     optURL(verr, "icon_url", doc.IconURL),
		IconEmoji:   doc.IconEmoji,
		UnfurlLinks: doc.UnfurlLinks,
		UnfurlMedia: doc.UnfurlMedia,
	}

	if doc.LinkNames != nil {
		switch *doc.LinkNames {
		case 0:
			p.LinkNames = slack.Ptr(slack.LinkNamesOff)
		case 1:
			p.LinkNames = slack.Ptr(slack.LinkNamesOn)
		default:
			verr.addf("link_names", "must be 0 or 1, got %d", *doc.LinkNames)
		}
	}

	if doc.Parse != nil {
		mode, err := slack.ParseParseMode(*doc.Parse)
		if err != nil {
			verr.add("parse", err)
		} else {
			p.Parse = &mode
		}
	}

	if doc.Attachments != nil {
		p.Attachments = make([]slack.Attachment, 0, len(doc.Attachments))
		for i, ad := range doc.Attachments {
			p.Attachments = append(p.Attachments, buildAttachment(verr, fmt.Sprintf("attachments[%d]", i), ad))
		}
	}

	if err := verr.orNil(); err != nil {
		return slack.Payload{}, err
	}
	return p, nil
}

func buildAttachment(verr *ValidationError, path string, ad AttachmentDocument) slack.Attachment {
	if ad.Fallback == "" {
		verr.addf(path+".fallback", "fallback is required")
	}
	a := slack.Attachment{
		Fallback:   slack.NewText(ad.Fallback),
		Text:       optText(ad.Text),
		Pretext:    optText(ad.Pretext),
		AuthorName: optText(ad.AuthorName),
		AuthorLink: optURL(verr, path+".author_link", ad.AuthorLink),
		AuthorIcon: optURL(verr, path+".author_icon", ad.AuthorIcon),
		Title:      optText(ad.Title),
		TitleLink:  optURL(verr, path+".title_link", ad.TitleLink),
		ImageURL:   optURL(verr, path+".image_url", ad.ImageURL),
		ThumbURL:   optURL(verr, path+".thumb_url", ad.ThumbURL),
		Footer:     optText(ad.Footer),
		FooterIcon: optURL(verr, path+".footer_icon", ad.FooterIcon),
	}

	if ad.Color != nil {
		c, err := slack.ParseColor(*ad.Color)
		if err != nil {
			verr.add(path+".color", err)
		} else {
			a.Color = &c
		}
	}

	if ad.TS != nil {
		t, err := ad.TS.Time()
		if err != nil {
			verr.addf(path+".ts", "must be epoch seconds or RFC 3339, got %q", ad.TS.Raw)
		} else {
			a.Timestamp = slack.Ptr(slack.NewTimestamp(t))
		}
	}

	if ad.Fields != nil {
		a.Fields = make([]slack.Field, 0, len(ad.Fields))
		for _, fd := range ad.Fields {
			a.Fields = append(a.Fields, slack.Field{
				Title: fd.Title,
				Value: slack.NewText(fd.Value),
				Short: fd.Short,
			})
		}
	}
	return a
}

// ApplyDefaults fills the channel, username and icon from d where the
// payload leaves them unset. Icon defaults apply only when the payload has
// neither icon, so a document choosing one is never given the other.
func ApplyDefaults(p slack.Payload, d config.MessageDefaults) (slack.Payload, error) {
	if p.Channel == nil && d.Channel != "" {
		p.Channel = slack.Ptr(d.Channel)
	}
	if p.Username == nil && d.Username != "" {
		p.Username = slack.Ptr(d.Username)
	}
	if p.IconURL == nil && p.IconEmoji == nil {
		switch {
		case d.IconEmoji != "":
			p.IconEmoji = slack.Ptr(d.IconEmoji)
		case d.IconURL != "":
			u, err := slack.ParseURL(d.IconURL)
			if err != nil {
				return p, fmt.Errorf("defaults.iconUrl: %w", err)
			}
			p.IconURL = &u
		}
	}
	return p, nil
}

func optText(s *string) *slack.Text {
	if s == nil {
		return nil
	}
	return slack.Ptr(slack.NewText(*s))
}

func optURL(verr *ValidationError, path string, s *string) *slack.URL {
	if s == nil {
		return nil
	}
	u, err := slack.ParseURL(*s)
	if err != nil {
		verr.add(path, err)
		return nil
	}
	return &u
}
