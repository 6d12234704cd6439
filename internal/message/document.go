package message

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a webhook message. Keys mirror the wire
// names. Strings are raw; escaping and validation happen in Build.
type Document struct {
	Text        *string              `yaml:"text,omitempty"`
	Channel     *string              `yaml:"channel,omitempty"`
	Username    *string              `yaml:"username,omitempty"`
	IconURL     *string              `yaml:"icon_url,omitempty"`
	IconEmoji   *string              `yaml:"icon_emoji,omitempty"`
	Attachments []AttachmentDocument `yaml:"attachments,omitempty"`
	UnfurlLinks *bool                `yaml:"unfurl_links,omitempty"`
	UnfurlMedia *bool                `yaml:"unfurl_media,omitempty"`
	LinkNames   *int                 `yaml:"link_names,omitempty"`
	Parse       *string              `yaml:"parse,omitempty"`
}

// AttachmentDocument is one entry of Document.Attachments.
type AttachmentDocument struct {
	Fallback   string          `yaml:"fallback"`
	Text       *string         `yaml:"text,omitempty"`
	Pretext    *string         `yaml:"pretext,omitempty"`
	Color      *string         `yaml:"color,omitempty"`
	Fields     []FieldDocument `yaml:"fields,omitempty"`
	AuthorName *string         `yaml:"author_name,omitempty"`
	AuthorLink *string         `yaml:"author_link,omitempty"`
	AuthorIcon *string         `yaml:"author_icon,omitempty"`
	Title      *string         `yaml:"title,omitempty"`
	TitleLink  *string         `yaml:"title_link,omitempty"`
	ImageURL   *string         `yaml:"image_url,omitempty"`
	ThumbURL   *string         `yaml:"thumb_url,omitempty"`
	Footer     *string         `yaml:"footer,omitempty"`
	FooterIcon *string         `yaml:"footer_icon,omitempty"`
	TS         *TimeValue      `yaml:"ts,omitempty"`
}

// FieldDocument is one row of AttachmentDocument.Fields.
type FieldDocument struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
	Short *bool  `yaml:"short,omitempty"`
}

// TimeValue accepts either integer epoch seconds or an RFC 3339 string.
// The raw scalar is kept so Build can report it on failure.
type TimeValue struct {
	Raw string
}

func (v *TimeValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: ts must be a scalar", node.Line)
	}
	v.Raw = node.Value
	return nil
}

// Time resolves the raw value.
func (v TimeValue) Time() (time.Time, error) {
	if secs, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Parse(time.RFC3339, v.Raw)
}

// Parse decodes a YAML message document. Unknown keys are rejected so a
// misspelled key cannot silently drop content. An empty document is valid.
func Parse(data []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, &DocumentError{Message: "failed to parse message: " + err.Error()}
	}
	return doc, nil
}
