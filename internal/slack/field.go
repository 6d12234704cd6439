package slack

// Field is one row of the table rendered inside an attachment.
type Field struct {
	// Title is shown as a bold heading. It is sent as-is and must not
	// contain markup.
	Title string
	// Value may contain message markup and multiple lines.
	Value Text
	// Short marks the value as narrow enough to sit beside other fields.
	Short *bool
}

// Encode implements Encoder.
func (f Field) Encode() any {
	o := object{"title": f.Title}
	o.set("value", f.Value)
	putScalar(o, "short", f.Short)
	return map[string]any(o)
}

func (f Field) MarshalJSON() ([]byte, error) { return marshal(f) }
