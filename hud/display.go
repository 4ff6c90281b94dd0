package hud

// TextDisplay is an ElementBinding that can overwrite its element's
// visible text. Writes are unconditional and idempotent.
type TextDisplay struct {
	*ElementBinding
}

// NewTextDisplay binds id in doc. The failure mode is inherited from
// NewElementBinding.
func NewTextDisplay(doc Document, id string) (*TextDisplay, error) {
	b, err := NewElementBinding(doc, id)
	if err != nil {
		return nil, err
	}
	return &TextDisplay{ElementBinding: b}, nil
}

// SetText replaces the bound element's text content.
func (d *TextDisplay) SetText(s string) {
	d.Element().SetText(s)
}
