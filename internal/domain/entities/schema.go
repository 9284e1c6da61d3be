package entities

// Schema is the ordered list of message keys. A key's index is its numeric id.
type Schema struct {
	Path string
	Keys []string
}

// Len returns the number of declared keys.
func (s Schema) Len() int { return len(s.Keys) }
