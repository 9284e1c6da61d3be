package catalog

import "sort"

// Table is an immutable key -> message lookup for one locale.
type Table struct {
	tag      string
	messages map[string]string
}

// NewTable copies messages into a new Table. Later changes to messages do not
// affect the table.
func NewTable(tag string, messages map[string]string) *Table {
	m := make(map[string]string, len(messages))
	for k, v := range messages {
		m[k] = v
	}
	return &Table{tag: tag, messages: m}
}

// Tag returns the canonical locale tag of the table.
func (t *Table) Tag() string { return t.tag }

// Lookup returns the message stored under key.
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	msg, ok := t.messages[key]
	return msg, ok
}

// Len returns the number of messages.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.messages)
}

// Keys returns the message keys in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.messages))
	for k := range t.messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
