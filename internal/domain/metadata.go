package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

var metadataKeys = []string{"name", "act", "section", "victim", "original_query", "law"}

// UnmarshalJSON accepts metadata records whose fields are not all strings;
// the corpus export emits section numbers and nulls alongside text.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Metadata{
		Name:          stringField(raw, "name"),
		Act:           stringField(raw, "act"),
		Section:       stringField(raw, "section"),
		Victim:        stringField(raw, "victim"),
		OriginalQuery: stringField(raw, "original_query"),
		Law:           stringField(raw, "law"),
	}
	for _, key := range metadataKeys {
		delete(raw, key)
	}
	if len(raw) > 0 {
		m.Extra = raw
	}
	return nil
}

// MarshalJSON writes the known fields over the preserved extra fields.
func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+len(metadataKeys))
	for k, v := range m.Extra {
		out[k] = v
	}
	for key, v := range map[string]string{
		"name":           m.Name,
		"act":            m.Act,
		"section":        m.Section,
		"victim":         m.Victim,
		"original_query": m.OriginalQuery,
		"law":            m.Law,
	} {
		if v != "" {
			out[key] = v
		}
	}
	return json.Marshal(out)
}

func stringField(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}
