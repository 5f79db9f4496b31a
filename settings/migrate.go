package settings

import (
	"encoding/json"
	"fmt"
)

// Decode parses a raw settings document and reconciles it against the current
// schema: missing fields get their defaults, unreadable values are reset and
// stale quick keys are dropped. The bool reports whether anything had to be
// adjusted, which callers surface to the user once per profile load.
func Decode(data []byte) (*Document, bool, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if raw == nil {
		// A bare JSON null parses fine but is not a settings object.
		return nil, false, fmt.Errorf("%w: top level is not an object", ErrCorrupt)
	}

	doc := &Document{extra: make(map[string]json.RawMessage)}
	adjusted := false

	for key, f := range registry {
		value, ok := raw[key]
		if !ok {
			f.reset(doc)
			adjusted = true
			continue
		}

		if key == "quickKeys" {
			kept, pruned, err := pruneQuickKeys(value)
			if err != nil {
				f.reset(doc)
				adjusted = true
				continue
			}
			doc.QuickKeys = kept
			adjusted = adjusted || pruned
			continue
		}

		if err := json.Unmarshal(value, f.ptr(doc)); err != nil {
			// An unreadable value is treated like a missing one rather than
			// failing the whole document.
			f.reset(doc)
			adjusted = true
		}
	}

	for key, value := range raw {
		if _, known := registry[key]; !known {
			doc.extra[key] = value
		}
	}

	return doc, adjusted, nil
}

// pruneQuickKeys decodes stored quick keys, dropping entries that miss any
// required attribute or cannot be decoded at all. The bool reports whether
// anything was dropped.
func pruneQuickKeys(raw json.RawMessage) (map[string]QuickKey, bool, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, err
	}

	kept := make(map[string]QuickKey, len(entries))
	pruned := false
	for combo, entry := range entries {
		var attrs map[string]json.RawMessage
		if err := json.Unmarshal(entry, &attrs); err != nil {
			pruned = true
			continue
		}
		if !completeQuickKey(attrs) {
			pruned = true
			continue
		}

		var qk QuickKey
		if err := json.Unmarshal(entry, &qk); err != nil {
			pruned = true
			continue
		}
		kept[combo] = qk
	}

	return kept, pruned, nil
}
