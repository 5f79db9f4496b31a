package settings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Method selects how a scheduling action positions a card: at a percentage
// of the deck's position range or at an absolute position count.
type Method string

const (
	MethodPercent Method = "percent"
	MethodCount   Method = "count"
)

// ParseMethod converts user input into a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(s)) {
	case MethodPercent:
		return MethodPercent, nil
	case MethodCount:
		return MethodCount, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadMethod, s)
	}
}

// Document is the per-profile settings document. Field names mirror the wire
// keys of the JSON file; unknown keys found on disk are kept in extra and
// written back verbatim.
type Document struct {
	BadTags            []string                   `json:"badTags"`
	CopyTitle          bool                       `json:"copyTitle"`
	EditExtract        bool                       `json:"editExtract"`
	EditSource         bool                       `json:"editSource"`
	ExtractBgColor     string                     `json:"extractBgColor"`
	ExtractDeck        *string                    `json:"extractDeck"`
	ExtractKey         string                     `json:"extractKey"`
	ExtractMethod      Method                     `json:"extractMethod"`
	ExtractRandom      bool                       `json:"extractRandom"`
	ExtractSchedule    bool                       `json:"extractSchedule"`
	ExtractTextColor   string                     `json:"extractTextColor"`
	ExtractValue       int                        `json:"extractValue"`
	FeedLog            map[string]json.RawMessage `json:"feedLog"`
	GeneralZoom        float64                    `json:"generalZoom"`
	HighlightBgColor   string                     `json:"highlightBgColor"`
	HighlightKey       string                     `json:"highlightKey"`
	HighlightTextColor string                     `json:"highlightTextColor"`
	ImportDeck         string                     `json:"importDeck"`
	LaterMethod        Method                     `json:"laterMethod"`
	LaterRandom        bool                       `json:"laterRandom"`
	LaterValue         int                        `json:"laterValue"`
	LimitWidth         bool                       `json:"limitWidth"`
	LimitWidthAll      bool                       `json:"limitWidthAll"`
	LineScrollFactor   float64                    `json:"lineScrollFactor"`
	MaxWidth           int                        `json:"maxWidth"`
	ModelName          string                     `json:"modelName"`
	PageScrollFactor   float64                    `json:"pageScrollFactor"`
	PlainText          bool                       `json:"plainText"`
	QuickKeys          map[string]QuickKey        `json:"quickKeys"`
	RemoveKey          string                     `json:"removeKey"`
	Scroll             map[string]float64         `json:"scroll"`
	SoonMethod         Method                     `json:"soonMethod"`
	SoonRandom         bool                       `json:"soonRandom"`
	SoonValue          int                        `json:"soonValue"`
	SourceField        string                     `json:"sourceField"`
	TextField          string                     `json:"textField"`
	TitleField         string                     `json:"titleField"`
	UndoKey            string                     `json:"undoKey"`
	UserAgent          string                     `json:"userAgent"`
	Zoom               map[string]float64         `json:"zoom"`
	ZoomStep           float64                    `json:"zoomStep"`

	extra map[string]json.RawMessage
}

// MarshalJSON writes every registered field plus preserved unknown keys.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(registry)+len(d.extra))
	for key, f := range registry {
		raw, err := json.Marshal(f.ptr(d))
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", key, err)
		}
		out[key] = raw
	}
	for key, raw := range d.extra {
		if _, taken := out[key]; !taken {
			out[key] = raw
		}
	}
	return json.Marshal(out)
}

// Get returns the current value of the field named by its wire key.
func (d *Document) Get(key string) (any, error) {
	f, ok := Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	return f.Value(d), nil
}

// Reset restores the field named by its wire key to the factory default.
func (d *Document) Reset(key string) error {
	f, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	f.reset(d)
	return nil
}

// SetFromString parses raw according to the field's type and assigns it.
// Mapping fields have dedicated editing operations and are not directly
// settable.
func (d *Document) SetFromString(key, raw string) error {
	f, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}

	switch f.Default.(type) {
	case string:
		*f.ptr(d).(*string) = raw
	case bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: expected a boolean, got %q", key, raw)
		}
		*f.ptr(d).(*bool) = parsed
	case int:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrNotInteger, key, raw)
		}
		*f.ptr(d).(*int) = parsed
	case float64:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s: expected a number, got %q", key, raw)
		}
		*f.ptr(d).(*float64) = parsed
	case Method:
		parsed, err := ParseMethod(raw)
		if err != nil {
			return err
		}
		*f.ptr(d).(*Method) = parsed
	case *string:
		ptr := f.ptr(d).(**string)
		if raw == "" {
			*ptr = nil
		} else {
			*ptr = &raw
		}
	case []string:
		var parts []string
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		*f.ptr(d).(*[]string) = parts
	default:
		return fmt.Errorf("%w: %s", ErrNotSettable, key)
	}

	return nil
}
