package settings

import (
	"encoding/json"
	"reflect"

	"github.com/incread/incread/constant"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Field describes one document field: its wire key, factory default and the
// editor-facing description.
type Field struct {
	Key         string
	Default     any
	Description string

	// ptr returns the address of the field inside a document, used for both
	// decoding and defaulting.
	ptr func(*Document) any
}

// Value returns the field's current value in doc.
func (f Field) Value(doc *Document) any {
	return reflect.ValueOf(f.ptr(doc)).Elem().Interface()
}

// TypeName returns a display name for the field's value type.
func (f Field) TypeName() string {
	switch f.Default.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int:
		return "int"
	case float64:
		return "float"
	case Method:
		return "method"
	case *string:
		return "string or null"
	case []string:
		return "[]string"
	default:
		return "mapping"
	}
}

// reset writes the field's default into doc.
func (f Field) reset(doc *Document) {
	raw := lo.Must(json.Marshal(f.Default))
	lo.Must0(json.Unmarshal(raw, f.ptr(doc)))
}

// registry holds every document field keyed by its wire name.
var registry = make(map[string]Field)

// Keys returns the sorted wire keys of the document schema.
func Keys() []string {
	keys := lo.Keys(registry)
	slices.Sort(keys)
	return keys
}

// Fields returns the registered fields sorted by key.
func Fields() []Field {
	return lo.Map(Keys(), func(k string, _ int) Field {
		return registry[k]
	})
}

// Lookup returns the field registered under the wire key.
func Lookup(key string) (Field, bool) {
	f, ok := registry[key]
	return f, ok
}

// Defaults returns a fresh document populated with the factory defaults.
func Defaults() *Document {
	doc := &Document{extra: make(map[string]json.RawMessage)}
	for _, f := range registry {
		f.reset(doc)
	}
	return doc
}

func init() {
	// register adds a document field to the global registry.
	register := func(k string, def any, desc string, ptr func(*Document) any) {
		if _, exists := registry[k]; exists {
			panic("Duplicate settings key: " + k)
		}
		registry[k] = Field{Key: k, Default: def, Description: desc, ptr: ptr}
	}

	register("badTags", []string{"iframe", "script"}, "HTML tags stripped from imported pages", func(d *Document) any { return &d.BadTags })
	register("copyTitle", false, "Seed a new extract's title with the source title", func(d *Document) any { return &d.CopyTitle })
	register("editExtract", false, "Open the editor on every extracted card", func(d *Document) any { return &d.EditExtract })
	register("editSource", false, "Open the editor on the source note after extracting", func(d *Document) any { return &d.EditSource })
	register("extractBgColor", "Green", "Background color marking extracted text", func(d *Document) any { return &d.ExtractBgColor })
	register("extractDeck", (*string)(nil), "Deck receiving extracts.\nNull means the deck of the source card", func(d *Document) any { return &d.ExtractDeck })
	register("extractKey", "x", "Key that extracts the current selection", func(d *Document) any { return &d.ExtractKey })
	register("extractMethod", MethodPercent, "How extracts are scheduled.\nAvailable options are: percent, count", func(d *Document) any { return &d.ExtractMethod })
	register("extractRandom", true, "Randomize the position of new extracts", func(d *Document) any { return &d.ExtractRandom })
	register("extractSchedule", true, "Schedule extracts at all instead of just creating them", func(d *Document) any { return &d.ExtractSchedule })
	register("extractTextColor", "White", "Text color applied to extracted text", func(d *Document) any { return &d.ExtractTextColor })
	register("extractValue", 30, "Position value for new extracts.\nA percentage or an absolute count, depending on extractMethod", func(d *Document) any { return &d.ExtractValue })
	register("feedLog", map[string]json.RawMessage{}, "Per-feed import bookkeeping.\nMaintained by the importer", func(d *Document) any { return &d.FeedLog })
	register("generalZoom", float64(1), "Zoom factor outside the reading view", func(d *Document) any { return &d.GeneralZoom })
	register("highlightBgColor", "Yellow", "Background color of the highlight action", func(d *Document) any { return &d.HighlightBgColor })
	register("highlightKey", "h", "Key that highlights the current selection", func(d *Document) any { return &d.HighlightKey })
	register("highlightTextColor", "Black", "Text color of the highlight action", func(d *Document) any { return &d.HighlightTextColor })
	register("importDeck", "Default", "Deck receiving imported pages and feeds", func(d *Document) any { return &d.ImportDeck })
	register("laterMethod", MethodPercent, "How 'later' reschedules.\nAvailable options are: percent, count", func(d *Document) any { return &d.LaterMethod })
	register("laterRandom", true, "Randomize the new position when answering 'later'", func(d *Document) any { return &d.LaterRandom })
	register("laterValue", 50, "Position value for 'later'", func(d *Document) any { return &d.LaterValue })
	register("limitWidth", true, "Limit the text width in the reading view", func(d *Document) any { return &d.LimitWidth })
	register("limitWidthAll", false, "Apply the width limit to every card, not just reading cards", func(d *Document) any { return &d.LimitWidthAll })
	register("lineScrollFactor", 0.05, "Window fraction scrolled per line step", func(d *Document) any { return &d.LineScrollFactor })
	register("maxWidth", 600, "Maximum text width in pixels when limiting", func(d *Document) any { return &d.MaxWidth })
	register("modelName", "IR3", "Note type used for imported pages", func(d *Document) any { return &d.ModelName })
	register("pageScrollFactor", 0.5, "Window fraction scrolled per page step", func(d *Document) any { return &d.PageScrollFactor })
	register("plainText", false, "Extract as plain text instead of HTML", func(d *Document) any { return &d.PlainText })
	register("quickKeys", map[string]QuickKey{}, "Quick extraction bindings keyed by combo.\nManage with the quickkeys commands", func(d *Document) any { return &d.QuickKeys })
	register("removeKey", "z", "Key that removes formatting from the selection", func(d *Document) any { return &d.RemoveKey })
	register("scroll", map[string]float64{}, "Remembered scroll position per card.\nMaintained by the reading view", func(d *Document) any { return &d.Scroll })
	register("soonMethod", MethodPercent, "How 'soon' reschedules.\nAvailable options are: percent, count", func(d *Document) any { return &d.SoonMethod })
	register("soonRandom", true, "Randomize the new position when answering 'soon'", func(d *Document) any { return &d.SoonRandom })
	register("soonValue", 10, "Position value for 'soon'", func(d *Document) any { return &d.SoonValue })
	register("sourceField", "Source", "Field holding the provenance of imported pages", func(d *Document) any { return &d.SourceField })
	register("textField", "Text", "Field holding the body of imported pages", func(d *Document) any { return &d.TextField })
	register("titleField", "Title", "Field holding the title of imported pages", func(d *Document) any { return &d.TitleField })
	register("undoKey", "u", "Key that undoes the last action in the reading view", func(d *Document) any { return &d.UndoKey })
	register("userAgent", constant.UserAgent, "User-Agent header sent when fetching feeds", func(d *Document) any { return &d.UserAgent })
	register("zoom", map[string]float64{}, "Remembered zoom factor per card.\nMaintained by the reading view", func(d *Document) any { return &d.Zoom })
	register("zoomStep", 0.1, "Zoom change per zoom in/out step", func(d *Document) any { return &d.ZoomStep })
}
