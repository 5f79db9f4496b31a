package settings

import (
	"encoding/json"
	"fmt"
	"strings"
)

// requiredQuickKeyFields are the attributes a stored quick key must carry to
// survive loading; entries from older versions that predate one of them are
// dropped wholesale. plainText is deliberately not required so bindings
// created before it existed stay valid.
var requiredQuickKeyFields = []string{
	"alt",
	"bgColor",
	"ctrl",
	"deckName",
	"editExtract",
	"editSource",
	"fieldName",
	"modelName",
	"regularKey",
	"shift",
	"textColor",
}

// QuickKey describes a one-keystroke extraction action: which deck and note
// type the new card targets and how the selected text gets highlighted.
type QuickKey struct {
	Alt         bool   `json:"alt" jsonschema:"description=Require the Alt modifier."`
	BgColor     string `json:"bgColor" jsonschema:"description=Background color applied to the source text."`
	Ctrl        bool   `json:"ctrl" jsonschema:"description=Require the Ctrl modifier."`
	DeckName    string `json:"deckName" jsonschema:"description=Deck the new card is created in."`
	EditExtract bool   `json:"editExtract" jsonschema:"description=Open the editor on the extracted card."`
	EditSource  bool   `json:"editSource" jsonschema:"description=Open the editor on the source note afterwards."`
	FieldName   string `json:"fieldName" jsonschema:"description=Field of the note type receiving the extracted text."`
	ModelName   string `json:"modelName" jsonschema:"description=Note type used for the new card."`
	PlainText   bool   `json:"plainText" jsonschema:"description=Extract as plain text instead of HTML."`
	RegularKey  string `json:"regularKey" jsonschema:"description=Non-modifier key of the combination."`
	Shift       bool   `json:"shift" jsonschema:"description=Require the Shift modifier."`
	TextColor   string `json:"textColor" jsonschema:"description=Text color applied to the source text."`
}

// Combo renders the key combination with modifiers in fixed order.
func (q QuickKey) Combo() string {
	var b strings.Builder
	if q.Ctrl {
		b.WriteString("Ctrl+")
	}
	if q.Shift {
		b.WriteString("Shift+")
	}
	if q.Alt {
		b.WriteString("Alt+")
	}
	b.WriteString(q.RegularKey)
	return b.String()
}

// MenuLabel renders the menu item text shown for this quick key.
func (q QuickKey) MenuLabel() string {
	return fmt.Sprintf("Add Card [%s -> %s]", q.ModelName, q.DeckName)
}

// Validate reports whether the quick key is complete enough to register.
func (q QuickKey) Validate() error {
	if q.DeckName == "" || q.ModelName == "" || q.RegularKey == "" {
		return ErrIncompleteQuickKey
	}
	return nil
}

// MenuEntry is one entry of the host's quick-access menu.
type MenuEntry struct {
	Combo string
	Label string
	Key   QuickKey
}

// QuickAdder performs the actual card creation for a quick key. The host's
// editor layer implements it.
type QuickAdder interface {
	QuickAdd(QuickKey)
}

// Action binds the entry's data into a niladic callback suitable for menu
// registration.
func (e MenuEntry) Action(adder QuickAdder) func() {
	key := e.Key
	return func() { adder.QuickAdd(key) }
}

// completeQuickKey reports whether a raw stored entry carries every required
// attribute.
func completeQuickKey(entry map[string]json.RawMessage) bool {
	for _, field := range requiredQuickKeyFields {
		if _, ok := entry[field]; !ok {
			return false
		}
	}
	return true
}
