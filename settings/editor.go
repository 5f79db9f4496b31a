package settings

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// SetPrimaryKeys rebinds the extract, highlight and remove actions. The
// entered keys must be pairwise distinct; on conflict nothing changes, so the
// previous bindings stay live. Accepted keys are stored lowercased.
func (d *Document) SetPrimaryKeys(extract, highlight, remove string) error {
	if extract == highlight || highlight == remove || extract == remove {
		return ErrKeyConflict
	}

	d.ExtractKey = strings.ToLower(extract)
	d.HighlightKey = strings.ToLower(highlight)
	d.RemoveKey = strings.ToLower(remove)
	return nil
}

// SchedulingEdit carries the raw text of the numeric fields from one editing
// session.
type SchedulingEdit struct {
	SoonValue    string
	LaterValue   string
	ExtractValue string
	MaxWidth     string
}

// ApplySchedulingEdit parses and applies the numeric batch. Either all four
// values parse as integers or none of them is applied.
func (d *Document) ApplySchedulingEdit(e SchedulingEdit) error {
	parse := func(name, raw string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrNotInteger, name, raw)
		}
		return n, nil
	}

	soon, err := parse("soonValue", e.SoonValue)
	if err != nil {
		return err
	}
	later, err := parse("laterValue", e.LaterValue)
	if err != nil {
		return err
	}
	extract, err := parse("extractValue", e.ExtractValue)
	if err != nil {
		return err
	}
	width, err := parse("maxWidth", e.MaxWidth)
	if err != nil {
		return err
	}

	d.SoonValue = soon
	d.LaterValue = later
	d.ExtractValue = extract
	d.MaxWidth = width
	return nil
}

// SetHighlightColors recolors one highlight action: the standard highlight
// key, the extract key, or a quick key addressed by its combo.
func (d *Document) SetHighlightColors(target, bg, text string) error {
	switch target {
	case d.HighlightKey:
		d.HighlightBgColor = bg
		d.HighlightTextColor = text
	case d.ExtractKey:
		d.ExtractBgColor = bg
		d.ExtractTextColor = text
	default:
		qk, ok := d.QuickKeys[target]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTarget, target)
		}
		qk.BgColor = bg
		qk.TextColor = text
		d.QuickKeys[target] = qk
	}
	return nil
}

// HighlightTargets lists the keys SetHighlightColors accepts: the primary
// actions first, then the quick-key combos in sorted order.
func (d *Document) HighlightTargets() []string {
	targets := []string{d.HighlightKey, d.ExtractKey}
	combos := make([]string, 0, len(d.QuickKeys))
	for combo := range d.QuickKeys {
		combos = append(combos, combo)
	}
	slices.Sort(combos)
	return append(targets, combos...)
}

// SetQuickKey validates and stores a quick key under its combo, replacing any
// existing binding on the same combo.
func (d *Document) SetQuickKey(q QuickKey) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	combo := q.Combo()
	if d.QuickKeys == nil {
		d.QuickKeys = make(map[string]QuickKey)
	}
	d.QuickKeys[combo] = q
	return combo, nil
}

// RemoveQuickKey deletes the binding for combo, reporting whether it existed.
func (d *Document) RemoveQuickKey(combo string) bool {
	if _, ok := d.QuickKeys[combo]; !ok {
		return false
	}
	delete(d.QuickKeys, combo)
	return true
}

// MenuEntries lists the quick-access menu items for every stored quick key,
// sorted by combo so menus come out stable.
func (d *Document) MenuEntries() []MenuEntry {
	entries := make([]MenuEntry, 0, len(d.QuickKeys))
	for combo, qk := range d.QuickKeys {
		entries = append(entries, MenuEntry{Combo: combo, Label: qk.MenuLabel(), Key: qk})
	}

	slices.SortFunc(entries, func(a, b MenuEntry) int {
		return strings.Compare(a.Combo, b.Combo)
	})
	return entries
}
