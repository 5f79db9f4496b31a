// Package view tracks the reading view's presentation state inside the
// settings document: per-card zoom factors, remembered scroll offsets and the
// text width limit. The host's widget layer reads the decisions and applies
// them; nothing here touches a widget.
package view

import "github.com/incread/incread/settings"

// State wraps a live settings document with the reading view's state logic.
type State struct {
	doc *settings.Document
}

// New returns a State over doc. Mutations land directly in doc and persist
// with the next settings save.
func New(doc *settings.Document) *State {
	return &State{doc: doc}
}

// CardZoom returns the remembered zoom factor for a reading card. Cards seen
// for the first time start at 1.
func (s *State) CardZoom(cardID string) float64 {
	if factor, ok := s.doc.Zoom[cardID]; ok {
		return factor
	}
	return 1
}

// SetCardZoom remembers the zoom factor for a reading card.
func (s *State) SetCardZoom(cardID string, factor float64) {
	if s.doc.Zoom == nil {
		s.doc.Zoom = make(map[string]float64)
	}
	s.doc.Zoom[cardID] = factor
}

// ZoomInCard steps a reading card's zoom up and returns the new factor.
func (s *State) ZoomInCard(cardID string) float64 {
	factor := s.CardZoom(cardID) + s.doc.ZoomStep
	s.SetCardZoom(cardID, factor)
	return factor
}

// ZoomOutCard steps a reading card's zoom down and returns the new factor.
func (s *State) ZoomOutCard(cardID string) float64 {
	factor := s.CardZoom(cardID) - s.doc.ZoomStep
	s.SetCardZoom(cardID, factor)
	return factor
}

// ResetCardZoom forgets a card's remembered factor, dropping it back to 1.
func (s *State) ResetCardZoom(cardID string) {
	delete(s.doc.Zoom, cardID)
}

// GeneralZoom returns the zoom factor used outside the reading view.
func (s *State) GeneralZoom() float64 {
	return s.doc.GeneralZoom
}

// ZoomInGeneral steps the out-of-review zoom up and returns the new factor.
func (s *State) ZoomInGeneral() float64 {
	s.doc.GeneralZoom += s.doc.ZoomStep
	return s.doc.GeneralZoom
}

// ZoomOutGeneral steps the out-of-review zoom down and returns the new factor.
func (s *State) ZoomOutGeneral() float64 {
	s.doc.GeneralZoom -= s.doc.ZoomStep
	return s.doc.GeneralZoom
}

// ScrollPos returns a card's remembered scroll offset, 0 when unseen.
func (s *State) ScrollPos(cardID string) float64 {
	return s.doc.Scroll[cardID]
}

// SaveScroll remembers a card's scroll offset for the next visit.
func (s *State) SaveScroll(cardID string, pos float64) {
	if s.doc.Scroll == nil {
		s.doc.Scroll = make(map[string]float64)
	}
	s.doc.Scroll[cardID] = pos
}

// LineStep translates the line scroll factor into an offset delta for a
// viewport of the given height.
func (s *State) LineStep(viewportHeight float64) float64 {
	return viewportHeight * s.doc.LineScrollFactor
}

// PageStep translates the page scroll factor into an offset delta for a
// viewport of the given height.
func (s *State) PageStep(viewportHeight float64) float64 {
	return viewportHeight * s.doc.PageScrollFactor
}

// WidthLimit returns the pixel cap for a card's text column and whether to
// apply it. Reading cards follow limitWidth; limitWidthAll extends the cap to
// every card.
func (s *State) WidthLimit(readingCard bool) (int, bool) {
	if s.doc.LimitWidthAll || (readingCard && s.doc.LimitWidth) {
		return s.doc.MaxWidth, true
	}
	return 0, false
}
