package settings

import (
	"encoding/json"
	"fmt"

	"github.com/incread/incread/filesystem"
	"github.com/incread/incread/host"
	"github.com/incread/incread/log"
	"github.com/incread/incread/where"
)

// Manager owns a profile's settings document between profile load and unload.
type Manager struct {
	doc      *Document
	mediaDir string
	adjusted bool
	touch    func(string) error
}

// Open loads the settings document from the profile's media directory,
// falling back to factory defaults when no document exists yet. A document
// that exists but cannot be parsed surfaces ErrCorrupt instead of silently
// replacing the user's file.
func Open(mediaDir string) (*Manager, error) {
	m := &Manager{mediaDir: mediaDir, touch: filesystem.Touch}

	path := m.Path()
	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		m.doc = Defaults()
		return m, nil
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, adjusted, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	m.doc = doc
	m.adjusted = adjusted
	return m, nil
}

// Attach opens the settings for the host's current profile and arranges for
// them to be saved when the profile unloads.
func Attach(h host.Host) (*Manager, error) {
	dir, err := h.MediaDir()
	if err != nil {
		return nil, err
	}

	m, err := Open(dir)
	if err != nil {
		return nil, err
	}
	m.touch = h.TouchMediaDir

	h.OnProfileUnload(func() {
		// No caller left to hand the error to at teardown.
		if err := m.Save(); err != nil {
			log.Errorf("settings: save on profile unload: %v", err)
		}
	})

	return m, nil
}

// Document returns the live settings document.
func (m *Manager) Document() *Document {
	return m.doc
}

// MediaDir returns the profile media directory the manager was opened on.
func (m *Manager) MediaDir() string {
	return m.mediaDir
}

// Path returns the location of the settings file.
func (m *Manager) Path() string {
	return where.SettingsFile(m.mediaDir)
}

// Adjusted reports whether loading had to fill in defaults or drop stale
// entries. The host shows its one-time upgrade notice off this.
func (m *Manager) Adjusted() bool {
	return m.adjusted
}

// Save writes the full document back to the settings file and touches the
// media directory so the host's sync layer picks up the change. I/O failures
// propagate unchanged.
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.doc, "", "  ")
	if err != nil {
		return err
	}

	if err := filesystem.API().WriteFile(m.Path(), data, 0644); err != nil {
		return err
	}

	return m.touch(m.mediaDir)
}
