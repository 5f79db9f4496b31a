// Package host captures the collaborators the plugin consumes from its
// embedding application: where the open profile keeps its media, how to
// signal media changes, and when the profile goes away.
package host

import "github.com/incread/incread/filesystem"

// Host is the surface an embedding application exposes to the plugin.
type Host interface {
	// MediaDir returns the media directory of the currently open profile.
	MediaDir() (string, error)

	// TouchMediaDir bumps the directory's modification time so the host's
	// sync layer notices out-of-band changes.
	TouchMediaDir(dir string) error

	// OnProfileUnload registers fn to run when the profile closes. The owner
	// fires registered callbacks exactly once per session.
	OnProfileUnload(fn func())
}

// Hooks is a minimal lifecycle dispatcher for hosts that own the profile
// session themselves, such as the CLI.
type Hooks struct {
	unload []func()
	fired  bool
}

// OnProfileUnload registers fn for the end of the session.
func (h *Hooks) OnProfileUnload(fn func()) {
	h.unload = append(h.unload, fn)
}

// FireProfileUnload runs the registered callbacks in registration order.
// Subsequent calls are no-ops.
func (h *Hooks) FireProfileUnload() {
	if h.fired {
		return
	}
	h.fired = true
	for _, fn := range h.unload {
		fn()
	}
}

// Local is a directory-backed Host for standalone use. It treats a media
// directory on the local filesystem as the open profile.
type Local struct {
	Hooks
	Dir string
}

// NewLocal wraps dir as the open profile.
func NewLocal(dir string) *Local {
	return &Local{Dir: dir}
}

// MediaDir returns the wrapped directory.
func (l *Local) MediaDir() (string, error) {
	return l.Dir, nil
}

// TouchMediaDir updates the directory's modification time in place.
func (l *Local) TouchMediaDir(dir string) error {
	return filesystem.Touch(dir)
}
