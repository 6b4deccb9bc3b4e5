package media

import "sync"

// Device is the shared audio/media handle for the process. Browsers only
// allow audio after a user gesture, so the device starts uninitialized and
// is brought up lazily on the first gesture the client reports. There is one
// device; pass it explicitly rather than reaching for a global.
type Device struct {
	initOnce sync.Once

	mu      sync.RWMutex
	started bool
	muted   bool
}

// NewDevice creates an uninitialized Device
func NewDevice() *Device {
	return &Device{}
}

// EnsureStarted initializes the device on first use. Subsequent calls are
// no-ops; it reports whether the device is started.
func (d *Device) EnsureStarted() bool {
	d.initOnce.Do(func() {
		d.mu.Lock()
		d.started = true
		d.mu.Unlock()
	})

	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.started
}

// Started reports whether the device has been initialized
func (d *Device) Started() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.started
}

// SetMuted sets the mute flag. Setting the current value is a no-op.
func (d *Device) SetMuted(muted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.muted = muted
}

// ToggleMuted flips the mute flag and returns the new value
func (d *Device) ToggleMuted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.muted = !d.muted
	return d.muted
}

// Muted reports the current mute flag
func (d *Device) Muted() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.muted
}
