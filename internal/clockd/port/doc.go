// Package port contains the entry points into the clockd service.
// HTTP handlers live here; they translate requests into civiltime calls.
package port
