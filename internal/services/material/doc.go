// Package material caches generated credential material for the
// configuration editor.
//
// The service keeps one slot per credential kind, mirroring what the
// editor renders and offers for copy. Slots are written only on
// successful generation: a failure leaves the previous value in place
// and emits an error notice, so the user can retry without cleanup.
// Reset clears every slot when the editor is closed.
package material
