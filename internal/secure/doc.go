// Package secure provides memory-safe handling of decrypted pass entries.
//
// The window between 'pass show' returning and the extracted credential
// being written to stdout is the only time this process holds plaintext
// secrets. This package wraps the memguard library so that during this
// window the entry text is:
//
//   - Encrypted at rest in memory (XSalsa20Poly1305)
//   - Protected from swapping via mlock
//   - Securely wiped when no longer needed
//   - Protected from buffer overflow via guard pages
//
// # Usage
//
// Seal the raw entry bytes as soon as they arrive (the source slice is
// wiped by the seal):
//
//	buf := secure.NewBuffer(raw)
//	defer buf.Destroy()
//
//	locked, err := buf.Open()
//	if err != nil {
//	    // Handle error
//	}
//	defer locked.Destroy()
//
//	// Use locked.Bytes() to access the plaintext
//
// For complete cleanup of all memguard data at process exit, main calls
// memguard.Purge in a defer and memguard.SafeExit on error paths.
//
// # Limits
//
// This is defense-in-depth, not a guarantee: extracted values leave the
// locked region as ordinary strings the moment they are printed, and the
// package does not protect against attackers with root access to the
// running process or hardware-level attacks.
package secure
