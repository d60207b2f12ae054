package secure

import (
	"github.com/awnumar/memguard"
)

// Buffer holds one decrypted pass entry in a protected memory region.
// The process is single-shot and fully synchronous, so a Buffer is created
// once per invocation, opened once for extraction, and destroyed before
// the response is written.
type Buffer struct {
	// enclave is nil when the sealed entry was empty; memguard cannot
	// represent zero-length buffers and an empty entry carries no secret
	// to protect.
	enclave *memguard.Enclave
	// destroyed allows idempotent Destroy() calls and prevents use after
	// destroy
	destroyed bool
}

// NewBuffer seals entry bytes into an encrypted enclave. The source slice
// is wiped as part of sealing, so callers must not reuse it.
func NewBuffer(data []byte) *Buffer {
	if len(data) == 0 {
		return &Buffer{}
	}

	// memguard.NewEnclave:
	// - Encrypts the data using XSalsa20Poly1305
	// - Attempts to mlock the memory to prevent swapping
	// - Sets up guard pages for overflow detection
	// If mlock is unavailable (e.g. RLIMIT_MEMLOCK), memguard degrades to
	// standard allocation.
	return &Buffer{
		enclave: memguard.NewEnclave(data),
	}
}

// Open decrypts the protected data. The caller MUST call Destroy() on the
// returned Plaintext when done to wipe the decrypted copy from memory.
// Opening a destroyed or empty buffer yields empty plaintext.
func (b *Buffer) Open() (*Plaintext, error) {
	if b.destroyed || b.enclave == nil {
		return &Plaintext{}, nil
	}

	locked, err := b.enclave.Open()
	if err != nil {
		return nil, err
	}
	return &Plaintext{locked: locked}, nil
}

// Destroy marks this Buffer as destroyed and prevents further use. The
// encrypted enclave data is safe even without explicit destruction; this
// method ensures the buffer cannot be accidentally reopened. Idempotent.
func (b *Buffer) Destroy() {
	if b.destroyed {
		return
	}
	b.enclave = nil
	b.destroyed = true
}

// Plaintext is a decrypted view of a Buffer, backed by a locked memory
// region for non-empty entries.
type Plaintext struct {
	locked *memguard.LockedBuffer
}

// Bytes returns the decrypted entry content. The slice is only valid
// until Destroy is called.
func (p *Plaintext) Bytes() []byte {
	if p.locked == nil {
		return nil
	}
	return p.locked.Bytes()
}

// Destroy wipes the decrypted copy. Idempotent.
func (p *Plaintext) Destroy() {
	if p.locked == nil {
		return
	}
	p.locked.Destroy()
	p.locked = nil
}
