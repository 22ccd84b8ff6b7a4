package types

import (
	"encoding/hex"
	"io"

	"github.com/zeebo/blake3"
)

// Digest returns a BLAKE3 fingerprint of the published names and of the
// generators bound to them. Registries publishing the same generators under
// the same names have the same digest.
func (r *Registry) Digest() string {
	h := blake3.New()
	for _, name := range r.Names() {
		g, _ := r.Lookup(name)
		io.WriteString(h, name)
		h.Write([]byte{'='})
		io.WriteString(h, g.Name())
		h.Write([]byte{'/'})
		io.WriteString(h, g.Kind().String())
		h.Write([]byte{'/'})
		if t := g.Type(); t != nil {
			io.WriteString(h, t.String())
		}
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
