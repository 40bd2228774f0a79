package account

// PixKeyKind enumerates the alias kinds a Pix key can take.
type PixKeyKind string

const (
	PixEmail  PixKeyKind = "email"
	PixPhone  PixKeyKind = "phone"
	PixCPF    PixKeyKind = "cpf"
	PixRandom PixKeyKind = "random"
)

// PixIntent carries a requested Pix key mutation.
type PixIntent struct {
	Kind  PixKeyKind
	Value string
}

// PixRegistry holds the Pix keys bound to an account, at most one per kind.
type PixRegistry struct {
	keys map[PixKeyKind]string
}

// NewPixRegistry returns an empty registry.
func NewPixRegistry() *PixRegistry {
	return &PixRegistry{keys: make(map[PixKeyKind]string)}
}

// Set binds value to kind, replacing any previous key of that kind. It
// reports whether the mutation was applied; unknown kinds and empty values
// are rejected.
func (r *PixRegistry) Set(kind PixKeyKind, value string) bool {
	switch kind {
	case PixEmail, PixPhone, PixCPF, PixRandom:
	default:
		return false
	}
	if value == "" {
		return false
	}
	r.keys[kind] = value
	return true
}

// Get returns the key bound to kind, if any.
func (r *PixRegistry) Get(kind PixKeyKind) (string, bool) {
	v, ok := r.keys[kind]
	return v, ok
}

// Keys returns a copy of all bound keys.
func (r *PixRegistry) Keys() map[PixKeyKind]string {
	out := make(map[PixKeyKind]string, len(r.keys))
	for k, v := range r.keys {
		out[k] = v
	}
	return out
}
