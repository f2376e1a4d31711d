package resource

// Store exposes read-only emergency resources for HTTP handlers.
type Store interface {
	Helplines() []Helpline
	Websites() []Website
}

// MemoryStore implements Store with static in-memory slices.
type MemoryStore struct {
	helplines []Helpline
	websites  []Website
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied resources.
func NewMemoryStore(helplines []Helpline, websites []Website) *MemoryStore {
	return &MemoryStore{
		helplines: append([]Helpline(nil), helplines...),
		websites:  append([]Website(nil), websites...),
	}
}

// Helplines returns a copy of the helpline list.
func (s *MemoryStore) Helplines() []Helpline {
	return append([]Helpline(nil), s.helplines...)
}

// Websites returns a copy of the website list.
func (s *MemoryStore) Websites() []Website {
	return append([]Website(nil), s.websites...)
}

// Bundle groups everything the emergency panel shows.
type Bundle struct {
	Helplines []Helpline `json:"helplines"`
	Websites  []Website  `json:"websites"`
}

// Collect snapshots the store into a Bundle.
func Collect(s Store) Bundle {
	if s == nil {
		return Bundle{Helplines: []Helpline{}, Websites: []Website{}}
	}
	return Bundle{Helplines: s.Helplines(), Websites: s.Websites()}
}
