package domain

// Link is the per-target record configuring how a derived target follows its
// source. Source is a weak reference: it may dangle after host-side reload or
// undo boundaries, in which case SourceName is the authoritative fallback.
type Link struct {
	Source            *Source
	SourceName        string
	AutoUpdate        bool
	Debounce          float64
	ApplyModifiers    bool
	PreserveAllLayers bool
	Note              string
}

// Matches reports whether the link resolves to the given source, first by
// identity and then by stable name. The name fallback exists because identity
// can become unreliable across reload boundaries while names stay valid.
func (l *Link) Matches(src *Source) bool {
	if l == nil || src == nil {
		return false
	}
	if l.Source == src {
		return true
	}
	if src.Name == "" {
		return false
	}
	if l.Source != nil && l.Source.Name == src.Name {
		return true
	}
	return l.Source == nil && l.SourceName == src.Name
}

// Target is a derived object holding exactly one mesh resource and the link
// record that drives its regeneration.
type Target struct {
	Name string
	Mesh *MeshResource
	Link *Link
}
