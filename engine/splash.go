package engine

// SplashSet tracks which named overlay is visible; at most one at a time
type SplashSet struct {
	names   []string
	visible string
}

// NewSplashSet registers the overlay names, all hidden
func NewSplashSet(names ...string) *SplashSet {
	return &SplashSet{names: names}
}

// Show makes the named overlay visible and hides the rest
// An empty or unknown name hides everything
func (s *SplashSet) Show(name string) {
	s.visible = SplashNone
	for _, n := range s.names {
		if n == name {
			s.visible = name
			return
		}
	}
}

// Visible returns the visible overlay name, or SplashNone
func (s *SplashSet) Visible() string {
	return s.visible
}

// IsVisible reports whether the named overlay is shown
func (s *SplashSet) IsVisible(name string) bool {
	return name != SplashNone && s.visible == name
}

// Names returns the registered overlay names
func (s *SplashSet) Names() []string {
	return s.names
}
