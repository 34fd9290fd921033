package scene

// Stats counts the work done by the last update pass. Each counter is the
// number of elements for which that stage was recomputed.
type Stats struct {
	Pass       int `json:"pass"`
	Visited    int `json:"visited"`
	Images     int `json:"images"`
	Sizes      int `json:"sizes"`
	Positions  int `json:"positions"`
	Rotations  int `json:"rotations"`
	Procedures int `json:"procedures"`
	Derived    int `json:"derived"`
	Visuals    int `json:"visuals"`
	Scrolls    int `json:"scrolls"`
}

// Recomputed returns the number of stage recomputations, procedures excluded.
func (s Stats) Recomputed() int {
	return s.Images + s.Sizes + s.Positions + s.Rotations + s.Derived + s.Visuals + s.Scrolls
}

// Stats returns the counters of the last update pass.
func (g *Gui) Stats() Stats {
	return g.stats
}
