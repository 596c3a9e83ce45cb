package game

// @name Move
type Move struct {
	Color       string `json:"color"`
	Coordinates string `json:"coordinates"` // engine-native point, "dp" or "pass"
	GTP         string `json:"gtp,omitempty"`
}

// @name Variation
type Variation struct {
	Index int    `json:"index"`
	Moves []Move `json:"moves"`
	SGF   string `json:"sgf"` // the variation alone as a linear game record
}
