package game

// @name RecordRequest
type RecordRequest struct {
	SGF string `json:"sgf"`
}

// @name BranchesResponse
type BranchesResponse struct {
	RequestID string      `json:"request_id,omitempty"`
	BoardSize int         `json:"board_size"`
	Branches  []Variation `json:"branches"`
}

// @name MainLineResponse
type MainLineResponse struct {
	RequestID string    `json:"request_id,omitempty"`
	BoardSize int       `json:"board_size"`
	MainLine  Variation `json:"main_line"`
}

// @name NormalizeResponse
type NormalizeResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Games     int    `json:"games"`
	SGF       string `json:"sgf"`
}

// StreamMessage is one websocket frame of a branch stream. The last frame
// has Done set, or Error when enumeration failed.
//
// @name StreamMessage
type StreamMessage struct {
	Branch *Variation `json:"branch,omitempty"`
	Done   bool       `json:"done,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// @name ConversionResponse
type ConversionResponse struct {
	Point     string `json:"point"`
	GTP       string `json:"gtp"`
	BoardSize int    `json:"board_size"`
}
