package domain

type ShiftDefinition struct {
	Name       string `json:"name"`
	Start      string `json:"start"`
	End        string `json:"end"`
	DateOffset int    `json:"dateOffset,omitempty"`
}

type ResolvedInterval struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}
