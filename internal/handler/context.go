package handler

type ContextKey string

var (
	ShiftPresetCtx ContextKey = "shiftPreset"
)
