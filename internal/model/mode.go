package model

// Mode targets for the parent/silent switch.
const (
	ModeParent = "PARENT"
	ModeSilent = "SILENT"
)

// Mode is the current parent/silent state reported by the server.
type Mode struct {
	IsParentMode bool `json:"isParentMode"`
	HasPinSet    bool `json:"hasPinSet"`
}
