package types

// ItemDescriptor is one project asset as reported by the host bridge.
// Folders are excluded from categorization and from rename batches.
type ItemDescriptor struct {
	ID               string `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	IsFolder         bool   `json:"isFolder" yaml:"isFolder"`
	Extension        string `json:"extension,omitempty" yaml:"extension,omitempty"`
	IsSequenceMember bool   `json:"isSequenceMember,omitempty" yaml:"isSequenceMember,omitempty"`
}

// RenamePair is one rename instruction handed to the host bridge.
type RenamePair struct {
	ID      string `json:"id" yaml:"id"`
	NewName string `json:"newName" yaml:"newName"`
}

// RenameResult is the host bridge's outcome for a rename batch.
type RenameResult struct {
	Success bool     `json:"success" yaml:"success"`
	Errors  []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ProjectStats is the flat count record reported by the host bridge.
// On a failed stats query the core substitutes the zero value rather
// than propagating the failure.
type ProjectStats struct {
	TotalItems     int `json:"totalItems" yaml:"totalItems"`
	Comps          int `json:"comps" yaml:"comps"`
	Footage        int `json:"footage" yaml:"footage"`
	Images         int `json:"images" yaml:"images"`
	Audio          int `json:"audio" yaml:"audio"`
	Sequences      int `json:"sequences" yaml:"sequences"`
	Solids         int `json:"solids" yaml:"solids"`
	Folders        int `json:"folders" yaml:"folders"`
	MissingFootage int `json:"missingFootage" yaml:"missingFootage"`
	UnusedItems    int `json:"unusedItems" yaml:"unusedItems"`
}
