package ir

const (
	// SchemaVersion is the version of the persisted record layout.
	SchemaVersion = 1

	// ToolVersion is the genadd release.
	ToolVersion = "0.1.0"
)
