package core

// Artifact represents any output of a run
type Artifact struct {
	ID        ID           `json:"id"`
	RunID     RunID        `json:"run_id"`
	Kind      ArtifactKind `json:"kind"`
	Payload   interface{}  `json:"payload"`
	CreatedAt Timestamp    `json:"created_at"`
}

// ArtifactKind defines types of artifacts
type ArtifactKind string

const (
	// ArtifactFitReport is the formatted result of a least-squares analysis.
	ArtifactFitReport ArtifactKind = "fit_report"
	// ArtifactChart records where a rendered chart was written.
	ArtifactChart ArtifactKind = "chart"
	// ArtifactTreeOutline is a serialized directory outline.
	ArtifactTreeOutline ArtifactKind = "tree_outline"
)

// NewArtifact assembles an artifact envelope for the given run
func NewArtifact(runID RunID, kind ArtifactKind, payload interface{}) Artifact {
	return Artifact{
		ID:        NewID(),
		RunID:     runID,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: Now(),
	}
}
