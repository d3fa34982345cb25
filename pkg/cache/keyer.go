package cache

// Keyer builds cache keys.
type Keyer interface {
	// PlanKey identifies an imposition plan.
	PlanKey(opts PlanKeyOpts) string

	// ArtifactKey identifies a rendered output of a plan.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// PlanKeyOpts are the inputs that determine a plan.
type PlanKeyOpts struct {
	Scheme        string  `json:"scheme"`
	Pages         int     `json:"pages"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Rotation      int     `json:"rotation"`
	RotationType  string  `json:"rotation_type"`
	SignatureSize int     `json:"signature_size"`
	Orientation   string  `json:"orientation"`
}

// ArtifactKeyOpts are the render settings that determine an artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Title  string `json:"title,omitempty"`
	// Source is the hash of the source document, empty for blank proofs.
	Source string `json:"source,omitempty"`
}

// DefaultKeyer is the standard key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard key layout.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PlanKey returns "plan:<sha256 of opts>".
func (DefaultKeyer) PlanKey(opts PlanKeyOpts) string {
	return hashKey("plan", opts)
}

// ArtifactKey returns "artifact:<sha256 of planHash and opts>".
func (DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}
