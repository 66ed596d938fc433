package analysis

// Request is the body accepted by POST /analyze.
type Request struct {
	Description string   `json:"description"`
	Screenshot  string   `json:"screenshot,omitempty"`
	Members     []Member `json:"members,omitempty"`
}

// HasScreenshot reports whether the caller attached a canvas screenshot.
func (r Request) HasScreenshot() bool {
	return r.Screenshot != ""
}

// EffectiveDescription returns the free-text description, falling back to a
// rendering of Members when no description was typed.
func (r Request) EffectiveDescription() string {
	if r.Description == "" && len(r.Members) > 0 {
		return DescribeMembers(r.Members)
	}
	return r.Description
}

// Probe is the outcome of decoding a screenshot payload. Format and Mode are
// placeholders, they are not read from the image.
type Probe struct {
	Success      bool   `json:"success"`
	Format       string `json:"format,omitempty"`
	Mode         string `json:"mode,omitempty"`
	DecodedBytes int    `json:"decoded_bytes,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Result is the envelope returned by POST /analyze.
type Result struct {
	Analysis string `json:"analysis"`
}

// Tier selects the prompt template and completion budget.
type Tier int

const (
	TierBasic Tier = iota
	TierExtended
)

func (t Tier) String() string {
	if t == TierExtended {
		return "extended"
	}
	return "basic"
}
