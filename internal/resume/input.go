package resume

// InputKind discriminates the two accepted resume input shapes.
type InputKind string

const (
	// KindRaw marks plain resume text.
	KindRaw InputKind = "raw"
	// KindStructured marks an already structured resume object.
	KindStructured InputKind = "structured"
)

// Input is the tagged union handed to the parser. It is single-use: one
// screening call consumes one Input.
type Input struct {
	Kind InputKind
	Text string
	Data map[string]any
}

// NewRawInput wraps plain resume text.
func NewRawInput(text string) Input {
	return Input{Kind: KindRaw, Text: text}
}

// NewStructuredInput wraps a structured resume object.
func NewStructuredInput(data map[string]any) Input {
	return Input{Kind: KindStructured, Data: data}
}
