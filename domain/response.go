package domain

// Method names reported in the "method" attribute of acknowledgements.
const (
	MethodInstantiate   = "instantiate"
	MethodTryAddMessage = "try_add_message"
)

// Attribute is a key/value pair attached to an acknowledgement for audit consumers.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response acknowledges a successful command.
type Response struct {
	Attributes []Attribute `json:"attributes"`
}

func NewResponse() Response {
	return Response{Attributes: []Attribute{}}
}

func (r Response) AddAttribute(key, value string) Response {
	attributes := make([]Attribute, len(r.Attributes), len(r.Attributes)+1)
	copy(attributes, r.Attributes)
	r.Attributes = append(attributes, Attribute{Key: key, Value: value})
	return r
}

// Attribute returns the first value stored under key.
func (r Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
