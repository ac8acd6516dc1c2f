package rerror

import (
	"encoding/json"
)

// ErrorResponse is the serializable projection of an error.
//
// The cause and the chain are intentionally excluded: causes may be
// arbitrary error values that do not serialize. Their names and messages
// survive in Why and their stacks in Stacks.
type ErrorResponse struct {
	// Name is the name of the outermost error.
	Name string `json:"name" yaml:"name"`

	// Message is the message of the outermost error, possibly empty.
	Message string `json:"message" yaml:"message"`

	// Why is the human readable cause chain.
	Why string `json:"why" yaml:"why"`

	// Stacks is the combined stack listing of the chain.
	Stacks string `json:"stacks" yaml:"stacks"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For RichError instances this is the same as calling their ToJSON method.
// Other errors are projected as a chain of one: the name is the dynamic type
// of the error and the message is err.Error().
//
// Example:
//
//	func handleError(w http.ResponseWriter, err error) {
//	    response := rerror.ToJSON(err)
//	    if response == nil {
//	        return
//	    }
//	    w.Header().Set("Content-Type", "application/json")
//	    w.WriteHeader(http.StatusInternalServerError)
//	    json.NewEncoder(w).Encode(response)
//	}
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}
	if rich, ok := err.(RichError); ok {
		return rich.ToJSON()
	}
	return &ErrorResponse{
		Name:    nameOf(err),
		Message: messageOf(err),
		Why:     Why(err),
		Stacks:  Stacks(err),
	}
}

// ToJSON returns the serializable projection of the error.
func (e *richError) ToJSON() *ErrorResponse {
	return &ErrorResponse{
		Name:    e.name,
		Message: e.message,
		Why:     e.Why(),
		Stacks:  e.Stacks(),
	}
}

// MarshalJSON implements json.Marshaler for richError, so RichError values
// can be passed to json.Marshal directly.
//
// Example:
//
//	err, _ := rerror.New("NOT_FOUND")
//	data, _ := json.Marshal(err)
//	// {"name":"NOT_FOUND","message":"","why":"NOT_FOUND","stacks":"Error\n    at ..."}
func (e *richError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.ToJSON())
	if err != nil {
		// ErrorResponse holds only strings, so this should not happen.
		return nil, newRichError(params{
			name:    NameInternal,
			message: "failed to marshal error response",
			cause:   err,
		}, callers(0))
	}
	return data, nil
}

// MarshalYAML implements yaml.Marshaler (gopkg.in/yaml.v3) with the same
// projection as MarshalJSON.
func (e *richError) MarshalYAML() (any, error) {
	return e.ToJSON(), nil
}
