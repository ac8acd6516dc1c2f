package rerror

// Names reserved by this package. Any other non-blank string is a valid name.
const (
	// NameInvalidArgs is the name of errors returned when construction
	// arguments are malformed.
	NameInvalidArgs = "INVALID_ARGS"

	// NameInternal is the name of errors caused by failures inside this
	// package, such as a projection that cannot be marshaled.
	NameInternal = "INTERNAL_ERROR"
)

// Messages carried by INVALID_ARGS errors. Callers may match on them.
const (
	MsgOptionsType  = "expected required options parameter of type object"
	MsgNameType     = "expected required option name of type string"
	MsgNameBlank    = "expected required option name to consist of something other than whitespace"
	MsgMessageType  = "expected optional option message to be either undefined or of type string"
	MsgMessageBlank = "expected optional option message to consist of something other than whitespace"
	MsgCauseType    = "expected optional option cause to be either undefined or an instance of Error"
)
