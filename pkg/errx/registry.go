package errx

import "fmt"

// Code identifies a registered error kind within a registry.
type Code struct {
	full       string
	errType    Type
	httpStatus int
	message    string
}

func (c Code) String() string { return c.full }

// Registry namespaces error codes for a single domain package. Each domain
// declares its own registry (e.g. "CANDIDATE", "RANKING") and registers its
// codes once at init time.
type Registry struct {
	prefix string
	codes  map[string]Code
}

// NewRegistry creates a registry with the given domain prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]Code),
	}
}

// Register declares a new error code. Registering the same code twice panics:
// codes are package-level vars and a collision is a programming error.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	full := r.prefix + "_" + code
	if _, exists := r.codes[full]; exists {
		panic(fmt.Sprintf("errx: duplicate code %q in registry %q", code, r.prefix))
	}
	c := Code{
		full:       full,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
	r.codes[full] = c
	return c
}

// New creates an Error for a registered code.
func (r *Registry) New(c Code) *Error {
	return &Error{
		Code:       c.full,
		Type:       c.errType,
		HTTPStatus: c.httpStatus,
		Message:    c.message,
	}
}

// NewWithCause creates an Error for a registered code wrapping an underlying error.
func (r *Registry) NewWithCause(c Code, cause error) *Error {
	return r.New(c).WithCause(cause)
}
