package ranking

import (
	"net/http"

	"github.com/jmatamoros/cvmatch/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RANKING")

// Error codes
var (
	CodeInvalidRequest    = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid analyze request")
	CodeCorpusFetchFailed = ErrRegistry.Register("CORPUS_FETCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to fetch candidate corpus")
)

// Helper functions
func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrCorpusFetchFailed() *errx.Error {
	return ErrRegistry.New(CodeCorpusFetchFailed)
}
