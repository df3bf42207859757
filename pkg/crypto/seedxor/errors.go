package seedxor

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInfeasibleSearch is matched by every *InfeasibleSearchError.
	ErrInfeasibleSearch = errors.New("permutation search is infeasible")
	// ErrSelfCheckFailed means recombining freshly made shares did not give
	// back the input. It points at a defect, not at bad input, and is never
	// retried.
	ErrSelfCheckFailed   = errors.New("split self-check failed: shares do not recombine to the input")
	ErrInvalidShareCount = errors.New("share count must be at least 1")
	ErrNoWords           = errors.New("no words to unscramble")
)

// InfeasibleSearchError reports a permutation count that does not fit in 64 bits.
type InfeasibleSearchError struct {
	Units int
	Total *big.Int
}

func (e *InfeasibleSearchError) Error() string {
	return fmt.Sprintf("%d! = %s permutations is too many to enumerate", e.Units, e.Total.String())
}

func (e *InfeasibleSearchError) Is(target error) bool {
	return target == ErrInfeasibleSearch
}
