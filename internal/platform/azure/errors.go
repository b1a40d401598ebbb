package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// isResponseStatus checks if the error is an ARM response error with one of
// the given HTTP status codes.
func isResponseStatus(err error, statusCodes ...int) bool {
	if err == nil {
		return false
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		for _, code := range statusCodes {
			if respErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isResponseStatus(err, http.StatusNotFound)
}

// IsConflict checks if an error indicates a conflict with existing state.
func IsConflict(err error) bool {
	return isResponseStatus(err, http.StatusConflict)
}

// IsRateLimited checks if an error indicates ARM throttling.
func IsRateLimited(err error) bool {
	return isResponseStatus(err, http.StatusTooManyRequests)
}

// IsUnauthorized checks if an error indicates missing or expired credentials.
func IsUnauthorized(err error) bool {
	return isResponseStatus(err, http.StatusUnauthorized, http.StatusForbidden)
}
