package naver

import "fmt"

// AcquisitionError means no bearer token was observed during a browser session.
type AcquisitionError struct {
	Region string
	Err    error
}

func (e *AcquisitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token acquisition for %s failed: %v", e.Region, e.Err)
	}
	return fmt.Sprintf("token acquisition for %s failed: no authorization header captured", e.Region)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }

// AuthExpiredError is a 401/403 from the portal that survived every refresh.
type AuthExpiredError struct {
	Status int
}

func (e *AuthExpiredError) Error() string {
	return fmt.Sprintf("portal rejected credential (HTTP %d)", e.Status)
}

// MalformedResponseError is a 2xx body that is not the expected JSON shape.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// NetworkError covers transport failures, timeouts and unexpected statuses.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected HTTP status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
