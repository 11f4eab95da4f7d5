package protocol

import "fmt"

// VersionMismatchError is returned when a worker's protocol_version does
// not match the coordinator's. Fatal on the worker side.
type VersionMismatchError struct {
	ServerVersion uint32
	ClientVersion uint32
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("protocol version mismatch: server=%d client=%d", e.ServerVersion, e.ClientVersion)
}

// InvalidRequestError wraps a malformed-payload rejection (HTTP 4xx).
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Message
}

// InternalError wraps unexpected coordinator-side failures.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}
