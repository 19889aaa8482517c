package weather

import "fmt"

// Stage identifies where a fetch failed.
type Stage string

const (
	StageRequest      Stage = "request"
	StageTransport    Stage = "transport"
	StageStatus       Stage = "status"
	StageDecode       Stage = "decode"
	StageMissingField Stage = "missing_field"
)

// FetchError is returned by Client.Current for every failure.
type FetchError struct {
	Stage Stage
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("weather %s: %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
