package gameapi

// NoDataType is the payload type returned when a call exhausts its retry budget.
// Callers must treat it as a recoverable, user-visible fetch failure.
type NoDataType struct{}

// NoData is the sentinel payload for a failed fetch.
var NoData = NoDataType{}

// IsNoData reports whether a payload is the fetch-failure sentinel.
func IsNoData(payload interface{}) bool {
	_, ok := payload.(NoDataType)
	return ok
}
