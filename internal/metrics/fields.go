package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)
