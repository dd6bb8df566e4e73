package models

// Quality is a coarse classification of the link to the central API,
// bucketed from probe latency.
type Quality string

const (
	QualityUnknown  Quality = "unknown"
	QualityGood     Quality = "good"
	QualityModerate Quality = "moderate"
	QualityPoor     Quality = "poor"
)

// ConnectivityState is the monitor's view of the link at one instant.
// Read by every other component, mutated only by the monitor.
type ConnectivityState struct {
	Online  bool    `json:"online"`
	Quality Quality `json:"quality"`
}
