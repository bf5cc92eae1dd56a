package trade360

// DistributionActionResponse is returned by distribution start and stop.
type DistributionActionResponse struct {
	Message string `json:"message" yaml:"message"`
}
