package health

// Input represents the input for the health check endpoint
type Input struct{}

// Output represents the output for the health check endpoint
type Output struct {
	Body Response
}

// Response wraps the health payload in the common envelope
type Response struct {
	Success bool   `json:"success"`
	Data    Status `json:"data"`
}

type Status struct {
	Status    string `json:"status" example:"ok" doc:"Health status of the service"`
	Timestamp string `json:"timestamp" doc:"Server time in RFC 3339"`
}
