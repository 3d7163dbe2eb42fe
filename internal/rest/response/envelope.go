package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body of every API response
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Fail is a client error; the message is shown to the user
func Fail(message string) Envelope {
	return Envelope{Status: StatusFail, Message: message}
}

// Error is a server error
func Error(message string) Envelope {
	return Envelope{Status: StatusError, Message: message}
}
