package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage     = "Internal Server Error"
	InternalServerErrorCode = 500

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
