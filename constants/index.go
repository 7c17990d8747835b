package constants

const (
	MISSING_LOGIN_INPUT        = "Email and password are required"
	INVALID_CREDENTIALS        = "Invalid email or password"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER   = "Id must be a positive number"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read validated input"

	INVALID_BOOKING_INPUT = "Invalid booking input"
	BOOKING_NOT_FOUND     = "Booking not found"
	BOOKING_OVERLAP       = "The room is already booked for this time slot"
	INVALID_DATE_FILTER   = "Invalid date format, use YYYY-MM-DD"

	ERROR_CREATE = "Failed to create booking"
	ERROR_EDIT   = "Failed to update booking"
	ERROR_DELETE = "Failed to delete booking"
)

const DEFAULT_USER_NAME = "User"
