package responses

// Machine-readable result codes carried on every error envelope. Clients
// branch on these, never on the human-readable message.
const (
	CodePoolNotFound        = "POOL_NOT_FOUND"
	CodePoolLocked          = "POOL_LOCKED"
	CodePoolNotLocked       = "POOL_NOT_LOCKED"
	CodePoolCompleted       = "POOL_COMPLETED"
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNameTaken           = "NAME_TAKEN"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeInvalidOption       = "INVALID_OPTION"
	CodePropNotFound        = "PROP_NOT_FOUND"
	CodeParticipantNotFound = "PARTICIPANT_NOT_FOUND"
	CodeAlreadyResolved     = "ALREADY_RESOLVED"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeCodeTaken           = "CODE_TAKEN"
	CodeInternalError       = "INTERNAL_ERROR"
)
