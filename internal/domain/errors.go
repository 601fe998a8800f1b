package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidGroupName = errors.New("invalid group name")
	ErrInvalidUserName  = errors.New("invalid user name")
	ErrInvalidNumber    = errors.New("invalid number")

	// Group errors
	ErrGroupNotFound      = errors.New("group not found")
	ErrGroupAlreadyExists = errors.New("group already exists")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrEmptyGroup        = errors.New("group has no users")
)

// HTTPError для ответов HTTP API
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrGroupAlreadyExists: {Code: "GROUP_EXISTS", Message: "group_name already exists"},
	ErrUserAlreadyExists:  {Code: "USER_EXISTS", Message: "user_name already exists in group"},
	ErrGroupNotFound:      {Code: "NOT_FOUND", Message: "group not found"},
	ErrUserNotFound:       {Code: "NOT_FOUND", Message: "user not found"},
	ErrEmptyGroup:         {Code: "EMPTY_GROUP", Message: "group has no users"},
	ErrInvalidGroupName:   {Code: "INVALID_REQUEST", Message: "group_name must not be empty"},
	ErrInvalidUserName:    {Code: "INVALID_REQUEST", Message: "user_name must not be empty"},
	ErrInvalidNumber:      {Code: "INVALID_NUMBER", Message: "amount must be a finite number"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for target, httpErr := range ErrorMapping {
		if errors.Is(err, target) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
