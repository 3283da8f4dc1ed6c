package user

// CreateUserRequest represents the request payload for creating a new user.
// Neither field is validated; empty values are forwarded to the store.
type CreateUserRequest struct {
	Name  string
	Email string
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID    string
	Name  string
	Email string
}
