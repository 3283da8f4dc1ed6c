package user

// User represents a user entity in the system.
type User struct {
	ID    string // ID is assigned by the store on insert and never changes
	Name  string // Name is free text, kept byte-for-byte
	Email string // Email is free text and may be empty
}
