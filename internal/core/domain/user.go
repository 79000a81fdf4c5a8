package domain

type User struct {
	Name         string
	Email        string
	Address      string
	Phone        string
	PasswordHash string
}
