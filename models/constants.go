package models

// UsersTable is the DynamoDB table name for user records
const UsersTable = "Users"

// Secondary indexes on the Users table
const (
	EmailIndexName = "EmailIndex"
	PhoneIndexName = "PhoneIndex"
)

// Gender values carried over from the registration form
const (
	GenderMen   = "Men"
	GenderWomen = "Women"
)
