package utils

import (
	"time"

	"heartlink_server/models"
)

// PreferredGender maps a user's gender to the gender shown in discovery.
// Outside the Men/Women pairing there is no gender restriction.
func PreferredGender(gender string) string {
	switch gender {
	case models.GenderMen:
		return models.GenderWomen
	case models.GenderWomen:
		return models.GenderMen
	default:
		return ""
	}
}

// AgeFromDOB computes the age in whole years from a YYYY-MM-DD date of
// birth. Returns 0 if the date does not parse.
func AgeFromDOB(dob string) int {
	birthDate, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0
	}

	now := time.Now()
	age := now.Year() - birthDate.Year()
	if now.YearDay() < birthDate.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
