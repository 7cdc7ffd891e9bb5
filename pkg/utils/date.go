package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// AgeAt calcula a idade em anos completos na data de referência
func AgeAt(dateOfBirth time.Time, ref time.Time) int {
	age := ref.Year() - dateOfBirth.Year()

	// Ainda não fez aniversário este ano
	anniversary := time.Date(ref.Year(), dateOfBirth.Month(), dateOfBirth.Day(), 0, 0, 0, 0, time.UTC)
	if ref.Before(anniversary) {
		age--
	}

	return age
}

// DaysSince retorna os dias completos decorridos desde a data informada
func DaysSince(t time.Time, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}
