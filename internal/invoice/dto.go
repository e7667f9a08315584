package invoice

import "time"

// PeriodFromQuery resolves the requested period from query parameters. A
// month takes the "YYYY-MM" form; otherwise both from and to are required as
// "YYYY-MM-DD".
func PeriodFromQuery(month, from, to string) (Period, error) {
	if month != "" {
		return PeriodForMonth(month)
	}

	if from == "" || to == "" {
		return Period{}, ErrInvalidPeriod
	}

	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}

	return NewPeriod(start, end)
}
