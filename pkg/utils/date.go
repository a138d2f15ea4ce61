package utils

import "time"

// MonthPeriod representa um mês do calendário com o primeiro e o último dia
type MonthPeriod struct {
	Year      int
	Month     int // 1-12
	StartDate time.Time
	EndDate   time.Time
}

// Label retorna o período no formato yyyy-mm
func (p MonthPeriod) Label() string {
	return p.StartDate.Format("2006-01")
}

// LastNMonths retorna os últimos n meses terminando no mês de referência (inclusive),
// do mais recente para o mais antigo, usando o fuso da data de referência.
func LastNMonths(reference time.Time, n int) []MonthPeriod {
	if n <= 0 {
		return []MonthPeriod{}
	}

	periods := make([]MonthPeriod, 0, n)
	for i := 0; i < n; i++ {
		first := time.Date(reference.Year(), reference.Month()-time.Month(i), 1, 0, 0, 0, 0, reference.Location())
		// dia 0 do mês seguinte é o último dia do mês atual
		last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, first.Location())

		periods = append(periods, MonthPeriod{
			Year:      first.Year(),
			Month:     int(first.Month()),
			StartDate: first,
			EndDate:   last,
		})
	}

	return periods
}
