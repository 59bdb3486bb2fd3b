package transfer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dfreire7/repasse/internal/report"
	"github.com/dfreire7/repasse/internal/schema"
)

// monthNames is the fixed calendar lookup used by monthly period labels.
var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Label renders the period label convention of the payout ledger:
// "DD/MM/YYYY" for a daily reference date, "MonthName/YYYY" for a monthly
// reference month.
func Label(key PeriodKey) string {
	if key.Cadence == report.CadenceDaily {
		return fmt.Sprintf("%02d/%02d/%04d", key.Day, int(key.Month), key.Year)
	}

	return fmt.Sprintf("%s/%04d", monthNames[int(key.Month)-1], key.Year)
}

// PeriodOf builds the structured period key for an override slice.
// Daily cadence needs the reference date, monthly the reference month;
// without the relevant qualifier there is no period to match.
func PeriodOf(cadence report.Cadence, month, date string) (PeriodKey, bool) {
	if cadence == report.CadenceDaily {
		t, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return PeriodKey{}, false
		}

		return PeriodKey{Cadence: cadence, Year: t.Year(), Month: t.Month(), Day: t.Day()}, true
	}

	t, err := time.Parse("2006-01", month)
	if err != nil {
		return PeriodKey{}, false
	}

	return PeriodKey{Cadence: report.CadenceMonthly, Year: t.Year(), Month: t.Month()}, true
}

// ParseLabel recovers a structured period from a legacy free-text label.
// Accepted forms are "DD/MM/YYYY" and "MonthName/YYYY" (month name matched
// without regard to case or accents). Anything else is reported unparsed.
func ParseLabel(label string) (PeriodKey, bool) {
	parts := strings.Split(strings.TrimSpace(label), "/")

	switch len(parts) {
	case 3:
		day, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		year, err3 := strconv.Atoi(parts[2])

		if err1 != nil || err2 != nil || err3 != nil {
			return PeriodKey{}, false
		}

		if day < 1 || day > 31 || month < 1 || month > 12 {
			return PeriodKey{}, false
		}

		return PeriodKey{
			Cadence: report.CadenceDaily,
			Year:    year,
			Month:   time.Month(month),
			Day:     day,
		}, true

	case 2:
		year, err := strconv.Atoi(parts[1])
		if err != nil {
			return PeriodKey{}, false
		}

		name := schema.Normalize(parts[0])
		for i, m := range monthNames {
			if schema.Normalize(m) == name {
				return PeriodKey{
					Cadence: report.CadenceMonthly,
					Year:    year,
					Month:   time.Month(i + 1),
				}, true
			}
		}
	}

	return PeriodKey{}, false
}
