package models

// Profitability derives the cached percentage from the running aggregates:
// 0 when income is 0, else (income-expenses)/income*100.
func Profitability(income, expenses float64) float64 {
	if income == 0 {
		return 0
	}
	return ((income - expenses) / income) * 100
}
