package utils

// ProratedSalary computes the payable amount for a month from attendance.
// The base salary covers attended+absent scheduled days; pay is prorated by
// days actually attended, rounded to the nearest whole unit. A month with no
// scheduled days pays nothing.
func ProratedSalary(baseSalary int64, attendedDays, absentDays int32) int64 {
	scheduled := attendedDays + absentDays
	if scheduled <= 0 || baseSalary <= 0 {
		return 0
	}
	if absentDays == 0 {
		return baseSalary
	}
	// integer rounding: (base*attended + scheduled/2) / scheduled
	return (baseSalary*int64(attendedDays) + int64(scheduled)/2) / int64(scheduled)
}
