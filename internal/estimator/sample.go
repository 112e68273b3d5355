package estimator

// SampleSubjects returns a small built-in dataset, useful for quick checks
// and as the fallback when no other input is available.
func SampleSubjects() []Subject {
	return []Subject{
		{Name: "Alice", HeartRateBPM: 75.0, SleepHoursPerDay: 8.0, WorkHoursPerWeek: 40.0},
		{Name: "Bob", HeartRateBPM: 92.5, SleepHoursPerDay: 5.5, WorkHoursPerWeek: 65.0},
		{Name: "Charlie", HeartRateBPM: 81.0, SleepHoursPerDay: 7.0, WorkHoursPerWeek: 50.0},
		{Name: "Diana", HeartRateBPM: 68.0, SleepHoursPerDay: 9.5, WorkHoursPerWeek: 30.0},
	}
}
