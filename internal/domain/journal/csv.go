package journal

// CSV column names shared by export and import
const (
	CSVColumnDate        = "Date"
	CSVColumnSymptoms    = "Symptoms"
	CSVColumnMood        = "Mood"
	CSVColumnSleepHours  = "Sleep Hours"
	CSVColumnWaterIntake = "Water Intake"
	CSVColumnNotes       = "Notes"
)

// CSVColumns returns the export column order
func CSVColumns() []string {
	return []string{
		CSVColumnDate,
		CSVColumnSymptoms,
		CSVColumnMood,
		CSVColumnSleepHours,
		CSVColumnWaterIntake,
		CSVColumnNotes,
	}
}
