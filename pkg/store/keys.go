package store

// Persisted key space. One JSON or scalar value per key; the shapes are part
// of the on-disk contract and must stay stable across releases.
const (
	// KeySobriety holds the sobriety start date as a bare ISO-8601 string.
	KeySobriety = "recovery_sobriety_date"

	// KeyJournal holds the journal entries as a JSON array.
	KeyJournal = "recovery_journal_entries"

	// KeyGoals holds the goals as a JSON array.
	KeyGoals = "recovery_goals"

	// KeyWorkbook holds the workbook responses as a JSON object mapping
	// question keys to free text.
	KeyWorkbook = "recovery_workbook_responses"

	// KeyWelcomeTip holds the one-shot welcome tip flag as "true"/"false".
	KeyWelcomeTip = "recovery_welcome_tip_dismissed"

	// KeySchema tags the store with its layout version so a future migration
	// has something to dispatch on. Written once, alongside the first save.
	KeySchema = "recovery_schema"

	// KeyJournalDraft holds the in-progress journal draft autosaved by the
	// compose view. Scratch state, excluded from export.
	KeyJournalDraft = "recovery_journal_draft"
)

// SchemaVersion is the current store layout version.
const SchemaVersion = "1"

// DataKeys lists the keys included in a full export, in export order. The
// welcome tip flag and scratch draft are deliberately absent.
func DataKeys() []string {
	return []string{KeySobriety, KeyJournal, KeyGoals, KeyWorkbook}
}
