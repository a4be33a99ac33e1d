package model

// Position is a "plaza". Deleting one is blocked while any assistantship
// still references it; that guard lives in the repository, not in a DB
// constraint, because assistantships reference the plaza by name only.
type Position struct {
	Name string `gorm:"size:100;primaryKey" json:"name"`
}

// AssistantType is the "tipo_ayudante" catalog (e.g. academic, lab).
type AssistantType struct {
	Type string `gorm:"size:50;primaryKey" json:"type"`
}
