package model

// Period is an academic term. At most one row has IsCurrent = true at any
// time; every operation that sets the flag clears it on all other rows first,
// inside one transaction. The partial unique index backs that rule against
// concurrent writers: two transactions that each clear-then-set cannot both
// commit a true flag.
type Period struct {
	Name      string `gorm:"size:50;primaryKey" json:"name"`
	IsCurrent bool   `gorm:"not null;default:false;uniqueIndex:idx_periods_one_current,where:is_current = true" json:"is_current"`
}
