package models

// IDSequence backs the human-readable sequential identifiers (EMP0001,
// AST0001, ASG0001). One row per entity table; the value is incremented with
// a single UPDATE inside the caller's transaction, so concurrent creates
// serialize on the row lock instead of racing a COUNT(*).
type IDSequence struct {
	Name  string `gorm:"primarykey;type:varchar(32)"`
	Value int64  `gorm:"not null;default:0"`
}
