package models

// Game group tags, in fixed display precedence.
const (
	GroupSutom  = "SUTOM"
	GroupLeMot  = "LE_MOT"
	GroupWordle = "WORDLE"
)

// GroupOrderExpr sorts games by group precedence then display order.
// Spelled as a CASE expression so it runs on any SQL dialect.
const GroupOrderExpr = "CASE group_name " +
	"WHEN 'SUTOM' THEN 1 " +
	"WHEN 'LE_MOT' THEN 2 " +
	"WHEN 'WORDLE' THEN 3 " +
	"ELSE 4 END, display_order"

// Game is one entry of the fixed daily-game catalog. The catalog is
// seeded once at startup and immutable afterwards.
type Game struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	GroupName    string `gorm:"size:20;not null" json:"group"`
	DisplayOrder int    `gorm:"not null" json:"display_order"`
}
