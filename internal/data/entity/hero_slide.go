package entity

// HeroSlide is seed/admin managed static content ordered by SortOrder.
type HeroSlide struct {
	BaseSimple
	Title     string `db:"title"`
	Image     string `db:"image"`
	IsLocal   bool   `db:"is_local"`
	SortOrder int    `db:"sort_order"`
}
