package repo

import (
	"strings"
	"time"

	"booking-app/internal/domain/shows"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// nameContains filters on a case-insensitive substring of the name column.
// Postgres gets ILIKE; SQLite's LIKE is already case-insensitive for ASCII.
func nameContains(db *gorm.DB, term string) *gorm.DB {
	op := "LIKE"
	if db.Dialector.Name() == "postgres" {
		op = "ILIKE"
	}
	pattern := "%" + likeEscaper.Replace(term) + "%"
	return db.Where("name "+op+" ? ESCAPE '\\'", pattern)
}

// nameTaken reports whether another row of model already uses name.
func nameTaken(tx *gorm.DB, model interface{}, name string, exceptID uint) (bool, error) {
	q := tx.Model(model).Where("name = ?", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func ownerShowsQuery(db *gorm.DB, ownerID uint, role shows.Role) *gorm.DB {
	return db.Model(&shows.Show{}).
		Where(role.Column()+" = ?", ownerID)
}

func upcomingShowsQuery(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Model(&shows.Show{}).
		Where("start_time > ?", now.UTC())
}
