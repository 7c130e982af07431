package mentors

import (
	"context"
	"strings"

	"github.com/angelmondragon/mentormatch-backend/pkg/db"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	"github.com/angelmondragon/mentormatch-backend/pkg/types"
	"gorm.io/gorm"
)

// OrderBy selects the mentor listing sort.
type OrderBy string

const (
	OrderByDefault OrderBy = ""
	OrderBySkill   OrderBy = "skill"
	OrderByName    OrderBy = "name"
)

// ParseOrderBy maps the query value; anything unknown keeps id order.
func ParseOrderBy(value string) OrderBy {
	switch OrderBy(strings.TrimSpace(value)) {
	case OrderBySkill:
		return OrderBySkill
	case OrderByName:
		return OrderByName
	default:
		return OrderByDefault
	}
}

// Row is one mentor joined with their profile.
type Row struct {
	ID       int64
	Email    string
	Name     string
	Bio      string
	Skills   types.SkillSet
	ImageKey *string
}

// Repository runs the mentor listing query.
type Repository struct {
	db      *gorm.DB
	dialect string
}

func NewRepository(conn *gorm.DB, dialect string) *Repository {
	return &Repository{db: conn, dialect: dialect}
}

// List filters by a case-sensitive substring of the joined skills text and
// sorts in the database.
func (r *Repository) List(ctx context.Context, skillFilter string, orderBy OrderBy) ([]Row, error) {
	q := r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.id AS id, u.email AS email, u.name AS name, COALESCE(p.bio, '') AS bio, COALESCE(p.skills, '') AS skills, p.image_key AS image_key").
		Joins("LEFT JOIN mentor_profiles AS p ON p.user_id = u.id").
		Where("u.role = ?", enums.UserRoleMentor)

	if skillFilter != "" {
		if r.dialect == db.DialectSQLite {
			// SQLite LIKE folds ASCII case; instr does not.
			q = q.Where("instr(COALESCE(p.skills, ''), ?) > 0", skillFilter)
		} else {
			q = q.Where(`COALESCE(p.skills, '') LIKE ? ESCAPE '\'`, "%"+escapeLike(skillFilter)+"%")
		}
	}

	switch orderBy {
	case OrderBySkill:
		q = q.Order(skillOrder(r.dialect)).Order("u.id ASC")
	case OrderByName:
		q = q.Order("u.name ASC").Order("u.id ASC")
	default:
		q = q.Order("u.id ASC")
	}

	var rows []Row
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// skillOrder sorts the joined skills text bytewise. SQLite compares with
// BINARY already; Postgres needs the "C" collation to stop locale rules from
// skipping punctuation such as the separator.
func skillOrder(dialect string) string {
	if dialect == db.DialectSQLite {
		return "skills ASC"
	}
	return `skills COLLATE "C" ASC`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
