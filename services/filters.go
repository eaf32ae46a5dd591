package services

import (
	"strings"

	"gorm.io/gorm"

	"straw-monitor-service/models"
)

// isAll 空值或 "all" 表示不过滤
func isAll(v string) bool {
	return v == "" || v == "all"
}

// whereEq 等值过滤，取值为 all 时跳过
func whereEq(column, value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if isAll(value) {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// whereSearch 在多个列上做不区分大小写的子串匹配，任一列命中即可
func whereSearch(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		like := containsPattern(strings.ToLower(term))
		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			conds = append(conds, "LOWER("+col+") LIKE ? ESCAPE '!'")
			args = append(args, like)
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// likeEscaper 转义 LIKE 通配符，转义符用 ! 以兼容 MySQL 和 SQLite
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern 子串匹配的 LIKE 模式，需配合 ESCAPE '!'
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// whereBand 按分档过滤数值列: high >= hi, medium [lo, hi), low < lo
func whereBand(column, band string, lo, hi int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch band {
		case "high":
			return db.Where(column+" >= ?", hi)
		case "medium":
			return db.Where(column+" >= ? AND "+column+" < ?", lo, hi)
		case "low":
			return db.Where(column+" < ?", lo)
		default:
			return db
		}
	}
}

// findPage 统计总数后按需分页查询
func findPage[T any](query *gorm.DB, page models.PaginationQuery, order string, dest *[]T) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}

	q := query.Session(&gorm.Session{}).Order(order)
	if page = page.Normalize(); page.Enabled() {
		q = q.Offset(page.Offset()).Limit(page.PageSize)
	}
	if err := q.Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
