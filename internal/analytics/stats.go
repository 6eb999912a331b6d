package analytics

import (
	"time"

	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"
)

type DailyStat struct {
	Day       string `gorm:"column:d" json:"day"`
	PageViews int64  `gorm:"column:pv" json:"page_views"`
	Uniques   int64  `gorm:"column:uv" json:"unique_visitors"`
}

type PathStat struct {
	Path  string `gorm:"column:path" json:"path"`
	Count int64  `gorm:"column:c" json:"count"`
}

type Summary struct {
	Total      int64       `json:"total"`
	Last24h    int64       `json:"last_24h"`
	Uniques30d int64       `json:"unique_visitors_30d"`
	Daily      []DailyStat `json:"daily"`
	TopPaths   []PathStat  `json:"top_paths"`
}

// CountBetween, [from, to) aralığındaki ziyaret sayısı; to sıfırsa açık uç.
func CountBetween(from, to time.Time) int64 {
	var n int64
	q := database.DB.Model(&models.Visit{}).Where("ts >= ?", from)
	if !to.IsZero() {
		q = q.Where("ts < ?", to)
	}
	q.Count(&n)
	return n
}

func CountAll() int64 {
	var n int64
	database.DB.Model(&models.Visit{}).Count(&n)
	return n
}

// Load, admin istatistik ekranının tüm sayılarını toplar (30 günlük pencere).
func Load(now time.Time) (Summary, error) {
	since30 := now.AddDate(0, 0, -30)
	since1 := now.Add(-24 * time.Hour)

	s := Summary{
		Total:   CountAll(),
		Last24h: CountBetween(since1, time.Time{}),
	}

	if err := database.DB.Model(&models.Visit{}).
		Where("ts >= ?", since30).
		Distinct("ip_hash").
		Count(&s.Uniques30d).Error; err != nil {
		return s, err
	}

	if err := database.DB.Raw(`
		SELECT ts::date AS d,
		       COUNT(*) AS pv,
		       COUNT(DISTINCT ip_hash) AS uv
		FROM visits
		WHERE ts >= ?
		GROUP BY ts::date
		ORDER BY d DESC;
	`, since30).Scan(&s.Daily).Error; err != nil {
		return s, err
	}

	if err := database.DB.Raw(`
		SELECT path, COUNT(*) AS c
		FROM visits
		WHERE ts >= ?
		GROUP BY path
		ORDER BY c DESC
		LIMIT 10;
	`, since30).Scan(&s.TopPaths).Error; err != nil {
		return s, err
	}

	return s, nil
}
