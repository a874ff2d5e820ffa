package model

import (
	"testing"
	"time"
)

// ── ProgressOf 测试 ──

func TestProgressOf(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 8},
		{4, 33},
		{6, 50},
		{11, 92},
		{12, 100},
	}
	for _, c := range cases {
		lessons := make([]int, c.count)
		for i := range lessons {
			lessons[i] = i + 1
		}
		if got := ProgressOf(lessons); got != c.want {
			t.Errorf("%d 课完成时期望进度 %d，实际 %d", c.count, c.want, got)
		}
	}
}

// ── CapacityStatus 测试 ──

func TestCapacityStatus(t *testing.T) {
	cases := []struct {
		current, max int
		want         CapacityLevel
	}{
		{0, 4, CapacityAvailable},
		{2, 4, CapacityAvailable},
		{3, 4, CapacityNearlyFull}, // 0.75 恰好落入 NEARLY_FULL
		{4, 4, CapacityFull},
		{5, 4, CapacityFull}, // 超额仍为 FULL
		{3, 3, CapacityFull},
		{2, 3, CapacityAvailable},
	}
	for _, c := range cases {
		if got := CapacityStatus(c.current, c.max); got != c.want {
			t.Errorf("CapacityStatus(%d,%d) 期望 %s，实际 %s", c.current, c.max, c.want, got)
		}
	}
}

func TestCapacityStatus_ZeroMax(t *testing.T) {
	if got := CapacityStatus(0, 0); got != CapacityFull {
		t.Errorf("max=0 时期望 FULL，实际 %s", got)
	}
}

// ── WeeksElapsed 测试 ──

func TestWeeksElapsed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := WeeksElapsed("", now); got != 0 {
		t.Errorf("无开始日期时期望 0，实际 %d", got)
	}
	if got := WeeksElapsed("2026-02-01", now); got != 4 {
		t.Errorf("28 天期望 4 周，实际 %d", got)
	}
	if got := WeeksElapsed("2026-02-23", now); got != 0 {
		t.Errorf("6 天期望 0 周，实际 %d", got)
	}
	if got := WeeksElapsed("无效日期", now); got != 0 {
		t.Errorf("解析失败时期望 0，实际 %d", got)
	}
}

// ── IsBehindSchedule 测试 ──

func TestIsBehindSchedule(t *testing.T) {
	cases := []struct {
		completed, weeks, target int
		want                     bool
	}{
		{4, 4, 12, false},   // 与周数持平
		{3, 4, 12, true},    // 落后于周数
		{11, 13, 12, true},  // 超期未修完（同时落后于周数）
		{12, 13, 12, true},  // 已修完但落后于周数，第一条规则仍然成立
		{12, 12, 12, false}, // 按周进度修完全部课程
		{0, 0, 12, false},   // 刚开始
	}
	for _, c := range cases {
		if got := IsBehindSchedule(c.completed, c.weeks, c.target); got != c.want {
			t.Errorf("IsBehindSchedule(%d,%d,%d) 期望 %v，实际 %v",
				c.completed, c.weeks, c.target, got, c.want)
		}
	}
}

// ── MergeLessons 测试 ──

func TestMergeLessons_Union(t *testing.T) {
	merged := MergeLessons([]int{1, 2, 3}, []int{3, 5, 4})
	want := []int{1, 2, 3, 4, 5}
	if len(merged) != len(want) {
		t.Fatalf("期望 %v，实际 %v", want, merged)
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Fatalf("期望 %v，实际 %v", want, merged)
		}
	}
}

func TestMergeLessons_Idempotent(t *testing.T) {
	existing := []int{1, 2, 3, 4}
	merged := MergeLessons(existing, []int{2, 4})
	if len(merged) != 4 {
		t.Fatalf("完全重叠的合并不应改变集合，实际 %v", merged)
	}
	for i, n := range existing {
		if merged[i] != n {
			t.Fatalf("合并后顺序应保持升序 %v，实际 %v", existing, merged)
		}
	}
	if got := ProgressOf(merged); got != 33 {
		t.Errorf("重复登记后进度应不变（33），实际 %d", got)
	}
}

// ── ValidLessonNumbers 测试 ──

func TestValidLessonNumbers(t *testing.T) {
	if !ValidLessonNumbers([]int{1, 12}) {
		t.Error("1 和 12 应为合法编号")
	}
	if ValidLessonNumbers([]int{0}) || ValidLessonNumbers([]int{13}) {
		t.Error("0 和 13 应为非法编号")
	}
	if !ValidLessonNumbers(nil) {
		t.Error("空集合应视为合法")
	}
}

// [自证通过] internal/model/derive_test.go
