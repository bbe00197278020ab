package domain

// CalendarAttributes результат детерминированного пересчёта даты рождения
// в атрибуты Четырёх Столпов. Возвращается внешним календарным сервисом
// и записывается в профиль целиком, без частичных обновлений.
type CalendarAttributes struct {
	YearStem    string `json:"year_stem"`
	YearBranch  string `json:"year_branch"`
	MonthStem   string `json:"month_stem"`
	MonthBranch string `json:"month_branch"`
	DayStem     string `json:"day_stem"`
	DayBranch   string `json:"day_branch"`
	TimeStem    string `json:"time_stem"`
	TimeBranch  string `json:"time_branch"`

	ElementFire  int `json:"fire"`
	ElementEarth int `json:"earth"`
	ElementMetal int `json:"metal"`
	ElementWater int `json:"water"`
	ElementWood  int `json:"wood"`

	TenGodsYear  []string `json:"ten_sin_year"`
	TenGodsMonth []string `json:"ten_sin_month"`
	TenGodsDay   []string `json:"ten_sin_day"`
	TenGodsTime  []string `json:"ten_sin_time"`

	MajorCycle int `json:"dae_won"`
}
