package sajucal

import "github.com/TBOO-AI/agent/internal/domain"

// calendarRequest данные рождения для пересчёта
type calendarRequest struct {
	BirthDate  string `json:"birth_date"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
	Gender     string `json:"gender"`
}

// calendarResponse ответ календарного сервиса
type calendarResponse struct {
	StemBranch struct {
		YearStem    string `json:"year_stem"`
		YearBranch  string `json:"year_branch"`
		MonthStem   string `json:"month_stem"`
		MonthBranch string `json:"month_branch"`
		DayStem     string `json:"day_stem"`
		DayBranch   string `json:"day_branch"`
		TimeStem    string `json:"time_stem"`
		TimeBranch  string `json:"time_branch"`
	} `json:"stem_branch"`
	Oheng struct {
		Fire  int `json:"fire"`
		Earth int `json:"earth"`
		Metal int `json:"metal"`
		Water int `json:"water"`
		Wood  int `json:"wood"`
	} `json:"oheng"`
	TenSin struct {
		Year  []string `json:"year"`
		Month []string `json:"month"`
		Day   []string `json:"day"`
		Time  []string `json:"time"`
	} `json:"10sin"`
	DaeWon int `json:"dae_won"`
}

// toDomain переводит ответ сервиса в доменные атрибуты
func (r *calendarResponse) toDomain() *domain.CalendarAttributes {
	return &domain.CalendarAttributes{
		YearStem:    r.StemBranch.YearStem,
		YearBranch:  r.StemBranch.YearBranch,
		MonthStem:   r.StemBranch.MonthStem,
		MonthBranch: r.StemBranch.MonthBranch,
		DayStem:     r.StemBranch.DayStem,
		DayBranch:   r.StemBranch.DayBranch,
		TimeStem:    r.StemBranch.TimeStem,
		TimeBranch:  r.StemBranch.TimeBranch,

		ElementFire:  r.Oheng.Fire,
		ElementEarth: r.Oheng.Earth,
		ElementMetal: r.Oheng.Metal,
		ElementWater: r.Oheng.Water,
		ElementWood:  r.Oheng.Wood,

		TenGodsYear:  r.TenSin.Year,
		TenGodsMonth: r.TenSin.Month,
		TenGodsDay:   r.TenSin.Day,
		TenGodsTime:  r.TenSin.Time,

		MajorCycle: r.DaeWon,
	}
}
