package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Названия слотов анкеты в порядке, в котором бот их запрашивает
const (
	SlotBirthDate  = "birth_date"
	SlotBirthTime  = "birth_time"
	SlotBirthPlace = "birth_place"
	SlotGender     = "gender"
)

// Нормализованные значения пола
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// UnknownBirthTime сентинел для случая, когда пользователь явно не знает время рождения
const UnknownBirthTime = "00:00"

// slotOrder фиксированный порядок слотов анкеты
var slotOrder = []string{SlotBirthDate, SlotBirthTime, SlotBirthPlace, SlotGender}

// SlotValues частичный результат извлечения слотов из свободного текста.
// Содержит только слоты, которые пользователь реально указал.
type SlotValues map[string]string

// Profile саджу-профиль пользователя: четыре слота анкеты + производные
// календарные атрибуты. Хранится как одна строка в saju_profiles.
type Profile struct {
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Handle     string    `json:"handle" db:"handle"`
	BirthDate  string    `json:"birth_date" db:"birth_date"`
	BirthTime  string    `json:"birth_time" db:"birth_time"`
	BirthPlace string    `json:"birth_place" db:"birth_place"`
	Gender     string    `json:"gender" db:"gender"`

	YearStem    string `json:"year_stem" db:"year_stem"`
	YearBranch  string `json:"year_branch" db:"year_branch"`
	MonthStem   string `json:"month_stem" db:"month_stem"`
	MonthBranch string `json:"month_branch" db:"month_branch"`
	DayStem     string `json:"day_stem" db:"day_stem"`
	DayBranch   string `json:"day_branch" db:"day_branch"`
	TimeStem    string `json:"time_stem" db:"time_stem"`
	TimeBranch  string `json:"time_branch" db:"time_branch"`

	ElementFire  int `json:"element_fire" db:"element_fire"`
	ElementEarth int `json:"element_earth" db:"element_earth"`
	ElementMetal int `json:"element_metal" db:"element_metal"`
	ElementWater int `json:"element_water" db:"element_water"`
	ElementWood  int `json:"element_wood" db:"element_wood"`

	TenGodsYear  string `json:"ten_sin_year" db:"ten_sin_year"`
	TenGodsMonth string `json:"ten_sin_month" db:"ten_sin_month"`
	TenGodsDay   string `json:"ten_sin_day" db:"ten_sin_day"`
	TenGodsTime  string `json:"ten_sin_time" db:"ten_sin_time"`

	MajorCycle int `json:"dae_won" db:"dae_won"`

	IsSajuActive bool `json:"is_saju_active" db:"is_saju_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// slotValue возвращает текущее значение слота по имени
func (p *Profile) slotValue(name string) string {
	switch name {
	case SlotBirthDate:
		return p.BirthDate
	case SlotBirthTime:
		return p.BirthTime
	case SlotBirthPlace:
		return p.BirthPlace
	case SlotGender:
		return p.Gender
	}
	return ""
}

// MissingSlots возвращает незаполненные слоты анкеты в фиксированном порядке
func (p *Profile) MissingSlots() []string {
	var missing []string
	for _, name := range slotOrder {
		if strings.TrimSpace(p.slotValue(name)) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// ApplySlots переносит в профиль только известные и непустые слоты.
// Ключи, отсутствующие в values, не трогаются - слот никогда не затирается.
// Нераспознанные ключи игнорируются.
func (p *Profile) ApplySlots(values SlotValues) {
	for _, name := range slotOrder {
		value, ok := values[name]
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch name {
		case SlotBirthDate:
			p.BirthDate = value
		case SlotBirthTime:
			p.BirthTime = value
		case SlotBirthPlace:
			p.BirthPlace = value
		case SlotGender:
			p.Gender = value
		}
	}
}

// SetCalendar записывает все производные календарные атрибуты и активирует
// профиль. Вызывается только когда все четыре слота заполнены; частичная
// запись производных полей не допускается.
func (p *Profile) SetCalendar(attrs *CalendarAttributes) {
	p.YearStem = attrs.YearStem
	p.YearBranch = attrs.YearBranch
	p.MonthStem = attrs.MonthStem
	p.MonthBranch = attrs.MonthBranch
	p.DayStem = attrs.DayStem
	p.DayBranch = attrs.DayBranch
	p.TimeStem = attrs.TimeStem
	p.TimeBranch = attrs.TimeBranch

	p.ElementFire = attrs.ElementFire
	p.ElementEarth = attrs.ElementEarth
	p.ElementMetal = attrs.ElementMetal
	p.ElementWater = attrs.ElementWater
	p.ElementWood = attrs.ElementWood

	p.TenGodsYear = strings.Join(attrs.TenGodsYear, ", ")
	p.TenGodsMonth = strings.Join(attrs.TenGodsMonth, ", ")
	p.TenGodsDay = strings.Join(attrs.TenGodsDay, ", ")
	p.TenGodsTime = strings.Join(attrs.TenGodsTime, ", ")

	p.MajorCycle = attrs.MajorCycle
	p.IsSajuActive = true
}
