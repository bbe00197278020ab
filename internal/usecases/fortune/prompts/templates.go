package prompts

import (
	"fmt"
	"strings"

	"github.com/TBOO-AI/agent/internal/domain"
)

// Locale язык шаблонов. Один набор шаблонов, выбирается конфигом -
// никаких параллельных деревьев промптов под каждый язык.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleKO Locale = "ko"
)

// ParseLocale разбирает значение конфига; неизвестные значения - en
func ParseLocale(s string) Locale {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ko", "kr":
		return LocaleKO
	default:
		return LocaleEN
	}
}

// set все шаблоны одного языка
type set struct {
	extractSlots    string
	collectInfo     string
	extractConcern  string
	concernQuestion string
	reading         string
}

var sets = map[Locale]set{
	LocaleEN: {
		extractSlots: `Please extract the following information from the user's response:
Response: %s
Information to find: %s

The following various formats are also accepted:
- Birth date: "1990-01-01", "January 1, 1990", "19900101" etc.
- Time: "09:30", "9:30 AM", "9:30 in the morning" etc.
- Location: "Seoul", "Gangnam-gu, Seoul", "Gangnam" etc.
- Gender: please output only as "male" or "female"

Please output in JSON format. Example:
{
  "birth_date": "1990-01-01",
  "birth_time": "09:30",
  "birth_place": "Seoul",
  "gender": "male"
}

- The date of birth must be extracted in the same format as YYYY-MM-DD.
- Only output 00:00 for birth time if the user explicitly states they don't know the exact time.
- Don't collect data that the user hasn't provided in their response.
- Make sure to exclude any information that couldn't be found.`,

		collectInfo: `You are Diin! Your role is to analyze people's Four Pillars of Destiny and provide consultation based on their concerns.
Please naturally ask the user for the required information (date of birth, birth time, birth place, gender).
Previously received information: %s
Still needed information: %s

Please ask for the missing information while maintaining a casual and natural conversation.
Please write a text within 200 characters.`,

		extractConcern: `Extract information from the user's response:
Response: %s
Information to find: concern

Output in JSON format:
Example:
{
  "concern": "I want to know my fortune"
}

Do not collect data that the user has not provided.
Exclude any information that cannot be found.`,

		concernQuestion: `What concerns would you like to discuss?`,

		reading: `You are Diin, a professional fortune teller. Please analyze the following saju (Four Pillars) information and provide advice for the concern:

- Birth Information
Date of Birth: %s
Birth Time: %s
Gender: %s
- Four Pillars
Year Pillar: %s %s
Month Pillar: %s %s
Day Pillar: %s %s
Hour Pillar: %s %s
- Five Elements: fire : %d, earth : %d, metal : %d, water : %d, wood : %d
- Ten Gods
Year: %s
Month: %s
Day: %s
Hour: %s
- Major Fortune Cycle: Changes in %d-year cycles
- Concern: %s

Please include the following in your response without numbering, in natural sentences:
- Basic personality analysis based on the Four Pillars
- Interpretation of the concern based on other information and personality traits
- Advice and solutions
- When using terms related to fortune-telling, Chinese characters must be used
Please keep the response short, concise, and in plain text format.
Write in simple sentences without HTML or styling.`,
	},

	LocaleKO: {
		extractSlots: `사용자의 답변에서 다음 정보를 추출해 주세요:
답변: %s
찾아야 하는 정보: %s

다음과 같은 다양한 형식도 허용됩니다:
- 생년월일: "1990-01-01", "1990년 1월 1일", "19900101" 등
- 시간: "09:30", "오전 9시 30분", "아침 9시 반" 등
- 장소: "서울", "서울 강남구", "강남" 등
- 성별: 반드시 "male" 또는 "female"로만 출력

JSON 형식으로 출력해 주세요. 예시:
{
  "birth_date": "1990-01-01",
  "birth_time": "09:30",
  "birth_place": "서울",
  "gender": "male"
}

- 생년월일은 반드시 YYYY-MM-DD 형식으로 추출해야 합니다.
- 태어난 시간을 모른다고 명시적으로 말한 경우에만 00:00을 출력하세요.
- 답변에 없는 정보는 수집하지 마세요.
- 찾을 수 없는 정보는 반드시 제외하세요.`,

		collectInfo: `너는 디인이야! 사람들의 사주를 분석하고 고민에 대해 상담해 주는 역할이야.
필요한 정보(생년월일, 태어난 시간, 태어난 곳, 성별)를 자연스럽게 물어봐 줘.
이미 받은 정보: %s
아직 필요한 정보: %s

자연스럽고 편안한 대화를 유지하면서 부족한 정보를 물어봐 줘.
200자 이내로 작성해 줘.`,

		extractConcern: `사용자의 답변에서 정보를 추출해 주세요:
답변: %s
찾아야 하는 정보: concern

JSON 형식으로 출력:
예시:
{
  "concern": "내 운세가 궁금해요"
}

답변에 없는 정보는 수집하지 마세요.
찾을 수 없는 정보는 제외하세요.`,

		concernQuestion: `어떤 고민을 이야기해 보고 싶으신가요?`,

		reading: `너는 디인, 전문 역술가야. 다음 사주 정보를 분석해서 고민에 대한 조언을 해 줘:

- 출생 정보
생년월일: %s
태어난 시간: %s
성별: %s
- 사주팔자
년주: %s %s
월주: %s %s
일주: %s %s
시주: %s %s
- 오행: 화 : %d, 토 : %d, 금 : %d, 수 : %d, 목 : %d
- 십신
년: %s
월: %s
일: %s
시: %s
- 대운: %d년 주기로 변화
- 고민: %s

다음 내용을 번호 없이 자연스러운 문장으로 포함해 줘:
- 사주에 기반한 기본 성격 분석
- 성격과 다른 정보를 바탕으로 한 고민 해석
- 조언과 해결책
- 역학 용어를 쓸 때는 반드시 한자를 사용할 것
답변은 짧고 간결하게, 일반 텍스트로 작성해 줘.
HTML이나 스타일 없이 단순한 문장으로 써 줘.`,
	},
}

func localeSet(locale Locale) set {
	if s, ok := sets[locale]; ok {
		return s
	}
	return sets[LocaleEN]
}

// ExtractSlots промпт извлечения слотов анкеты; ограничен только
// недостающими слотами
func ExtractSlots(locale Locale, userText string, missingSlots []string) string {
	return fmt.Sprintf(localeSet(locale).extractSlots, userText, strings.Join(missingSlots, ", "))
}

// CollectInfo промпт для уточняющего вопроса о недостающих слотах
func CollectInfo(locale Locale, existingInfo string, missingSlots []string) string {
	return fmt.Sprintf(localeSet(locale).collectInfo, existingInfo, strings.Join(missingSlots, ", "))
}

// ExtractConcern промпт извлечения темы запроса
func ExtractConcern(locale Locale, userText string) string {
	return fmt.Sprintf(localeSet(locale).extractConcern, userText)
}

// ConcernQuestion фиксированный вопрос, когда тема не извлеклась
func ConcernQuestion(locale Locale) string {
	return localeSet(locale).concernQuestion
}

// Reading промпт итогового толкования: весь профиль + тема запроса
func Reading(locale Locale, p *domain.Profile, concern string) string {
	return fmt.Sprintf(localeSet(locale).reading,
		p.BirthDate,
		p.BirthTime,
		p.Gender,
		p.YearStem, p.YearBranch,
		p.MonthStem, p.MonthBranch,
		p.DayStem, p.DayBranch,
		p.TimeStem, p.TimeBranch,
		p.ElementFire, p.ElementEarth, p.ElementMetal, p.ElementWater, p.ElementWood,
		p.TenGodsYear,
		p.TenGodsMonth,
		p.TenGodsDay,
		p.TenGodsTime,
		p.MajorCycle,
		concern,
	)
}
