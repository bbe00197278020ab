package fortune

import (
	"log/slog"

	"github.com/TBOO-AI/agent/internal/ports/cache"
	"github.com/TBOO-AI/agent/internal/ports/events"
	"github.com/TBOO-AI/agent/internal/ports/repository"
	"github.com/TBOO-AI/agent/internal/ports/service"
	"github.com/TBOO-AI/agent/internal/usecases/fortune/prompts"
)

// Config параметры конвейера обработки упоминаний
type Config struct {
	BotHandle        string `envconfig:"BOT_HANDLE" required:"true"`
	Locale           string `envconfig:"LOCALE" default:"en"`
	MaxPostLength    int    `envconfig:"MAX_POST_LENGTH" default:"250"`
	PostDelayMillis  int    `envconfig:"POST_DELAY" default:"300"` // пауза между постами, мс
	FetchLimit       int    `envconfig:"FETCH_LIMIT" default:"30"`
	AnsweredTTLHours int    `envconfig:"ANSWERED_TTL" default:"72"` // TTL кэша отвеченных, часы
}

// Service бизнес-логика бота: упоминание -> уточняющий вопрос или
// готовое толкование -> цепочка постов-ответов
type Service struct {
	ProfileRepo      repository.IProfileRepo
	ThreadRepo       repository.IThreadRepo
	ConversationRepo repository.IConversationRepo
	Cache            cache.Cache
	Generator        service.IGenerator
	Calendar         service.ICalendarResolver
	Social           service.ISocialClient
	Events           events.IExchangeProducer // может быть nil - события не обязательны
	Log              *slog.Logger

	cfg    *Config
	locale prompts.Locale
}

// New создаёт сервис конвейера. Все клиенты создаются один раз на
// старте процесса и передаются сюда - никаких синглтонов уровня пакета.
func New(
	cfg *Config,
	profileRepo repository.IProfileRepo,
	threadRepo repository.IThreadRepo,
	conversationRepo repository.IConversationRepo,
	cacheClient cache.Cache,
	generator service.IGenerator,
	calendar service.ICalendarResolver,
	social service.ISocialClient,
	eventsProducer events.IExchangeProducer,
	log *slog.Logger,
) *Service {
	return &Service{
		ProfileRepo:      profileRepo,
		ThreadRepo:       threadRepo,
		ConversationRepo: conversationRepo,
		Cache:            cacheClient,
		Generator:        generator,
		Calendar:         calendar,
		Social:           social,
		Events:           eventsProducer,
		Log:              log,
		cfg:              cfg,
		locale:           prompts.ParseLocale(cfg.Locale),
	}
}
