package fortune

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/google/uuid"
)

type fakeProfileRepo struct {
	profiles      map[string]*domain.Profile
	mergeCalls    int
	calendarCalls int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.Profile{}}
}

func (r *fakeProfileRepo) GetByHandle(_ context.Context, handle string) (*domain.Profile, error) {
	p, ok := r.profiles[handle]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "profile", Err: fmt.Errorf("no profile for %s", handle)}
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	copied := *profile
	r.profiles[profile.Handle] = &copied
	return nil
}

func (r *fakeProfileRepo) MergeSlots(_ context.Context, profile *domain.Profile) error {
	r.mergeCalls++
	stored, ok := r.profiles[profile.Handle]
	if !ok {
		copied := *profile
		r.profiles[profile.Handle] = &copied
		return nil
	}
	stored.BirthDate = profile.BirthDate
	stored.BirthTime = profile.BirthTime
	stored.BirthPlace = profile.BirthPlace
	stored.Gender = profile.Gender
	return nil
}

func (r *fakeProfileRepo) UpdateCalendar(_ context.Context, profile *domain.Profile) error {
	r.calendarCalls++
	copied := *profile
	r.profiles[profile.Handle] = &copied
	return nil
}

type fakeThreadRepo struct {
	thread *domain.Thread
}

func (r *fakeThreadRepo) GetOrCreate(_ context.Context, userID uuid.UUID) (*domain.Thread, error) {
	if r.thread == nil {
		r.thread = &domain.Thread{ID: uuid.New(), UserID: userID, CreatedAt: time.Now()}
	}
	return r.thread, nil
}

type fakeConversationRepo struct {
	answered  map[string]bool
	inserted  [][]*domain.ConversationRecord
	existsErr error
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{answered: map[string]bool{}}
}

func (r *fakeConversationRepo) Insert(_ context.Context, records []*domain.ConversationRecord) error {
	r.inserted = append(r.inserted, records)
	for _, rec := range records {
		if rec.SourceMessageID != nil {
			r.answered[*rec.SourceMessageID] = true
		}
	}
	return nil
}

func (r *fakeConversationRepo) ExistsBySourceMessageID(_ context.Context, messageID string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	return r.answered[messageID], nil
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.values, key)
	return nil
}

func (c *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := c.values[key]
	return ok, nil
}

func (c *fakeCache) Close() error { return nil }

// fakeGenerator отдаёт заготовленные ответы по порядку вызовов
type fakeGenerator struct {
	responses []string
	prompts   []string
	err       error
}

func (g *fakeGenerator) Complete(_ context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.prompts = append(g.prompts, prompt)
	if len(g.responses) == 0 {
		return "", fmt.Errorf("fake generator exhausted after %d calls", len(g.prompts))
	}
	next := g.responses[0]
	g.responses = g.responses[1:]
	return next, nil
}

type fakeCalendar struct {
	attrs *domain.CalendarAttributes
	calls int
	err   error
}

func (c *fakeCalendar) Resolve(_ context.Context, _, _, _, _ string) (*domain.CalendarAttributes, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	if c.attrs != nil {
		return c.attrs, nil
	}
	return &domain.CalendarAttributes{
		YearStem: "Gap", YearBranch: "Ja",
		MonthStem: "Eul", MonthBranch: "Chuk",
		DayStem: "Byeong", DayBranch: "In",
		TimeStem: "Jeong", TimeBranch: "Myo",
		ElementFire: 2, ElementEarth: 1, ElementMetal: 1, ElementWater: 2, ElementWood: 2,
		TenGodsYear:  []string{"Bi-gyeon"},
		TenGodsMonth: []string{"Sik-sin"},
		TenGodsDay:   []string{"Il-gan"},
		TenGodsTime:  []string{"Jae-seong"},
		MajorCycle:   7,
	}, nil
}

type postedReply struct {
	text      string
	inReplyTo string
}

type fakeSocial struct {
	mentions  []*domain.InboundMessage
	posted    []postedReply
	failAt    int // индекс поста, на котором отказать; -1 - без отказов
	searchErr error
	loggedIn  bool
}

func newFakeSocial() *fakeSocial {
	return &fakeSocial{failAt: -1, loggedIn: true}
}

func (s *fakeSocial) SearchMentions(_ context.Context, _ string, _ int) ([]*domain.InboundMessage, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.mentions, nil
}

func (s *fakeSocial) PostReply(_ context.Context, text string, inReplyToID string) (string, error) {
	if s.failAt >= 0 && len(s.posted) == s.failAt {
		return "", &domain.DownstreamServiceError{Service: "platform", Err: fmt.Errorf("post rejected")}
	}
	s.posted = append(s.posted, postedReply{text: text, inReplyTo: inReplyToID})
	return fmt.Sprintf("post-%d", len(s.posted)), nil
}

func (s *fakeSocial) VerifyCredentials(_ context.Context) (bool, error) {
	return s.loggedIn, nil
}

type recordedEvent struct {
	messageID  string
	handle     string
	threadID   uuid.UUID
	chunkCount int
}

type fakeProducer struct {
	events []recordedEvent
}

func (p *fakeProducer) SendExchangeRecorded(_ context.Context, messageID string, handle string, threadID uuid.UUID, chunkCount int) error {
	p.events = append(p.events, recordedEvent{messageID, handle, threadID, chunkCount})
	return nil
}

func (p *fakeProducer) Close() error { return nil }

type testEnv struct {
	svc           *Service
	profiles      *fakeProfileRepo
	threads       *fakeThreadRepo
	conversations *fakeConversationRepo
	cache         *fakeCache
	generator     *fakeGenerator
	calendar      *fakeCalendar
	social        *fakeSocial
	producer      *fakeProducer
}

func newTestEnv() *testEnv {
	env := &testEnv{
		profiles:      newFakeProfileRepo(),
		threads:       &fakeThreadRepo{},
		conversations: newFakeConversationRepo(),
		cache:         newFakeCache(),
		generator:     &fakeGenerator{},
		calendar:      &fakeCalendar{},
		social:        newFakeSocial(),
		producer:      &fakeProducer{},
	}

	cfg := &Config{
		BotHandle:        "tboo_diin",
		Locale:           "en",
		MaxPostLength:    250,
		PostDelayMillis:  0,
		FetchLimit:       30,
		AnsweredTTLHours: 72,
	}

	env.svc = New(
		cfg,
		env.profiles,
		env.threads,
		env.conversations,
		env.cache,
		env.generator,
		env.calendar,
		env.social,
		env.producer,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return env
}
