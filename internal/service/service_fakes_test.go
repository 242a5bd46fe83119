package service

import (
	"context"
	"sort"

	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/repository/contract"
	"ai-healthassist-be/internal/repository/specification"
	"ai-healthassist-be/internal/repository/unitofwork"
	"ai-healthassist-be/pkg/llm"
	"ai-healthassist-be/pkg/store"

	"github.com/google/uuid"
)

// In-memory doubles for the repository layer. They interpret the same
// specifications the SQL implementations translate, so service behavior under
// test matches what a real database would return.

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUow struct {
	profiles   *fakeProfileRepo
	chats      *fakeChatRepo
	meds       *fakeMedRepo
	taken      *fakeTakenRepo
	moods      *fakeMoodRepo
	conditions *fakeConditionRepo

	began      bool
	committed  bool
	rolledBack bool
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		profiles:   &fakeProfileRepo{},
		chats:      &fakeChatRepo{},
		meds:       &fakeMedRepo{},
		taken:      &fakeTakenRepo{},
		moods:      &fakeMoodRepo{},
		conditions: &fakeConditionRepo{},
	}
}

func newFakeFactory() (*fakeFactory, *fakeUow) {
	uow := newFakeUow()
	return &fakeFactory{uow: uow}, uow
}

func (u *fakeUow) Begin(ctx context.Context) error { u.began = true; return nil }
func (u *fakeUow) Commit() error                   { u.committed = true; return nil }
func (u *fakeUow) Rollback() error                 { u.rolledBack = true; return nil }

func (u *fakeUow) UserProfileRepository() contract.UserProfileRepository { return u.profiles }
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository { return u.chats }
func (u *fakeUow) MedicationRepository() contract.MedicationRepository   { return u.meds }
func (u *fakeUow) MedicationTakenRepository() contract.MedicationTakenRepository {
	return u.taken
}
func (u *fakeUow) MoodEntryRepository() contract.MoodEntryRepository { return u.moods }
func (u *fakeUow) HealthConditionRepository() contract.HealthConditionRepository {
	return u.conditions
}

// User profiles

type fakeProfileRepo struct {
	items []*entity.UserProfile
	err   error
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *entity.UserProfile) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, profile)
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *entity.UserProfile) error {
	if r.err != nil {
		return r.err
	}
	for i, p := range r.items {
		if p.UserID == profile.UserID {
			r.items[i] = profile
			return nil
		}
	}
	return nil
}

func (r *fakeProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	kept := r.items[:0]
	for _, p := range r.items {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	r.items = kept
	return nil
}

func (r *fakeProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProfile, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeProfileRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.UserProfile, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.UserProfile
	for _, p := range r.items {
		if profileMatches(p, specs) {
			out = append(out, p)
		}
	}
	return paginate(out, specs), nil
}

func (r *fakeProfileRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func profileMatches(p *entity.UserProfile, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.ByUserID); ok && p.UserID != s.UserID {
			return false
		}
	}
	return true
}

// Chat messages

type fakeChatRepo struct {
	items     []*entity.ChatMessage
	err       error
	deleteErr error
}

func (r *fakeChatRepo) Create(_ context.Context, message *entity.ChatMessage) error {
	if r.err != nil {
		return r.err
	}
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	r.items = append(r.items, message)
	return nil
}

func (r *fakeChatRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.ChatMessage
	for _, m := range r.items {
		if chatMatches(m, specs) {
			out = append(out, m)
		}
	}
	if desc, ok := orderDirection(specs, "timestamp"); ok {
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Timestamp.After(out[j].Timestamp)
			}
			return out[i].Timestamp.Before(out[j].Timestamp)
		})
	}
	return paginate(out, specs), nil
}

func (r *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func (r *fakeChatRepo) DeleteAllByUserID(_ context.Context, userID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	kept := r.items[:0]
	for _, m := range r.items {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	r.items = kept
	return nil
}

func chatMatches(m *entity.ChatMessage, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByUserID:
			if m.UserID != s.UserID {
				return false
			}
		case specification.TimestampSince:
			if m.Timestamp.Before(s.Since) {
				return false
			}
		}
	}
	return true
}

// Medications

type fakeMedRepo struct {
	items []*entity.Medication
	err   error
}

func (r *fakeMedRepo) Create(_ context.Context, med *entity.Medication) error {
	if r.err != nil {
		return r.err
	}
	if med.Id == uuid.Nil {
		med.Id = uuid.New()
	}
	r.items = append(r.items, med)
	return nil
}

func (r *fakeMedRepo) Update(_ context.Context, med *entity.Medication) error {
	if r.err != nil {
		return r.err
	}
	for i, m := range r.items {
		if m.Id == med.Id {
			r.items[i] = med
			return nil
		}
	}
	return nil
}

func (r *fakeMedRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Medication, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeMedRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Medication, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Medication
	for _, m := range r.items {
		if medMatches(m, specs) {
			out = append(out, m)
		}
	}
	if desc, ok := orderDirection(specs, "time"); ok {
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Time > out[j].Time
			}
			return out[i].Time < out[j].Time
		})
	}
	return paginate(out, specs), nil
}

func (r *fakeMedRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func (r *fakeMedRepo) DeleteAllByUserID(_ context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	kept := r.items[:0]
	for _, m := range r.items {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	r.items = kept
	return nil
}

func medMatches(m *entity.Medication, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByUserID:
			if m.UserID != s.UserID {
				return false
			}
		case specification.ByID:
			if m.Id != s.ID {
				return false
			}
		case specification.ActiveOnly:
			if !m.IsActive {
				return false
			}
		}
	}
	return true
}

// Medication dose records

type fakeTakenRepo struct {
	items []*entity.MedicationTaken
	err   error
}

func (r *fakeTakenRepo) Upsert(_ context.Context, taken *entity.MedicationTaken) error {
	if r.err != nil {
		return r.err
	}
	key := taken.Date.Format(dateLayout)
	for i, t := range r.items {
		if t.UserID == taken.UserID && t.MedicationID == taken.MedicationID && t.Date.Format(dateLayout) == key {
			taken.Id = t.Id
			r.items[i] = taken
			return nil
		}
	}
	if taken.Id == uuid.Nil {
		taken.Id = uuid.New()
	}
	r.items = append(r.items, taken)
	return nil
}

func (r *fakeTakenRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MedicationTaken, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeTakenRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.MedicationTaken, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.MedicationTaken
	for _, t := range r.items {
		if takenMatches(t, specs) {
			out = append(out, t)
		}
	}
	if desc, ok := orderDirection(specs, "date"); ok {
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Date.After(out[j].Date)
			}
			return out[i].Date.Before(out[j].Date)
		})
	}
	return paginate(out, specs), nil
}

func (r *fakeTakenRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func (r *fakeTakenRepo) DeleteAllByUserID(_ context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	kept := r.items[:0]
	for _, t := range r.items {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	r.items = kept
	return nil
}

func takenMatches(t *entity.MedicationTaken, specs []specification.Specification) bool {
	day := t.Date.Format(dateLayout)
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByUserID:
			if t.UserID != s.UserID {
				return false
			}
		case specification.OnDate:
			if day != s.Date.Format(dateLayout) {
				return false
			}
		case specification.DateSince:
			if day < s.Since.Format(dateLayout) {
				return false
			}
		case specification.DateUntil:
			if day > s.Until.Format(dateLayout) {
				return false
			}
		case specification.DateBetween:
			if day < s.From.Format(dateLayout) || day > s.To.Format(dateLayout) {
				return false
			}
		case specification.TakenOnly:
			if !t.Taken {
				return false
			}
		}
	}
	return true
}

// Mood entries

type fakeMoodRepo struct {
	items []*entity.MoodEntry
	err   error
}

func (r *fakeMoodRepo) Upsert(_ context.Context, mood *entity.MoodEntry) error {
	if r.err != nil {
		return r.err
	}
	key := mood.Date.Format(dateLayout)
	for i, m := range r.items {
		if m.UserID == mood.UserID && m.Date.Format(dateLayout) == key {
			mood.Id = m.Id
			r.items[i] = mood
			return nil
		}
	}
	if mood.Id == uuid.Nil {
		mood.Id = uuid.New()
	}
	r.items = append(r.items, mood)
	return nil
}

func (r *fakeMoodRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodEntry, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeMoodRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.MoodEntry
	for _, m := range r.items {
		if moodMatches(m, specs) {
			out = append(out, m)
		}
	}
	if desc, ok := orderDirection(specs, "date"); ok {
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Date.After(out[j].Date)
			}
			return out[i].Date.Before(out[j].Date)
		})
	}
	return paginate(out, specs), nil
}

func (r *fakeMoodRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func (r *fakeMoodRepo) DeleteAllByUserID(_ context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	kept := r.items[:0]
	for _, m := range r.items {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	r.items = kept
	return nil
}

func moodMatches(m *entity.MoodEntry, specs []specification.Specification) bool {
	day := m.Date.Format(dateLayout)
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByUserID:
			if m.UserID != s.UserID {
				return false
			}
		case specification.OnDate:
			if day != s.Date.Format(dateLayout) {
				return false
			}
		case specification.DateSince:
			if day < s.Since.Format(dateLayout) {
				return false
			}
		case specification.DateUntil:
			if day > s.Until.Format(dateLayout) {
				return false
			}
		case specification.DateBetween:
			if day < s.From.Format(dateLayout) || day > s.To.Format(dateLayout) {
				return false
			}
		}
	}
	return true
}

// Health conditions

type fakeConditionRepo struct {
	items []*entity.HealthCondition
	err   error
}

func (r *fakeConditionRepo) Create(_ context.Context, condition *entity.HealthCondition) error {
	if r.err != nil {
		return r.err
	}
	if condition.Id == uuid.Nil {
		condition.Id = uuid.New()
	}
	r.items = append(r.items, condition)
	return nil
}

func (r *fakeConditionRepo) Update(_ context.Context, condition *entity.HealthCondition) error {
	if r.err != nil {
		return r.err
	}
	for i, c := range r.items {
		if c.Id == condition.Id {
			r.items[i] = condition
			return nil
		}
	}
	return nil
}

func (r *fakeConditionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HealthCondition, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeConditionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.HealthCondition, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.HealthCondition
	for _, c := range r.items {
		if conditionMatches(c, specs) {
			out = append(out, c)
		}
	}
	if desc, ok := orderDirection(specs, "recorded_date"); ok {
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].RecordedDate.After(out[j].RecordedDate)
			}
			return out[i].RecordedDate.Before(out[j].RecordedDate)
		})
	}
	return paginate(out, specs), nil
}

func (r *fakeConditionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func (r *fakeConditionRepo) DeleteAllByUserID(_ context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	kept := r.items[:0]
	for _, c := range r.items {
		if c.UserID != userID {
			kept = append(kept, c)
		}
	}
	r.items = kept
	return nil
}

func conditionMatches(c *entity.HealthCondition, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByUserID:
			if c.UserID != s.UserID {
				return false
			}
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.ActiveOnly:
			if !c.IsActive {
				return false
			}
		}
	}
	return true
}

// Shared spec helpers

func orderDirection(specs []specification.Specification, field string) (desc bool, ok bool) {
	for _, spec := range specs {
		if s, matched := spec.(specification.OrderBy); matched && s.Field == field {
			return s.Desc, true
		}
	}
	return false, false
}

func paginate[T any](items []T, specs []specification.Specification) []T {
	for _, spec := range specs {
		if s, ok := spec.(specification.Pagination); ok {
			if s.Offset > 0 {
				if s.Offset >= len(items) {
					return nil
				}
				items = items[s.Offset:]
			}
			if s.Limit > 0 && s.Limit < len(items) {
				items = items[:s.Limit]
			}
		}
	}
	return items
}

// Session store double

type fakeSessionStore struct {
	sessions  map[string]*store.Session
	saveErr   error
	getErr    error
	deleteErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*store.Session{}}
}

func (s *fakeSessionStore) Save(_ context.Context, session *store.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.sessions[session.UserID] = session
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, userID string) (*store.Session, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	sess, found := s.sessions[userID]
	return sess, found, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, userID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, userID)
	return nil
}

// Session manager double for services that only need Clear/Converse results.

type fakeSessionManager struct {
	reply    string
	err      error
	clearErr error
	cleared  []string
}

func (f *fakeSessionManager) Converse(_ context.Context, _ *entity.UserProfile, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeSessionManager) Initialize(_ context.Context, profile *entity.UserProfile) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	name := profile.PersonalInfo.FirstName
	if name == "" {
		name = "there"
	}
	return "Hey " + name + "! How are you feeling today?", nil
}

func (f *fakeSessionManager) Clear(_ context.Context, userID string) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared = append(f.cleared, userID)
	return nil
}

// LLM double

type fakeLLM struct {
	reply string
	err   error
	calls [][]llm.Message
	opts  []llm.Options
}

func (f *fakeLLM) Chat(_ context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	var resolved llm.Options
	for _, o := range options {
		o(&resolved)
	}
	f.opts = append(f.opts, resolved)

	f.calls = append(f.calls, history)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
