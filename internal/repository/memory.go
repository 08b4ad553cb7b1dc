package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"ArcadeFlow/internal/model"
)

// NewMemoryRepositories 进程内仓储，模拟原先的 mock 后端；latency > 0 时每次调用都会等待，
// 调用方取消 ctx 会立即返回 ctx.Err()
func NewMemoryRepositories(latency time.Duration) *Repositories {
	return &Repositories{
		Games:    &memoryGames{latency: latency},
		Ratings:  &memoryRatings{latency: latency},
		Comments: &memoryComments{latency: latency},
		Contents: &memoryContents{latency: latency, nextID: 1},
		Ads:      &memoryAds{latency: latency},
		Settings: &memorySettings{latency: latency, values: map[string]model.SiteSetting{}},
	}
}

// wait 模拟网络延迟
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func sortedIDs(set map[uint64]struct{}) []uint64 {
	ids := make([]uint64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ========== games ==========

type memoryGames struct {
	mu      sync.RWMutex
	latency time.Duration
	games   []model.Game
}

func (m *memoryGames) List(ctx context.Context) ([]*model.Game, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Game, 0, len(m.games))
	for i := range m.games {
		g := m.games[i]
		out = append(out, &g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryGames) Get(ctx context.Context, id uint64) (*model.Game, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.games {
		if m.games[i].ID == id {
			g := m.games[i]
			return &g, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *memoryGames) Create(ctx context.Context, g *model.Game) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var maxID uint64
	for i := range m.games {
		if m.games[i].ID > maxID {
			maxID = m.games[i].ID
		}
	}
	g.ID = maxID + 1
	m.games = append(m.games, *g)
	return nil
}

func (m *memoryGames) Update(ctx context.Context, g *model.Game) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.games {
		if m.games[i].ID == g.ID {
			createdAt := m.games[i].CreatedAt
			m.games[i] = *g
			m.games[i].CreatedAt = createdAt
			return nil
		}
	}
	return model.ErrNotFound
}

func (m *memoryGames) Delete(ctx context.Context, id uint64) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.games {
		if m.games[i].ID == id {
			m.games = append(m.games[:i], m.games[i+1:]...)
			return nil
		}
	}
	return nil
}

// ========== ratings ==========

type memoryRatings struct {
	mu      sync.RWMutex
	latency time.Duration
	ratings []model.Rating
}

func (m *memoryRatings) Upsert(ctx context.Context, r *model.Rating) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.ratings {
		if m.ratings[i].GameID == r.GameID && m.ratings[i].UserID == r.UserID {
			m.ratings[i] = *r
			return nil
		}
	}
	m.ratings = append(m.ratings, *r)
	return nil
}

func (m *memoryRatings) Get(ctx context.Context, gameID uint64, userID string) (*model.Rating, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.ratings {
		if m.ratings[i].GameID == gameID && m.ratings[i].UserID == userID {
			r := m.ratings[i]
			return &r, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *memoryRatings) ListByGame(ctx context.Context, gameID uint64) ([]*model.Rating, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*model.Rating{}
	for i := range m.ratings {
		if m.ratings[i].GameID == gameID {
			r := m.ratings[i]
			out = append(out, &r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (m *memoryRatings) ListAll(ctx context.Context) ([]*model.Rating, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Rating, 0, len(m.ratings))
	for i := range m.ratings {
		r := m.ratings[i]
		out = append(out, &r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].GameID < out[j].GameID })
	return out, nil
}

func (m *memoryRatings) DeleteByGame(ctx context.Context, gameID uint64) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.ratings[:0]
	for _, r := range m.ratings {
		if r.GameID != gameID {
			kept = append(kept, r)
		}
	}
	m.ratings = kept
	return nil
}

func (m *memoryRatings) ListGameIDs(ctx context.Context) ([]uint64, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	set := make(map[uint64]struct{})
	for _, r := range m.ratings {
		set[r.GameID] = struct{}{}
	}
	return sortedIDs(set), nil
}

// ========== comments ==========

type memoryComments struct {
	mu       sync.RWMutex
	latency  time.Duration
	lastID   uint64
	comments []model.Comment
}

func (m *memoryComments) Append(ctx context.Context, c *model.Comment) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID++
	c.ID = m.lastID
	m.comments = append(m.comments, *c)
	return nil
}

// ListByGame 稳定排序：时间戳相同时保持追加顺序
func (m *memoryComments) ListByGame(ctx context.Context, gameID uint64) ([]*model.Comment, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*model.Comment{}
	for i := range m.comments {
		if m.comments[i].GameID == gameID {
			c := m.comments[i]
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (m *memoryComments) DeleteByGame(ctx context.Context, gameID uint64) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.comments[:0]
	for _, c := range m.comments {
		if c.GameID != gameID {
			kept = append(kept, c)
		}
	}
	m.comments = kept
	return nil
}

func (m *memoryComments) ListGameIDs(ctx context.Context) ([]uint64, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	set := make(map[uint64]struct{})
	for _, c := range m.comments {
		set[c.GameID] = struct{}{}
	}
	return sortedIDs(set), nil
}

// ========== contents ==========

type memoryContents struct {
	mu       sync.RWMutex
	latency  time.Duration
	nextID   uint64
	contents []model.Content
}

func (m *memoryContents) List(ctx context.Context) ([]*model.Content, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Content, 0, len(m.contents))
	for i := range m.contents {
		c := m.contents[i]
		out = append(out, &c)
	}
	return out, nil
}

func (m *memoryContents) Get(ctx context.Context, id uint64) (*model.Content, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.contents {
		if m.contents[i].ID == id {
			c := m.contents[i]
			return &c, nil
		}
	}
	return nil, model.ErrNotFound
}

// FindByType 按插入顺序（即 id 升序）取第一条
func (m *memoryContents) FindByType(ctx context.Context, t model.ContentType) (*model.Content, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.contents {
		if m.contents[i].Type == t {
			c := m.contents[i]
			return &c, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *memoryContents) Create(ctx context.Context, c *model.Content) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.nextID
	m.nextID++
	m.contents = append(m.contents, *c)
	return nil
}

func (m *memoryContents) Update(ctx context.Context, c *model.Content) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.contents {
		if m.contents[i].ID == c.ID {
			createdAt := m.contents[i].CreatedAt
			m.contents[i] = *c
			m.contents[i].CreatedAt = createdAt
			return nil
		}
	}
	return model.ErrNotFound
}

func (m *memoryContents) Delete(ctx context.Context, id uint64) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.contents {
		if m.contents[i].ID == id {
			m.contents = append(m.contents[:i], m.contents[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

// ========== ad config ==========

type memoryAds struct {
	mu      sync.RWMutex
	latency time.Duration
	current *model.AdConfig
}

func (m *memoryAds) Get(ctx context.Context) (*model.AdConfig, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil, model.ErrNotFound
	}
	cfg := *m.current
	cfg.AdUnitIDs = append([]byte(nil), m.current.AdUnitIDs...)
	return &cfg, nil
}

func (m *memoryAds) Save(ctx context.Context, cfg *model.AdConfig) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg.ID = model.AdConfigID
	stored := *cfg
	stored.AdUnitIDs = append([]byte(nil), cfg.AdUnitIDs...)
	m.current = &stored
	return nil
}

// ========== settings ==========

type memorySettings struct {
	mu      sync.RWMutex
	latency time.Duration
	values  map[string]model.SiteSetting
}

func (m *memorySettings) Get(ctx context.Context, key string) (*model.SiteSetting, error) {
	if err := wait(ctx, m.latency); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.values[key]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &s, nil
}

func (m *memorySettings) Set(ctx context.Context, s *model.SiteSetting) error {
	if err := wait(ctx, m.latency); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[s.Key] = *s
	return nil
}
