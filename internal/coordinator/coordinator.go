// coordinator держит наблюдаемое состояние экранов wikinow и
// секвенирует обращения к репозиторию.
//
// Всё состояние принадлежит одному мьютексу: мутации не интерливятся.
// Удалённые вызовы исполняются вне мьютекса, их исходы заносятся в
// состояние по завершении. Ошибки любого вызова публикуются одноразовыми
// уведомлениями в канал Errors() — состояние ошибок не персистится,
// потребитель показывает их как транзиентные сообщения.
package coordinator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pribylovaa/wikinow/internal/auth"
	"github.com/pribylovaa/wikinow/internal/models"
	"github.com/pribylovaa/wikinow/internal/result"
	"github.com/pribylovaa/wikinow/internal/service"
	"github.com/pribylovaa/wikinow/pkg/log"
)

const (
	// defaultLanguage — язык контента по умолчанию.
	defaultLanguage = "en"
	// defaultListingTimeout — жёсткая граница ожидания листинговых операций.
	defaultListingTimeout = 10 * time.Second
	// notificationBuffer — ёмкость канала уведомлений; уведомления не
	// перетирают друг друга, лишние при переполнении отбрасываются.
	notificationBuffer = 8
)

// Coordinator — владелец состояния представления.
type Coordinator struct {
	repo           service.Repository
	identity       auth.Provider
	listingTimeout time.Duration
	now            func() time.Time

	mu            sync.Mutex
	featured      []models.FeaturedArticle
	searchResults []models.SearchResultPage
	isLoading     bool
	userPosts     []models.Post
	allPosts      []models.Post
	postOutcome   *result.Result[string]
	featuredGen   uint64

	errs chan bool
}

// Option — функциональная опция конструктора.
type Option func(*Coordinator)

// WithListingTimeout переопределяет таймаут листинговых операций.
func WithListingTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.listingTimeout = d
		}
	}
}

// WithNow переопределяет источник текущего времени.
func WithNow(now func() time.Time) Option {
	return func(c *Coordinator) {
		if now != nil {
			c.now = now
		}
	}
}

// New создаёт координатор и сразу запускает загрузку «статьи дня»
// за текущую локальную дату на языке по умолчанию.
func New(ctx context.Context, repo service.Repository, identity auth.Provider, opts ...Option) *Coordinator {
	c := &Coordinator{
		repo:           repo,
		identity:       identity,
		listingTimeout: defaultListingTimeout,
		now:            time.Now,
		errs:           make(chan bool, notificationBuffer),
	}

	for _, opt := range opts {
		opt(c)
	}

	day := c.now()
	c.LoadFeatured(ctx, day.Format("2006"), day.Format("01"), day.Format("02"), defaultLanguage)

	return c
}

// Errors — поток одноразовых уведомлений об ошибках.
func (c *Coordinator) Errors() <-chan bool {
	return c.errs
}

// LoadFeatured запускает загрузку «статьи дня» в фоне. Семантика
// «последний побеждает»: повторный запуск вытесняет интерес к прежнему
// результату, сам сетевой вызов при этом не отменяется.
func (c *Coordinator) LoadFeatured(ctx context.Context, year, month, day, language string) {
	const op = "coordinator/LoadFeatured"

	c.mu.Lock()
	c.featuredGen++
	gen := c.featuredGen
	c.mu.Unlock()

	go func() {
		res := c.repo.FeaturedArticle(ctx, year, month, day, language)

		c.mu.Lock()
		if gen != c.featuredGen {
			// Устаревший запуск: результат отбрасывается без следа.
			c.mu.Unlock()
			return
		}

		if res.IsOk() {
			if articles := res.Value(); articles != nil {
				c.featured = articles
			}
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()

		log.From(ctx).Warn("featured load failed",
			slog.String("op", op),
			slog.String("err", res.Message()),
		)
		c.notify()
	}()
}

// Featured — последняя успешная «статья дня»; пусто до первой загрузки.
func (c *Coordinator) Featured() []models.FeaturedArticle {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.featured
}

// SearchPages выполняет поиск и применяет исход: успех замещает
// searchResults, ошибка уходит уведомлением. Дебаунс ввода — политика
// вызывающей стороны, здесь каждый вызов уходит в репозиторий.
func (c *Coordinator) SearchPages(ctx context.Context, query string) {
	const op = "coordinator/SearchPages"

	res := c.repo.SearchPages(ctx, query, defaultLanguage)
	if !res.IsOk() {
		log.From(ctx).Warn("search failed",
			slog.String("op", op),
			slog.String("err", res.Message()),
		)
		c.notify()
		return
	}

	c.mu.Lock()
	c.searchResults = res.Value()
	c.mu.Unlock()
}

// ClearSearchResults синхронно сбрасывает результаты поиска без сети.
func (c *Coordinator) ClearSearchResults() {
	c.mu.Lock()
	c.searchResults = []models.SearchResultPage{}
	c.mu.Unlock()
}

// SearchResults — последние успешные результаты поиска.
func (c *Coordinator) SearchResults() []models.SearchResultPage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.searchResults
}

// CreatePost создаёт пост от имени текущей личности. Без личности —
// молчаливый no-op: ни состояние, ни уведомления не трогаются
// (экран создания доступен только аутентифицированным).
func (c *Coordinator) CreatePost(ctx context.Context, title, content string) {
	id := c.identity.Current(ctx)
	if id == nil {
		return
	}

	post := models.Post{
		AuthorID:    id.UID,
		AuthorEmail: id.Email,
		Title:       title,
		Content:     content,
	}

	res := c.repo.CreatePost(ctx, post)

	c.mu.Lock()
	c.postOutcome = &res
	c.mu.Unlock()
}

// PostOutcome — исход последней попытки создания поста;
// nil до первой попытки.
func (c *Coordinator) PostOutcome() *result.Result[string] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.postOutcome
}

// LoadUserPosts загружает посты текущей личности с таймаутом.
// Без разрешимой личности репозиторий не вызывается — только уведомление.
func (c *Coordinator) LoadUserPosts(ctx context.Context) {
	c.setLoading(true)
	defer c.setLoading(false)

	id := c.identity.Current(ctx)
	if id == nil || id.UID == "" {
		c.notify()
		return
	}

	res, completed := await(ctx, c.listingTimeout, c.repo.UserPosts)
	if !completed || !res.IsOk() {
		// Таймаут или ошибка: прежняя выдача сохраняется.
		c.notify()
		return
	}

	c.mu.Lock()
	c.userPosts = res.Value()
	c.mu.Unlock()
}

// LoadAllPosts загружает общую ленту с таймаутом.
func (c *Coordinator) LoadAllPosts(ctx context.Context) {
	c.setLoading(true)
	defer c.setLoading(false)

	res, completed := await(ctx, c.listingTimeout, c.repo.AllPosts)
	if !completed || !res.IsOk() {
		c.notify()
		return
	}

	c.mu.Lock()
	c.allPosts = res.Value()
	c.mu.Unlock()
}

// UserPosts — последняя успешная пользовательская выдача.
func (c *Coordinator) UserPosts() []models.Post {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.userPosts
}

// AllPosts — последняя успешная общая выдача.
func (c *Coordinator) AllPosts() []models.Post {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.allPosts
}

// IsLoading — true только на время листинговых операций.
func (c *Coordinator) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.isLoading
}

func (c *Coordinator) setLoading(v bool) {
	c.mu.Lock()
	c.isLoading = v
	c.mu.Unlock()
}

// notify публикует одноразовое уведомление, не блокируясь:
// при переполненном буфере сигнал отбрасывается.
func (c *Coordinator) notify() {
	select {
	case c.errs <- true:
	default:
	}
}

// await исполняет удалённый вызов с жёсткой границей ожидания:
// по истечении таймаута вызов бросается, даже если он ещё висит.
func await[T any](ctx context.Context, timeout time.Duration, call func(context.Context) result.Result[T]) (result.Result[T], bool) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out := make(chan result.Result[T], 1)
	go func() {
		out <- call(cctx)
	}()

	select {
	case res := <-out:
		return res, true
	case <-cctx.Done():
		return result.Result[T]{}, false
	}
}
