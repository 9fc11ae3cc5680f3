package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pribylovaa/wikinow/internal/models"
	"github.com/pribylovaa/wikinow/internal/storage"
	"github.com/pribylovaa/wikinow/pkg/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// postDoc — проводная форма документа коллекции userArticles.
// Имена полей — контракт с мобильным клиентом (см. ensureIndexes).
type postDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID    string             `bson:"authorId"`
	AuthorEmail string             `bson:"authorEmail"`
	Title       string             `bson:"title"`
	Content     string             `bson:"content"`
	CreatedAt   *time.Time         `bson:"createdAt"`
}

// toModel конвертирует документ в доменную модель.
func (d postDoc) toModel() models.Post {
	var created *time.Time
	if d.CreatedAt != nil {
		utc := d.CreatedAt.UTC()
		created = &utc
	}

	return models.Post{
		ID:          d.ID.Hex(),
		AuthorID:    d.AuthorID,
		AuthorEmail: d.AuthorEmail,
		Title:       d.Title,
		Content:     d.Content,
		CreatedAt:   created,
	}
}

// CreatePost записывает новый пост. Идентификатор и createdAt назначает
// хранилище в момент коммита; что бы клиент ни прислал в этих полях —
// оно игнорируется.
func (m *Mongo) CreatePost(ctx context.Context, post models.Post) (string, error) {
	const op = "storage/mongo/CreatePost"

	// MongoDB DateTime хранит миллисекунды.
	now := time.Now().UTC().Truncate(time.Millisecond)

	doc := bson.D{
		{Key: "authorId", Value: post.AuthorID},
		{Key: "authorEmail", Value: post.AuthorEmail},
		{Key: "title", Value: post.Title},
		{Key: "content", Value: post.Content},
		{Key: "createdAt", Value: now},
	}

	res, err := m.posts.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Mongo всегда возвращает ObjectID.
		return "", fmt.Errorf("%s: inserted id type", op)
	}

	return oid.Hex(), nil
}

// UserPosts возвращает посты текущей личности (фильтр по email автора),
// новые первыми. Нет личности или email — пустой список без ошибки:
// неаутентифицированный листинг это «пусто», а не отказ.
func (m *Mongo) UserPosts(ctx context.Context) ([]models.Post, error) {
	const op = "storage/mongo/UserPosts"

	id := m.identity.Current(ctx)
	if id == nil || strings.TrimSpace(id.Email) == "" {
		return []models.Post{}, nil
	}

	filter := bson.D{{Key: "authorEmail", Value: id.Email}}

	return m.listPosts(ctx, op, filter)
}

// AllPosts возвращает все посты, новые первыми.
func (m *Mongo) AllPosts(ctx context.Context) ([]models.Post, error) {
	const op = "storage/mongo/AllPosts"

	return m.listPosts(ctx, op, bson.D{})
}

// listPosts — общий листинг: сортировка createdAt DESC (жёсткий контракт,
// UI опирается на порядок по свежести), документы декодируются поштучно,
// неразобравшиеся пропускаются.
func (m *Mongo) listPosts(ctx context.Context, op string, filter bson.D) ([]models.Post, error) {
	lg := log.From(ctx)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := m.posts.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	items := []models.Post{}
	for cur.Next(ctx) {
		var doc postDoc
		if err := cur.Decode(&doc); err != nil {
			// Битый документ не валит всю выдачу.
			lg.Warn("post_decode_skipped",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			continue
		}

		items = append(items, doc.toModel())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// PostByID возвращает пост по строковому идентификатору документа.
// Используется проверками create/list round-trip; невалидный формат id
// трактуется как «нет такой записи».
func (m *Mongo) PostByID(ctx context.Context, id string) (*models.Post, error) {
	const op = "storage/mongo/PostByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc postDoc
	if err := m.posts.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}
