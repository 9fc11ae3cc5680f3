package models

import "time"

// Post — пользовательский пост в документном хранилище.
// Жизненный цикл:
//   - клиент собирает Post с ID="" и CreatedAt=nil;
//   - оба поля назначает исключительно хранилище в момент коммита
//     (клиентские значения на создании игнорируются);
//   - после успешного создания запись с точки зрения этого слоя неизменяема
//     (операций update/delete слой не экспонирует).
type Post struct {
	ID          string     `json:"id"`
	AuthorID    string     `json:"author_id"`
	AuthorEmail string     `json:"author_email"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
