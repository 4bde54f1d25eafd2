package badgerdb

import (
	"context"

	"github.com/careerhub-dev/careerhub/internal/core/post"
	"github.com/careerhub-dev/careerhub/internal/platform/store"
)

const postsSlotKey = "posts"

// PostRepository は投稿コレクションを posts スロットに保持します。
type PostRepository struct {
	slot *store.Slot[[]post.Post]
}

// NewPostRepository は PostRepository を生成します。
func NewPostRepository(s *store.Store) *PostRepository {
	return &PostRepository{slot: store.NewSlot(s, postsSlotKey, []post.Post{})}
}

// Insert は投稿をコレクションの先頭に追加します。
func (r *PostRepository) Insert(_ context.Context, p *post.Post) (*post.Post, error) {
	clone := *p
	if _, err := r.slot.Update(func(posts []post.Post) []post.Post {
		return append([]post.Post{clone}, posts...)
	}); err != nil {
		return nil, err
	}
	result := clone
	return &result, nil
}

// List は投稿を保存順(新しいものが先頭)で返します。
func (r *PostRepository) List(_ context.Context) ([]*post.Post, error) {
	posts := r.slot.Current()
	out := make([]*post.Post, 0, len(posts))
	for i := range posts {
		clone := posts[i]
		out = append(out, &clone)
	}
	return out, nil
}
