package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/sessions"
)

type mockUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*models.User), nextID: 1}
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	user.IsAdmin = len(m.users) == 0
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

type mockPostRepo struct {
	posts  map[int]*models.Post
	nextID int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[int]*models.Post), nextID: 1}
}

func (m *mockPostRepo) Create(post *models.Post) error {
	for _, p := range m.posts {
		if p.Title == post.Title {
			return repositories.ErrDuplicateTitle
		}
	}
	post.ID = m.nextID
	m.nextID++
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *mockPostRepo) GetByID(id int) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *mockPostRepo) List() ([]*models.Post, error) {
	var posts []*models.Post
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (m *mockPostRepo) Update(post *models.Post) error {
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	for _, p := range m.posts {
		if p.ID != post.ID && p.Title == post.Title {
			return repositories.ErrDuplicateTitle
		}
	}
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *mockPostRepo) Delete(id int) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

type mockCommentRepo struct {
	comments map[int]*models.Comment
	nextID   int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[int]*models.Comment), nextID: 1}
}

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	copied := *comment
	m.comments[comment.ID] = &copied
	return nil
}

func (m *mockCommentRepo) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func newTestSessions(t *testing.T) *sessions.Store {
	t.Helper()
	store, err := sessions.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func validPostForm(title string) *models.PostForm {
	return &models.PostForm{
		Title:    title,
		Subtitle: "A subtitle",
		ImageURL: "https://example.com/cover.jpg",
		Body:     "<p>Some body text.</p>",
	}
}
