package models

// User is a registered account. IsAdmin is decided once, at registration
// time: the first account ever created becomes the administrator.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	IsAdmin      bool   `json:"is_admin"`
}

// Post is a blog post. Date is the human-readable publication date stamped
// at creation ("January 2, 2006"), not a sortable timestamp.
type Post struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Body     string     `json:"body"`
	ImageURL string     `json:"image_url"`
	Date     string     `json:"date"`
	AuthorID int        `json:"author_id"`
	Author   string     `json:"author"`
	Comments []*Comment `json:"comments,omitempty"`
}

// Comment is a reader comment on a post. Comments are append-only: there is
// no edit or delete path.
type Comment struct {
	ID       int    `json:"id"`
	PostID   int    `json:"post_id"`
	AuthorID int    `json:"author_id"`
	Author   string `json:"author"`
	Body     string `json:"body"`
}
