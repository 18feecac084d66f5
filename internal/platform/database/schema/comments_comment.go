package schema

// CommentTable represents the 'comments.comment' table
type CommentTable struct {
	Table     string
	ID        string
	Content   string
	BlogID    string // soft reference to blogs.post.id
	AuthorID  string // soft reference to users.account.id
	ParentID  string // nullable self reference, never a foreign key
	CreatedAt string
	UpdatedAt string
}

// Comment is the schema definition for comments.comment
var Comment = CommentTable{
	Table:     "comments.comment",
	ID:        "id",
	Content:   "content",
	BlogID:    "blogid",
	AuthorID:  "authorid",
	ParentID:  "parentid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t CommentTable) Columns() []string {
	return []string{t.ID, t.Content, t.BlogID, t.AuthorID, t.ParentID, t.CreatedAt, t.UpdatedAt}
}
