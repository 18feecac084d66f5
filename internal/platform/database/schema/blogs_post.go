package schema

// BlogPostTable represents the 'blogs.post' table
type BlogPostTable struct {
	Table     string
	ID        string
	Title     string
	Content   string
	AuthorID  string // soft reference to users.account.id, no foreign key
	CreatedAt string
	UpdatedAt string
}

// BlogPost is the schema definition for blogs.post
var BlogPost = BlogPostTable{
	Table:     "blogs.post",
	ID:        "id",
	Title:     "title",
	Content:   "content",
	AuthorID:  "authorid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t BlogPostTable) Columns() []string {
	return []string{t.ID, t.Title, t.Content, t.AuthorID, t.CreatedAt, t.UpdatedAt}
}
