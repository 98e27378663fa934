package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("test_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hash, err := service.HashPassword(b.password, service.DevelopmentScryptParams)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           domain.NewID(),
		Username:     b.username,
		Email:        b.email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// SignupAndLogin creates a user through the API with the given client; the
// session cookie lands in the client's jar.
func (b *UserBuilder) SignupAndLogin(t *testing.T, ts *TestServer, client *http.Client) *domain.User {
	t.Helper()

	reqBody := map[string]string{
		"email":    b.email,
		"username": b.username,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := client.Post(ts.APIURL("/auth/signup"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to sign up user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected signup status code: %d", resp.StatusCode)
	}

	var authResp struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode signup response: %v", err)
	}

	userID, err := domain.ParseID(authResp.ID)
	if err != nil {
		t.Fatalf("failed to parse user id: %v", err)
	}

	return &domain.User{
		ID:       userID,
		Username: authResp.Username,
		Email:    authResp.Email,
	}
}

// PostBuilder creates blog posts with their first version
type PostBuilder struct {
	owner *domain.User
	title string
	body  string
}

func NewPostBuilder(owner *domain.User) *PostBuilder {
	return &PostBuilder{
		owner: owner,
		title: "Test Post",
		body:  "This is a test post body long enough to satisfy the bounds.",
	}
}

func (b *PostBuilder) WithTitle(title string) *PostBuilder {
	b.title = title
	return b
}

func (b *PostBuilder) WithBody(body string) *PostBuilder {
	b.body = body
	return b
}

// Build creates the post and its first version in the database
func (b *PostBuilder) Build(t *testing.T, db *gorm.DB) *domain.BlogPost {
	t.Helper()

	post := &domain.BlogPost{
		ID:        domain.NewID(),
		OwnerID:   b.owner.ID,
		Title:     b.title,
		TitleNorm: domain.NormalizeTitle(b.title),
		CreatedAt: time.Now(),
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	version := &domain.PostVersion{
		PostID:    post.ID,
		Text:      b.body,
		CreatedAt: time.Now(),
	}
	if err := db.Create(version).Error; err != nil {
		t.Fatalf("failed to create post version: %v", err)
	}

	return post
}

// CommentBuilder creates comments on a post
type CommentBuilder struct {
	author *domain.User
	post   *domain.BlogPost
	text   string
}

func NewCommentBuilder(author *domain.User, post *domain.BlogPost) *CommentBuilder {
	return &CommentBuilder{
		author: author,
		post:   post,
		text:   "A perfectly fine test comment.",
	}
}

func (b *CommentBuilder) WithText(text string) *CommentBuilder {
	b.text = text
	return b
}

func (b *CommentBuilder) Build(t *testing.T, db *gorm.DB) *domain.Comment {
	t.Helper()

	comment := &domain.Comment{
		ID:        domain.NewID(),
		PostID:    b.post.ID,
		AuthorID:  b.author.ID,
		Text:      b.text,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	return comment
}
