package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"
)

const apiBase = "http://localhost:5000/api/v1"

type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ID       string `json:"id"`
	Client   *http.Client
}

type Post struct {
	ID        string `json:"id"`
	TitleNorm string `json:"title_norm"`
}

func signup(username, email, password string) (*User, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Jar: jar}

	body, _ := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})

	resp, err := client.Post(apiBase+"/auth/signup", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("signup failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	return &User{
		Username: result.Username,
		Email:    email,
		Password: password,
		ID:       result.ID,
		Client:   client,
	}, nil
}

func createPost(user *User, title, body string) (*Post, error) {
	payload, _ := json.Marshal(map[string]string{
		"title": title,
		"body":  body,
	})

	resp, err := user.Client.Post(apiBase+"/blogs", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create post failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result Post
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	return &result, nil
}

func createComment(user *User, postID, body string) error {
	payload, _ := json.Marshal(map[string]string{"body": body})

	resp, err := user.Client.Post(apiBase+"/blogs/"+postID+"/comments", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("create comment failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

func follow(user *User, followeeID string) error {
	resp, err := user.Client.Post(apiBase+"/follows/"+followeeID, "application/json", nil)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("follow failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

func generateUsername(index int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	random := make([]byte, 4)
	for i := range random {
		random[i] = letters[rand.Intn(len(letters))]
	}
	return fmt.Sprintf("demo_%d_%d_%s", index, time.Now().Unix(), string(random))
}

var demoPosts = []struct {
	title string
	body  string
}{
	{
		title: "Getting Started",
		body:  "Welcome to the demo instance. This first post exists so the listing page has something to show, and so the preview truncation has some text to chew on.",
	},
	{
		title: "On Writing Less",
		body:  "Most posts would be better at half the length. This one practices what it preaches and stops almost immediately after clearing the minimum.",
	},
	{
		title: "Version History",
		body:  "Every edit to a post appends a new version rather than overwriting the old text. Try editing this post and watch the history grow behind the scenes.",
	},
}

func main() {
	fmt.Println("Seeding demo data...")

	password := "demopassword1"
	var users []*User

	// Register 3 users
	for i := 1; i <= 3; i++ {
		username := generateUsername(i)
		user, err := signup(username, username+"@example.com", password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to sign up user %d: %v\n", i, err)
			os.Exit(1)
		}
		users = append(users, user)
		fmt.Printf("  ✓ User %d: %s\n", i, user.Username)
	}

	// Each user writes one post
	var posts []*Post
	for i, user := range users {
		post, err := createPost(user, demoPosts[i].title, demoPosts[i].body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create post for user %d: %v\n", i+1, err)
			os.Exit(1)
		}
		posts = append(posts, post)
		fmt.Printf("  ✓ Post: %s\n", post.TitleNorm)
	}

	// Everyone comments on the first post
	for i := 1; i < len(users); i++ {
		if err := createComment(users[i], posts[0].ID, "Nice post! Commenting from "+users[i].Username+"."); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to comment as user %d: %v\n", i+1, err)
			os.Exit(1)
		}
	}
	fmt.Println("  ✓ Comments added")

	// The first user follows the other two
	for i := 1; i < len(users); i++ {
		if err := follow(users[0], users[i].ID); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to follow user %d: %v\n", i+1, err)
			os.Exit(1)
		}
	}
	fmt.Println("  ✓ Follows added")

	fmt.Println("\nDemo accounts (all use password: " + password + "):")
	for i, user := range users {
		fmt.Printf("  User %d: %s / %s\n", i+1, user.Email, user.Password)
	}
}
