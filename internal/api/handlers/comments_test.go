package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentResult struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func createComment(t *testing.T, ts *testutil.TestServer, client *http.Client, postID, body string) commentResult {
	t.Helper()

	resp := postJSON(t, client, ts.APIURL("/blogs/"+postID+"/comments"), map[string]string{"body": body})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result commentResult
	testutil.AssertJSONResponse(t, resp, &result)
	return result
}

func TestCommentHandler_CreateAndRead(t *testing.T) {
	ts := testutil.NewTestServer(t)

	client := ts.NewClient(t)
	user := testutil.NewUserBuilder().SignupAndLogin(t, ts, client)

	post := createPost(t, ts, client, "Commentable", postBody)
	created := createComment(t, ts, client, post.ID, "What a thoughtful post.")
	assert.Equal(t, post.ID, created.PostID)

	resp, err := http.Get(ts.APIURL("/blogs/one?id=" + post.ID))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		Comments []struct {
			Body   string `json:"body"`
			Author struct {
				Username string `json:"username"`
			} `json:"author"`
		} `json:"comments"`
	}
	testutil.AssertJSONResponse(t, resp, &detail)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "What a thoughtful post.", detail.Comments[0].Body)
	assert.Equal(t, user.Username, detail.Comments[0].Author.Username)
}

func TestCommentHandler_CreateOnMissingPost(t *testing.T) {
	ts := testutil.NewTestServer(t)

	client := ts.NewClient(t)
	testutil.NewUserBuilder().SignupAndLogin(t, ts, client)

	resp := postJSON(t, client, ts.APIURL("/blogs/"+domain.FormatID(domain.NewID())+"/comments"),
		map[string]string{"body": "Shouting into the void."})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCommentHandler_DeleteOnlyByAuthor(t *testing.T) {
	ts := testutil.NewTestServer(t)

	authorClient := ts.NewClient(t)
	testutil.NewUserBuilder().WithUsername("author_user_1").SignupAndLogin(t, ts, authorClient)

	strangerClient := ts.NewClient(t)
	testutil.NewUserBuilder().WithUsername("stranger_user").SignupAndLogin(t, ts, strangerClient)

	post := createPost(t, ts, authorClient, "Guarded Comments", postBody)
	comment := createComment(t, ts, authorClient, post.ID, "Mine, not yours.")

	resp := doDelete(t, strangerClient, ts.APIURL("/comments/"+comment.ID))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	message, _ := testutil.DecodeError(t, resp)
	assert.Equal(t, "You do not have permission to delete this comment", message)

	// The comment is untouched.
	commentID, err := domain.ParseID(comment.ID)
	require.NoError(t, err)
	var stored domain.Comment
	require.NoError(t, ts.DB.DB.First(&stored, "id = ?", commentID).Error)
	assert.Equal(t, "Mine, not yours.", stored.Text)
	assert.WithinDuration(t, comment.UpdatedAt, stored.UpdatedAt, time.Second)

	resp = doDelete(t, authorClient, ts.APIURL("/comments/"+comment.ID))
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCommentHandler_UpdateByAuthor(t *testing.T) {
	ts := testutil.NewTestServer(t)

	client := ts.NewClient(t)
	testutil.NewUserBuilder().SignupAndLogin(t, ts, client)

	post := createPost(t, ts, client, "Editable Comments", postBody)
	comment := createComment(t, ts, client, post.ID, "Frist!")

	resp := putJSON(t, client, ts.APIURL("/comments/"+comment.ID), map[string]string{"body": "First!"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		UpdatedAt time.Time `json:"updated_at"`
	}
	testutil.AssertJSONResponse(t, resp, &updated)
	assert.False(t, updated.UpdatedAt.Before(comment.UpdatedAt))
}
