package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogpost-backend/internal/domains/post/model"
)

type mockPostService struct {
	mock.Mock
}

func (m *mockPostService) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called()
	posts, _ := args.Get(0).([]model.Post)
	return posts, args.Error(1)
}

func (m *mockPostService) Get(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(id)
	post, _ := args.Get(0).(*model.Post)
	return post, args.Error(1)
}

func (m *mockPostService) Create(ctx context.Context, req model.PostRequest) (*model.Post, error) {
	args := m.Called(req)
	post, _ := args.Get(0).(*model.Post)
	return post, args.Error(1)
}

func (m *mockPostService) Update(ctx context.Context, id int64, req model.PostRequest) (*model.Post, error) {
	args := m.Called(id, req)
	post, _ := args.Get(0).(*model.Post)
	return post, args.Error(1)
}

func (m *mockPostService) Delete(ctx context.Context, id int64) (*model.DeleteResult, error) {
	args := m.Called(id)
	res, _ := args.Get(0).(*model.DeleteResult)
	return res, args.Error(1)
}

var storeErr = fmt.Errorf("%w: %w", model.ErrStoreUnavailable, errors.New(`pq: relation "posts" does not exist`))

func newRouter(svc *mockPostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPostHandler(svc)
	r := gin.New()
	r.GET("/posts", h.List)
	r.GET("/posts/:id", h.Get)
	r.POST("/posts", h.Create)
	r.PUT("/posts/:id", h.Update)
	r.DELETE("/posts/:id", h.Delete)
	return r
}

func do(r *gin.Engine, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const jsonType = "application/json"

func TestList(t *testing.T) {
	svc := new(mockPostService)
	svc.On("List").Return([]model.Post{{ID: 1, Title: "A", Content: "B", Author: "C"}}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/posts", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Success: All posts have been retrieved!","data":[{"id":1,"title":"A","content":"B","author":"C"}]}`, rec.Body.String())
}

func TestList_StoreErrorIsGeneric(t *testing.T) {
	svc := new(mockPostService)
	svc.On("List").Return(nil, storeErr)

	rec := do(newRouter(svc), http.MethodGet, "/posts", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Unsuccessful: Something went wrong! Please try again later."}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestGet(t *testing.T) {
	svc := new(mockPostService)
	svc.On("Get", int64(3)).Return(&model.Post{ID: 3, Title: "A", Content: "B", Author: "C"}, nil)
	svc.On("Get", int64(4)).Return(nil, model.ErrPostNotFound)
	svc.On("Get", int64(0)).Return(nil, model.ErrPostNotFound)

	r := newRouter(svc)

	rec := do(r, http.MethodGet, "/posts/3", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Success: A post has been retrieved!","data":{"id":3,"title":"A","content":"B","author":"C"}}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/posts/4", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Unsuccessful: Post cannot be found!"}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/posts/abc", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreate(t *testing.T) {
	svc := new(mockPostService)
	req := model.PostRequest{Title: "A", Content: "B", Author: "C"}
	svc.On("Create", req).Return(&model.Post{ID: 9, Title: "A", Content: "B", Author: "C"}, nil)

	rec := do(newRouter(svc), http.MethodPost, "/posts", jsonType, `{"title":"A","content":"B","author":"C"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Success: A post has been created!","data":{"id":9,"title":"A","content":"B","author":"C"}}`, rec.Body.String())
}

func TestCreate_Form(t *testing.T) {
	svc := new(mockPostService)
	req := model.PostRequest{Title: "A", Content: "B", Author: "C"}
	svc.On("Create", req).Return(&model.Post{ID: 9, Title: "A", Content: "B", Author: "C"}, nil)

	form := url.Values{"title": {"A"}, "content": {"B"}, "author": {"C"}}
	rec := do(newRouter(svc), http.MethodPost, "/posts", "application/x-www-form-urlencoded", form.Encode())

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := new(mockPostService)
	svc.On("Create", model.PostRequest{Title: "A"}).Return(nil, fmt.Errorf("%w: content", model.ErrMissingFields))

	rec := do(newRouter(svc), http.MethodPost, "/posts", jsonType, `{"title":"A"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Error: Missing fields must be filled (title, content, author)"}`, rec.Body.String())
}

func TestCreate_WrongTypesCountAsMissing(t *testing.T) {
	svc := new(mockPostService)
	svc.On("Create", model.PostRequest{}).Return(nil, model.ErrMissingFields)

	rec := do(newRouter(svc), http.MethodPost, "/posts", jsonType, `{"title":1,"content":"B","author":"C"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertExpectations(t)
}

func TestUpdate(t *testing.T) {
	svc := new(mockPostService)
	req := model.PostRequest{Title: "X", Content: "Y", Author: "Z"}
	svc.On("Update", int64(2), req).Return(&model.Post{ID: 2, Title: "X", Content: "Y", Author: "Z"}, nil)
	svc.On("Update", int64(5), req).Return(nil, model.ErrPostNotFound)

	r := newRouter(svc)
	body := `{"title":"X","content":"Y","author":"Z"}`

	rec := do(r, http.MethodPut, "/posts/2", jsonType, body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Success: A post has been updated!","data":{"id":2,"title":"X","content":"Y","author":"Z"}}`, rec.Body.String())

	rec = do(r, http.MethodPut, "/posts/5", jsonType, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete(t *testing.T) {
	svc := new(mockPostService)
	svc.On("Delete", int64(2)).Return(&model.DeleteResult{ID: 2}, nil)
	svc.On("Delete", int64(3)).Return(nil, model.ErrPostNotFound)
	svc.On("Delete", int64(4)).Return(nil, storeErr)

	r := newRouter(svc)

	rec := do(r, http.MethodDelete, "/posts/2", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Success: A post has been deleted!","data":{"id":2}}`, rec.Body.String())

	rec = do(r, http.MethodDelete, "/posts/3", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(r, http.MethodDelete, "/posts/4", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestParseID(t *testing.T) {
	tests := map[string]int64{
		"1":   1,
		"42":  42,
		"0":   0,
		"-5":  0,
		"abc": 0,
		"1.5": 0,

		"999999999999999999999": 0,
	}

	for raw, want := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: raw}}
		assert.Equal(t, want, parseID(c), raw)
	}
}
