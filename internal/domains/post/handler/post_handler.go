package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blogpost-backend/internal/domains/post/model"
	"blogpost-backend/internal/domains/post/service"
	"blogpost-backend/internal/shared/middleware"
	"blogpost-backend/internal/shared/response"
)

type PostHandler struct {
	service service.ServiceInterface
}

func NewPostHandler(svc service.ServiceInterface) *PostHandler {
	return &PostHandler{service: svc}
}

// parseID returns 0 for anything that is not a positive base-10 integer;
// the service treats 0 as "no such row".
func parseID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// bindPost decodes JSON or urlencoded bodies. A body that fails to decode
// counts as empty so validation reports the missing fields.
func bindPost(c *gin.Context) model.PostRequest {
	var req model.PostRequest
	if err := c.ShouldBind(&req); err != nil {
		return model.PostRequest{}
	}
	return req
}

func (h *PostHandler) fail(c *gin.Context, err error) {
	response.Error(c, model.ToHTTPStatus(err), model.ToMessage(err))
}

func logMutation(c *gin.Context, action string, id int64) {
	log.Ctx(c.Request.Context()).Info().
		Str("admin", c.GetString(middleware.ContextKeyUsername)).
		Str("action", action).
		Int64("post_id", id).
		Msg("Post mutated")
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /posts
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.MsgListed, posts)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /posts/:id
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.service.Get(c.Request.Context(), parseID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.MsgRetrieved, post)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /posts (bearer token)
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Create(c *gin.Context) {
	post, err := h.service.Create(c.Request.Context(), bindPost(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	logMutation(c, "create", post.ID)
	response.Success(c, http.StatusCreated, model.MsgCreated, post)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /posts/:id (bearer token)
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Update(c *gin.Context) {
	post, err := h.service.Update(c.Request.Context(), parseID(c), bindPost(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	logMutation(c, "update", post.ID)
	response.Success(c, http.StatusOK, model.MsgUpdated, post)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /posts/:id (bearer token)
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Delete(c *gin.Context) {
	res, err := h.service.Delete(c.Request.Context(), parseID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	logMutation(c, "delete", res.ID)
	response.Success(c, http.StatusOK, model.MsgDeleted, res)
}
