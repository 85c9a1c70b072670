// Package testutil builds gin contexts for handler tests without a router.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"likenovel/internal/domain/user"
	"likenovel/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext returns a context whose request carries body encoded as JSON when body is non-nil.
func NewTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		r = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, r)
	if body != nil {
		c.Request.Header.Set(constants.HeaderContentType, "application/json")
	}
	return c, w
}

// SetSubject stores what the auth middleware would have resolved for a signed-in caller.
func SetSubject(c *gin.Context, userID int64, role user.Role) {
	c.Set(constants.ContextKeySubject, user.Subject{Sub: "test-sub", UserID: userID, Role: role})
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyRole, role.String())
}

func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func SetQueryParams(c *gin.Context, params map[string]string) {
	q := c.Request.URL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

func ParseResponse(w *httptest.ResponseRecorder, target any) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

type ResultResponse struct {
	Result bool `json:"result"`
}

type PagedResponse struct {
	TotalCount   int64           `json:"total_count"`
	Page         int             `json:"page"`
	CountPerPage int             `json:"count_per_page"`
	Results      json.RawMessage `json:"results"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
