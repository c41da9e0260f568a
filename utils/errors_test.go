package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessages(t *testing.T) {
	assert.Equal(t, ErrBookFieldsRequired, BadRequestError(ErrBookFieldsRequired, nil).Error())
	assert.Equal(t, "Failed to fetch reviews: boom", InternalError(ErrFetchReviews, errors.New("boom")).Error())
	assert.Equal(t, "MongoDB connection failed", StoreUnavailableError().Error())
}

func TestGetAppErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", BadRequestError("bad", nil))
	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.True(t, IsBadRequestError(wrapped))
	assert.False(t, IsStoreUnavailableError(wrapped))
	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.Nil(t, WrapError(nil, "ctx"))
}

func TestStoreUnavailableIsDistinctFromOperationFault(t *testing.T) {
	assert.True(t, IsStoreUnavailableError(StoreUnavailableError()))
	assert.False(t, IsStoreUnavailableError(InternalError(ErrMongoUnavailable, errors.New("x"))))
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err      error
		status   int
		expected string
	}{
		{BadRequestError(ErrReviewFieldsRequired, nil), http.StatusBadRequest, `{"error":"Book ID and review text are required"}`},
		{StoreUnavailableError(), http.StatusInternalServerError, `{"error":"MongoDB connection failed"}`},
		{InternalError(ErrAddReview, errors.New("dup key")), http.StatusInternalServerError, `{"error":"Failed to add review: dup key"}`},
		{errors.New("unexpected"), http.StatusInternalServerError, `{"error":"unexpected"}`},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		RespondError(c, tc.err)
		assert.Equal(t, tc.status, w.Code)
		assert.JSONEq(t, tc.expected, w.Body.String())
	}
}

func TestListNeverRendersNull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var items []string
	List(c, items)
	assert.Equal(t, "[]", w.Body.String())
}
