package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stamptrail/stampbook/internal/model"
)

func TestHandleUploadRejectsMissingFile(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/passport/upload", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	s := &Server{}
	require.NoError(t, s.handleUpload(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no passport page uploaded", body["message"])
}

func TestHandleUploadReturnsExtraction(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("passportPage", "page1.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/passport/upload", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	s := &Server{}
	require.NoError(t, s.handleUpload(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []model.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.NotEmpty(t, rows)

	// Sequence numbers are assigned densely before the rows leave the server.
	for i, row := range rows {
		assert.Equal(t, strconv.Itoa(i+1), row.SequenceNumber)
		assert.NotEmpty(t, row.Country)
		assert.NotEmpty(t, row.Date)
		assert.NotNil(t, row.Confidence)
	}
}
