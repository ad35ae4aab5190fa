package router_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cloudbox/internal/config"
	"cloudbox/internal/domain"
	"cloudbox/internal/handler"
	"cloudbox/internal/port"
	"cloudbox/internal/router"
	"cloudbox/internal/service"
	"cloudbox/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// buildRouter wires a real FileService over gateway mocks behind the full
// route/middleware stack, so requests travel the same path as in production.
func buildRouter(repo *mocks.MockFileMetadataRepo, storage *mocks.MockObjectStorage, ingest *mocks.MockIngestPipeline) *gin.Engine {
	s3Cfg := &config.S3Config{Bucket: "cloudbox-bucket", MaxFileSizeMB: 5, PresignExpiry: 3600}
	authCfg := config.AuthConfig{Verify: false}

	fileSvc := service.NewFileService(repo, storage, ingest, s3Cfg)
	fileH := handler.NewFileHandler(fileSvc, s3Cfg)
	healthH := handler.NewHealthHandler(repo)

	return router.Setup(new(mocks.MockTokenVerifier), authCfg, fileH, healthH)
}

func multipartBody(userID, fileName string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField("user_id", userID)
	part, _ := writer.CreateFormFile("file", fileName)
	_, _ = part.Write(content)
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestRouter_UploadThenFetch(t *testing.T) {
	repo := new(mocks.MockFileMetadataRepo)
	storage := new(mocks.MockObjectStorage)
	ingest := new(mocks.MockIngestPipeline)
	r := buildRouter(repo, storage, ingest)

	// In-memory table: Put stores the record, Get returns it.
	var stored *domain.FileMetadata
	ingest.On("Emit", mock.Anything, mock.Anything).Return(nil)
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.FileMetadata")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.FileMetadata) }).
		Return(nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{}, nil)

	body, contentType := multipartBody("u1", "cat.png", bytes.Repeat([]byte{0x42}, 500))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, stored)
	assert.Equal(t, "u1/"+stored.FileID+"/cat.png", stored.FileKey)

	repo.On("Get", mock.Anything, "u1", stored.FileID).Return(stored, nil)
	storage.On("PresignGet", mock.Anything, "cloudbox-bucket", stored.FileKey, int64(3600)).
		Return("https://cloudbox-bucket.s3.amazonaws.com/"+stored.FileKey+"?sig", nil)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/fetch?user_id=u1&file_id="+stored.FileID, http.NoBody)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["presigned_url"], "u1/"+stored.FileID+"/cat.png")
}

func TestRouter_UploadWithoutToken(t *testing.T) {
	repo := new(mocks.MockFileMetadataRepo)
	storage := new(mocks.MockObjectStorage)
	ingest := new(mocks.MockIngestPipeline)
	r := buildRouter(repo, storage, ingest)

	body, contentType := multipartBody("u1", "cat.png", []byte("x"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	ingest.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestRouter_FetchWithoutToken(t *testing.T) {
	r := buildRouter(new(mocks.MockFileMetadataRepo), new(mocks.MockObjectStorage), new(mocks.MockIngestPipeline))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/fetch?user_id=u1&file_id=f1", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	repo := new(mocks.MockFileMetadataRepo)
	repo.On("Ping", mock.Anything).Return(nil)
	r := buildRouter(repo, new(mocks.MockObjectStorage), new(mocks.MockIngestPipeline))

	for _, path := range []string{"/home", "/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "expected %s to be public", path)
	}
}
