package store

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPut struct {
	path        string
	contentType string
	body        string
}

func newFakeBucket(t *testing.T, bucket string) (*httptest.Server, *[]recordedPut) {
	t.Helper()
	var mu sync.Mutex
	puts := []recordedPut{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if !strings.HasPrefix(r.URL.Path, "/"+bucket+"/") {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchBucket</Code><Message>The specified bucket does not exist</Message></Error>`)
			return
		}
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		puts = append(puts, recordedPut{path: r.URL.Path, contentType: r.Header.Get("Content-Type"), body: string(body)})
		mu.Unlock()
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, &puts
}

func newTestObjects(srv *httptest.Server, bucket string) *Objects {
	client := s3.New(s3.Options{
		Region:                     "us-east-1",
		BaseEndpoint:               aws.String(srv.URL),
		UsePathStyle:               true,
		Credentials:                credentials.NewStaticCredentialsProvider("key", "secret", ""),
		RetryMaxAttempts:           1,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	})
	objects := newObjects(client, ObjectsConfig{
		Bucket:        bucket,
		PublicBaseURL: "https://cdn.test/" + bucket,
	})
	objects.newKey = func(original string) string { return "fixed" + strings.ToLower(original[strings.LastIndex(original, "."):]) }
	return objects
}

func TestObjectsPutReturnsPublicURL(t *testing.T) {
	srv, puts := newFakeBucket(t, "images")
	objects := newTestObjects(srv, "images")

	got, err := objects.Put(context.Background(), Upload{
		Name:        "Sketch.PNG",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/images/fixed.png", got)

	require.Len(t, *puts, 1)
	assert.Equal(t, "/images/fixed.png", (*puts)[0].path)
	assert.Equal(t, "image/png", (*puts)[0].contentType)
	assert.Equal(t, "png-bytes", (*puts)[0].body)
}

func TestObjectsPutMissingBucketIsSetupHint(t *testing.T) {
	srv, _ := newFakeBucket(t, "images")
	objects := newTestObjects(srv, "gallery")

	_, err := objects.Put(context.Background(), Upload{Name: "a.jpg", Body: strings.NewReader("x")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBucketNotFound))
	assert.Contains(t, err.Error(), `"gallery"`)
	assert.Equal(t, err.Error(), UserMessage(err, "fallback"))
}

func TestRandomKeyPreservesExtension(t *testing.T) {
	a := RandomKey("photo.JPG")
	b := RandomKey("photo.JPG")
	assert.True(t, strings.HasSuffix(a, ".jpg"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.TrimSuffix(a, ".jpg"), 36)
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.test/x", publicBaseURL(ObjectsConfig{PublicBaseURL: "https://cdn.test/x/"}))
	assert.Equal(t, "http://minio:9000/images", publicBaseURL(ObjectsConfig{Endpoint: "http://minio:9000", Bucket: "images"}))
	assert.Equal(t, "https://images.s3.eu-west-1.amazonaws.com", publicBaseURL(ObjectsConfig{Bucket: "images", Region: "eu-west-1"}))
}
