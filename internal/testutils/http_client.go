package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// HTTPClient drives a gin router in-process.
type HTTPClient struct {
	router *gin.Engine
	token  string
}

func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{
		router: router,
		token:  token,
	}
}

// WithToken returns a client that authenticates with token.
func (c *HTTPClient) WithToken(token string) *HTTPClient {
	return &HTTPClient{router: c.router, token: token}
}

type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

func (c *HTTPClient) Do(req Request) (*Response, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		// Pre-encoded bodies (multipart) are sent as-is
		if buf, ok := req.Body.(*bytes.Buffer); ok {
			bodyReader = buf
		} else {
			bodyBytes, err := json.Marshal(req.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal request body: %v", err)
			}
			bodyReader = bytes.NewReader(bodyBytes)
		}
	}

	httpReq, err := http.NewRequest(req.Method, req.Path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	if req.Headers == nil || req.Headers["Content-Type"] == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, httpReq)

	return &Response{
		StatusCode: w.Code,
		Body:       w.Body.Bytes(),
		Headers:    w.Header(),
	}, nil
}

func (c *HTTPClient) GET(path string) (*Response, error) {
	return c.Do(Request{Method: http.MethodGet, Path: path})
}

func (c *HTTPClient) POST(path string, body interface{}) (*Response, error) {
	return c.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

func (c *HTTPClient) PUT(path string, body interface{}) (*Response, error) {
	return c.Do(Request{Method: http.MethodPut, Path: path, Body: body})
}

func (c *HTTPClient) DELETE(path string) (*Response, error) {
	return c.Do(Request{Method: http.MethodDelete, Path: path})
}

// PostMultipart sends fields and a single file part named fileField.
func (c *HTTPClient) PostMultipart(path string, fields map[string]string, fileField, fileName, contentType string, content []byte) (*Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if fileField != "" {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fileField, fileName)}
		h["Content-Type"] = []string{contentType}
		part, err := writer.CreatePart(h)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(content); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return c.Do(Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    body,
		Headers: map[string]string{"Content-Type": writer.FormDataContentType()},
	})
}
