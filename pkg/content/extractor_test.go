package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExtractor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		wantContent string
		wantErr     bool
		statusCode  int
	}{
		{
			name: "successful extraction",
			htmlContent: `<!DOCTYPE html>
				<html>
				<head><title>Understanding Agni</title></head>
				<body>
					<article>
						<h1>Understanding Agni</h1>
						<p>Agni is the digestive fire that transforms food into tissue.</p>
						<p>A balanced agni supports steady energy through the day.</p>
					</article>
				</body>
				</html>`,
			wantContent: "digestive fire",
			statusCode:  http.StatusOK,
		},
		{
			name: "extraction with minimal content",
			htmlContent: `<!DOCTYPE html>
				<html>
				<body>
					<p>Sip warm water before meals</p>
				</body>
				</html>`,
			wantContent: "Sip warm water before meals",
			statusCode:  http.StatusOK,
		},
		{
			name:        "server error",
			htmlContent: "error",
			wantErr:     true,
			statusCode:  http.StatusInternalServerError,
		},
		{
			name:        "not found",
			htmlContent: "not found",
			wantErr:     true,
			statusCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "ayurscope-test", r.Header.Get("User-Agent"))
				if tt.statusCode == http.StatusOK {
					w.Header().Set("Content-Type", "text/html")
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			extractor := NewHTTPExtractor(10*time.Second, "ayurscope-test")

			content, err := extractor.Extract(context.Background(), server.URL)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, content, tt.wantContent)
		})
	}
}

func TestHTTPExtractor_Extract_Timeout(t *testing.T) {
	// create slow server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body>Too late</body></html>"))
	}))
	defer server.Close()

	extractor := NewHTTPExtractor(100*time.Millisecond, "ayurscope-test")

	_, err := extractor.Extract(context.Background(), server.URL)
	require.Error(t, err)
}

func TestHTTPExtractor_Extract_InvalidURL(t *testing.T) {
	extractor := NewHTTPExtractor(time.Second, "ayurscope-test")

	t.Run("unparsable", func(t *testing.T) {
		_, err := extractor.Extract(context.Background(), "http://[::1]:namedport")
		require.Error(t, err)
	})

	t.Run("missing host", func(t *testing.T) {
		_, err := extractor.Extract(context.Background(), "not-a-url")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid URL")
	})
}
