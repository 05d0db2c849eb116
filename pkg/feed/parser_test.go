package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
	<title>Ayurveda Daily</title>
	<link>http://example.com</link>
	<description>Seasonal wellness reading</description>
	<item>
		<title>Eating for Sharad</title>
		<link>http://example.com/sharad</link>
		<description>&lt;b&gt;Cooling&lt;/b&gt; foods for the autumn transition</description>
		<content:encoded><![CDATA[<p>Favor sweet fruits and ghee.</p><script>alert(1)</script>]]></content:encoded>
		<pubDate>Mon, 08 Sep 2025 10:00:00 +0000</pubDate>
		<guid>http://example.com/sharad</guid>
		<author>test@example.com (Vaidya Sharma)</author>
	</item>
	<item>
		<title>Morning Routine Basics</title>
		<link>http://example.com/dinacharya</link>
		<description>Start the day with the dosha clock</description>
		<pubDate>Tue, 09 Sep 2025 10:00:00 +0000</pubDate>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ayurscope-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssContent)) //nolint:errcheck // test server
	}))
	defer server.Close()

	parser := NewParser(5*time.Second, "ayurscope-test")
	source, err := parser.Parse(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Ayurveda Daily", source.Title)
	assert.Equal(t, "Seasonal wellness reading", source.Description)
	require.Len(t, source.Entries, 2)

	first := source.Entries[0]
	assert.Equal(t, "Eating for Sharad", first.Title)
	assert.Equal(t, "http://example.com/sharad", first.GUID)
	assert.Equal(t, "Vaidya Sharma", first.Author)
	assert.Equal(t, "Cooling foods for the autumn transition", first.Summary, "summary tags stripped")
	assert.Contains(t, first.Body, "<p>Favor sweet fruits and ghee.</p>")
	assert.NotContains(t, first.Body, "script", "script removed from body")
	assert.Equal(t, time.Date(2025, time.September, 8, 10, 0, 0, 0, time.UTC), first.Published.UTC())

	second := source.Entries[1]
	assert.Equal(t, "http://example.com/dinacharya", second.GUID, "link used when guid missing")
	assert.Empty(t, second.Author)
}

func TestParser_ParseErrors(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer server.Close()

		parser := NewParser(5*time.Second, "ayurscope-test")
		_, err := parser.Parse(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 404")
	})

	t.Run("invalid feed content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("this is not xml")) //nolint:errcheck // test server
		}))
		defer server.Close()

		parser := NewParser(5*time.Second, "ayurscope-test")
		_, err := parser.Parse(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse source")
	})

	t.Run("unreachable host", func(t *testing.T) {
		parser := NewParser(100*time.Millisecond, "ayurscope-test")
		_, err := parser.Parse(context.Background(), "http://127.0.0.1:1")
		require.Error(t, err)
	})
}
