package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}))
}

func TestExtractKnownBodySelector(t *testing.T) {
	srv := serveHTML(t, `<html><body>
		<div id="articleBodyContents">
			비트코인 가격이 <b>상승</b>했다.
			<script>trackPageView();</script>
			<div class="ad_banner">광고 배너</div>
			<div class="advertisement">스폰서 콘텐츠</div>
			거래량도 늘었다.
		</div>
	</body></html>`)
	defer srv.Close()

	text, err := NewExtractor().Extract(context.Background(), srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, "비트코인 가격이 상승했다. 거래량도 늘었다.", text)
	if strings.Contains(text, "광고") || strings.Contains(text, "trackPageView") {
		t.Errorf("ad or script content leaked into extracted text: %q", text)
	}
}

func TestExtractSelectorPriority(t *testing.T) {
	// dic_area appears earlier in the document, but articleBodyContents
	// has higher priority.
	srv := serveHTML(t, `<html><body>
		<div id="dic_area">후순위 본문입니다.</div>
		<div id="articleBodyContents">우선순위 본문입니다.</div>
	</body></html>`)
	defer srv.Close()

	text, err := NewExtractor().Extract(context.Background(), srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, "우선순위 본문입니다.", text)
}

func TestExtractParagraphFallback(t *testing.T) {
	long1 := strings.Repeat("가", 60)
	long2 := strings.Repeat("나", 60)
	srv := serveHTML(t, `<html><body>
		<p>짧은 내비게이션 링크</p>
		<p>`+long1+`</p>
		<p>캡션</p>
		<p>`+long2+`</p>
	</body></html>`)
	defer srv.Close()

	text, err := NewExtractor().Extract(context.Background(), srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, long1+"\n"+long2, text)
}

func TestExtractNoUsableText(t *testing.T) {
	srv := serveHTML(t, `<html><body><p>짧음</p><div>메뉴</div></body></html>`)
	defer srv.Close()

	_, err := NewExtractor().Extract(context.Background(), srv.URL)

	var exErr *ExtractionError
	if !errors.As(err, &exErr) {
		t.Fatalf("got %v, want *ExtractionError", err)
	}
	assert.Equal(t, srv.URL, exErr.URL)
	if !strings.Contains(exErr.Error(), srv.URL) {
		t.Errorf("error message %q does not name the URL", exErr.Error())
	}
}

func TestExtractUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewExtractor().Extract(context.Background(), srv.URL)

	assert.NotEqual(t, nil, err)
	var exErr *ExtractionError
	if errors.As(err, &exErr) {
		t.Error("upstream status failure must not be an ExtractionError")
	}
}
