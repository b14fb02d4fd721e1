package botlog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIsBotUserAgent(t *testing.T) {
	cases := []struct {
		userAgent string
		isBot     bool
	}{
		{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", true},
		{"Mozilla/5.0 (compatible; bingbot/2.0)", true},
		{"Twitterbot/1.0", true},
		{"Mozilla/5.0 (compatible; AHREFSBOT/7.0)", true},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36", false},
		{"curl/8.4.0", false},
		{"", false},
	}

	for _, c := range cases {
		require.Equal(t, c.isBot, IsBotUserAgent(c.userAgent), "user agent %q", c.userAgent)
	}
}

func TestHandler_AlwaysAcknowledges(t *testing.T) {
	r := gin.New()
	r.POST("/bot-log", Handler)

	for _, userAgent := range []string{"Googlebot/2.1", "curl/8.4.0"} {
		req, _ := http.NewRequest(http.MethodPost, "/bot-log", nil)
		req.Header.Set("User-Agent", userAgent)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"logged": true}`, rec.Body.String())
	}
}
