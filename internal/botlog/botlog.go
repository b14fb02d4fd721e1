// Package botlog classifies request user agents against a known-bots list
// and records hits. It is entirely independent of content storage.
package botlog

import (
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var botPattern = regexp.MustCompile(`(?i)(Googlebot|bingbot|DuckDuckBot|Baiduspider|YandexBot|Slurp|Sogou|facebot|ia_archiver|Twitterbot|Discordbot|linkedinbot|SemrushBot|AhrefsBot)`)

var loggingEnv = os.Getenv("LOGGING")

// IsBotUserAgent reports whether userAgent matches the known-bots list.
func IsBotUserAgent(userAgent string) bool {
	return botPattern.MatchString(userAgent)
}

// LogBotHit appends a bot hit record to log/bot.log.
// Fields: timestamp (RFC3339) | user agent | url | referer? | ip?
func LogBotHit(userAgent string, url string, referer string, ip string) {
	if !strings.EqualFold(loggingEnv, "true") {
		return
	}

	// ensure log directory exists
	if err := os.MkdirAll("log", 0o750); err != nil {
		// best-effort: if logging fails, do not crash the app, just return
		return
	}
	f, err := os.OpenFile("log/bot.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		// best-effort: if logging fails, do not crash the app, just return
		return
	}
	defer func() { _ = f.Close() }()

	ts := time.Now().UTC().Format(time.RFC3339)
	parts := []string{ts, userAgent, url}
	if referer != "" {
		parts = append(parts, referer)
	}
	if ip != "" {
		parts = append(parts, ip)
	}
	line := strings.Join(parts, " | ") + "\n"

	if _, err := f.WriteString(line); err != nil {
		// best-effort: ignore write errors
		return
	}
}

// Handler records a hit when the calling user agent is a known bot and
// always answers with a logged acknowledgement.
func Handler(c *gin.Context) {
	userAgent := c.GetHeader("User-Agent")
	if IsBotUserAgent(userAgent) {
		LogBotHit(userAgent, c.Request.URL.String(), c.GetHeader("Referer"), c.ClientIP())
	}

	c.JSON(http.StatusOK, gin.H{"logged": true})
}
