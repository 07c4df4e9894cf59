package middleware

import (
	"github.com/gin-gonic/gin"

	"taskhub/pkg/translator"
)

// LanguageMiddleware stores the request language from the
// Accept-Language header for error message translation.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Raw header value, fallback to en.
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
