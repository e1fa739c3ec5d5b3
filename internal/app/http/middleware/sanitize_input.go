package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// maxMultipartMemory matches gin's default for multipart binding.
const maxMultipartMemory = 32 << 20

// SanitizeInput strips HTML from every string in JSON, urlencoded and
// multipart form bodies.
func SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			return
		}
		if c.Request.Body == nil {
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			setBody(c, buf)
			return
		}

		switch c.ContentType() {
		case gin.MIMEJSON:
			dec := json.NewDecoder(bytes.NewReader(buf))
			dec.UseNumber()
			var body interface{}
			if err := dec.Decode(&body); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
				return
			}
			cleaned, _ := json.Marshal(sanitizeValue(body))
			setBody(c, cleaned)

		case gin.MIMEPOSTForm:
			values, err := url.ParseQuery(string(buf))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed form"})
				return
			}
			sanitizeValues(values)
			setBody(c, []byte(values.Encode()))

		case gin.MIMEMultipartPOSTForm:
			setBody(c, buf)
			if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed form"})
				return
			}
			sanitizeValues(c.Request.MultipartForm.Value)
			sanitizeValues(c.Request.PostForm)
			sanitizeValues(c.Request.Form)

		default:
			setBody(c, buf)
		}
	}
}

// sanitizeRounds bounds how often an unescaped value is run back through
// the policy.
const sanitizeRounds = 4

// sanitizeString strips markup and then undoes the entity escaping the policy
// adds, so "R&B" stays "R&B". Unescaping can surface markup that was sent
// entity-encoded, so the result is sanitised again until it stops changing.
// A value that never settles is returned in its escaped form.
func sanitizeString(s string) string {
	for i := 0; i < sanitizeRounds; i++ {
		escaped := strictPolicy.Sanitize(s)
		out := html.UnescapeString(escaped)
		if out == s {
			return out
		}
		if i == sanitizeRounds-1 {
			return escaped
		}
		s = out
	}
	return s
}

func sanitizeValues(values map[string][]string) {
	for k, list := range values {
		for i, v := range list {
			list[i] = sanitizeString(v)
		}
		values[k] = list
	}
}

func sanitizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return sanitizeString(t)
	case []interface{}:
		for i := range t {
			t[i] = sanitizeValue(t[i])
		}
		return t
	case map[string]interface{}:
		for k, item := range t {
			t[k] = sanitizeValue(item)
		}
		return t
	default:
		return v
	}
}

func setBody(c *gin.Context, b []byte) {
	c.Request.Body = io.NopCloser(bytes.NewReader(b))
	c.Request.ContentLength = int64(len(b))
}
