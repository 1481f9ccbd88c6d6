package gemini

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
)

const maxInlineDump = 120

// logRequest prints the outgoing request when verbose mode is on. The API
// key header is redacted and inline base64 payloads are truncated.
func (c *Client) logRequest(method, url string, headers http.Header, body []byte) {
	if !c.verbose {
		return
	}

	fmt.Fprintf(os.Stderr, "\n--- Request ---\n")
	fmt.Fprintf(os.Stderr, "%s %s\n", method, url)
	for key, values := range headers {
		value := strings.Join(values, ", ")
		if strings.EqualFold(key, "x-goog-api-key") {
			value = redactKey(value)
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", key, value)
	}
	fmt.Fprintf(os.Stderr, "\n%s\n", truncateInline(body))
	fmt.Fprintf(os.Stderr, "--- End Request ---\n\n")
}

// logResponse prints the response status, headers and body when verbose
// mode is on.
func (c *Client) logResponse(status int, headers http.Header, body []byte) {
	if !c.verbose {
		return
	}

	fmt.Fprintf(os.Stderr, "\n--- Response ---\n")
	fmt.Fprintf(os.Stderr, "Status: %d\n", status)
	for key, values := range headers {
		fmt.Fprintf(os.Stderr, "%s: %s\n", key, strings.Join(values, ", "))
	}
	fmt.Fprintf(os.Stderr, "\n%s\n", truncateInline(body))
	fmt.Fprintf(os.Stderr, "--- End Response ---\n\n")
}

func redactKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// truncateInline shortens base64 "data" fields so verbose dumps stay
// readable. Anything that is not valid JSON is printed as-is.
func truncateInline(body []byte) string {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return string(body)
	}
	truncateDataFields(doc)
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return string(body)
	}
	return string(pretty)
}

func truncateDataFields(doc any) {
	switch v := doc.(type) {
	case map[string]any:
		for key, val := range v {
			if s, ok := val.(string); ok && key == "data" && len(s) > maxInlineDump {
				v[key] = s[:maxInlineDump] + fmt.Sprintf("... (%d bytes)", len(s))
				continue
			}
			truncateDataFields(val)
		}
	case []any:
		for _, item := range v {
			truncateDataFields(item)
		}
	}
}
