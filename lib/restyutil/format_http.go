package restyutil

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// formatHttpMessage renders one full exchange the way the sinks store
// it, a REQUEST section followed by a RESPONSE section.
func formatHttpMessage(res *resty.Response) string {
	var out strings.Builder
	req := res.Request

	out.WriteString("---- REQUEST ----\n\n")
	fmt.Fprintf(&out, "%s %s\n\n", req.Method, req.URL)
	writeHeaders(&out, req.RawRequest.Header)
	out.WriteString("\n\n")
	out.WriteString(requestBody(req.RawRequest))
	out.WriteString("\n\n")

	// a redirected response reports the location it landed on
	responseUrl := req.URL
	if redirected, err := res.RawResponse.Location(); err == nil {
		responseUrl = redirected.String()
	}

	out.WriteString("---- RESPONSE ----\n\n")
	fmt.Fprintf(&out, "%d %s\n\n", res.StatusCode(), responseUrl)
	writeHeaders(&out, res.Header())
	out.WriteString("\n\n")
	out.WriteString(res.String())

	return out.String()
}

func writeHeaders(out *strings.Builder, headers http.Header) {
	first := true
	for key, values := range headers {
		for _, v := range values {
			if !first {
				out.WriteByte('\n')
			}
			fmt.Fprintf(out, "%s: %s", key, v)
			first = false
		}
	}
}

func requestBody(req *http.Request) string {
	if req.GetBody == nil {
		return ""
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Sprintf("failed to get request body: %s", err)
	}
	defer body.Close()

	read, err := io.ReadAll(body)
	if err != nil {
		return fmt.Sprintf("failed to read request body: %s", err)
	}
	return string(read)
}
