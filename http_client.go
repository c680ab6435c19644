package main

import (
	"io"
	"net/http"
	"time"
)

const externalHTTPTimeout = 15 * time.Second

var externalHTTPClient = &http.Client{
	Timeout: externalHTTPTimeout,
}

// doWithRetry issues req and retries it exactly once on a transport error or
// a 5xx response. Requests with bodies must carry GetBody (http.NewRequest
// sets it for the common body types).
func doWithRetry(client *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := client.Do(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}
	if err == nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			if err != nil {
				return nil, err
			}
			return nil, bodyErr
		}
		retry.Body = body
	}
	return client.Do(retry)
}
