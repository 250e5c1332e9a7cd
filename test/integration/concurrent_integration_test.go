//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// postJSON is safe to call from worker goroutines; failures surface as a
// zero status.
func postJSON(client *http.Client, url, body string) (int, []byte) {
	resp, err := client.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		return 0, nil
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil
	}

	return resp.StatusCode, data
}

func listQuotes(t *testing.T, client *http.Client, base string) []map[string]string {
	t.Helper()

	resp, err := client.Get(base + "/quotes")
	require.NoError(t, err)
	defer resp.Body.Close()

	var quotes []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&quotes))

	return quotes
}

// TestConcurrent_QuoteAdds verifies N concurrent adds yield N quotes with
// N distinct identifiers.
func TestConcurrent_QuoteAdds(t *testing.T) {
	server := httptest.NewServer(newRouter(t))
	defer server.Close()

	client := server.Client()

	const numGoroutines = 100

	var wg sync.WaitGroup
	var created int32

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			resp, err := client.Post(server.URL+"/quotes", "application/json",
				strings.NewReader(fmt.Sprintf(`{"text":"quote %d","speaker":"s"}`, id)))
			if err != nil {
				return
			}
			resp.Body.Close()

			if resp.StatusCode == http.StatusCreated {
				atomic.AddInt32(&created, 1)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(numGoroutines), atomic.LoadInt32(&created))

	quotes := listQuotes(t, client, server.URL)
	require.Len(t, quotes, numGoroutines)

	ids := make(map[string]struct{}, numGoroutines)
	for _, q := range quotes {
		ids[q["id"]] = struct{}{}
	}

	assert.Len(t, ids, numGoroutines, "identifiers must be pairwise distinct")
}

// TestConcurrent_ReadsDuringWrites verifies listings taken while adds are in
// flight are consistent prefixes: lengths never shrink and earlier entries
// keep their position.
func TestConcurrent_ReadsDuringWrites(t *testing.T) {
	server := httptest.NewServer(newRouter(t))
	defer server.Close()

	client := server.Client()

	const writes = 50

	done := make(chan struct{})

	var writers sync.WaitGroup
	for i := 0; i < writes; i++ {
		writers.Add(1)
		go func(id int) {
			defer writers.Done()
			postJSON(client, server.URL+"/quotes", fmt.Sprintf(`{"text":"w%d","speaker":"s"}`, id))
		}(i)
	}

	go func() {
		writers.Wait()
		close(done)
	}()

	var previous []map[string]string

	for {
		current := listQuotes(t, client, server.URL)
		require.GreaterOrEqual(t, len(current), len(previous))

		for i := range previous {
			require.Equal(t, previous[i]["id"], current[i]["id"], "insertion order must be stable")
		}

		previous = current

		select {
		case <-done:
			assert.Len(t, listQuotes(t, client, server.URL), writes)
			return
		default:
		}
	}
}

// TestConcurrent_LinkLifecycle runs many independent shorten, resolve and
// delete sequences at once.
func TestConcurrent_LinkLifecycle(t *testing.T) {
	server := httptest.NewServer(newRouter(t))
	defer server.Close()

	client := noRedirectClient()

	const numGoroutines = 30

	var wg sync.WaitGroup
	var failures int32

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			target := fmt.Sprintf("https://example.com/%d", id)

			status, body := postJSON(client, server.URL+"/shorten", `{"url":"`+target+`"}`)
			if status != http.StatusOK {
				atomic.AddInt32(&failures, 1)
				return
			}

			var link map[string]string
			if err := json.Unmarshal(body, &link); err != nil {
				atomic.AddInt32(&failures, 1)
				return
			}

			resp, err := client.Get(server.URL + "/path/" + link["short"])
			if err != nil {
				atomic.AddInt32(&failures, 1)
				return
			}
			resp.Body.Close()

			// Codes are random and may collide; a collision resolves to the
			// other goroutine's URL, which is still a 302.
			if resp.StatusCode != http.StatusFound && resp.StatusCode != http.StatusNotFound {
				atomic.AddInt32(&failures, 1)
			}

			req, _ := http.NewRequest(http.MethodDelete, server.URL+"/shorten/"+link["short"], nil)
			if resp, err = client.Do(req); err == nil {
				resp.Body.Close()
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(0), atomic.LoadInt32(&failures))
}

// TestConcurrent_MixedResources verifies the two stores are independent
// under mixed load.
func TestConcurrent_MixedResources(t *testing.T) {
	server := httptest.NewServer(newRouter(t))
	defer server.Close()

	client := noRedirectClient()

	const perKind = 25

	var wg sync.WaitGroup

	for i := 0; i < perKind; i++ {
		wg.Add(2)

		go func(id int) {
			defer wg.Done()
			postJSON(client, server.URL+"/quotes", fmt.Sprintf(`{"text":"m%d","speaker":"s"}`, id))
		}(i)

		go func(id int) {
			defer wg.Done()
			postJSON(client, server.URL+"/shorten", fmt.Sprintf(`{"url":"https://example.com/%d"}`, id))
		}(i)
	}

	wg.Wait()

	assert.Len(t, listQuotes(t, client, server.URL), perKind)

	resp, err := client.Get(server.URL + "/-/ready")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
