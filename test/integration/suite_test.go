//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	client       *http.Client
	response     *http.Response
	responseBody []byte
	vars         map[string]string
	err          error
}

// newTestContext creates a test context against BASE_URL, or against an
// in-process service when BASE_URL is unset.
func newTestContext(local *httptest.Server) *testContext {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = local.URL
	}

	return &testContext{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
			// Redirects are asserted, not followed.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		vars: make(map[string]string),
	}
}

// reset clears response state between scenarios.
func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		tc.response.Body.Close()
	}
	tc.response = nil
	tc.responseBody = nil
	tc.vars = make(map[string]string)
	tc.err = nil
}

// initializeScenario returns the scenario initializer bound to local.
func initializeScenario(local *httptest.Server) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := newTestContext(local)

		ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
		ctx.Step(`^I request (GET|DELETE) "([^"]*)"$`, tc.iRequest)
		ctx.Step(`^I POST "([^"]*)" with:$`, tc.iPOSTWith)
		ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
		ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
		ctx.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, tc.theResponseHeaderShouldBe)
		ctx.Step(`^the JSON field "([^"]*)" should have length (\d+)$`, tc.theJSONFieldShouldHaveLength)
		ctx.Step(`^I remember the JSON field "([^"]*)" as "([^"]*)"$`, tc.iRememberTheJSONField)
	}
}

// expand replaces {name} placeholders with remembered values.
func (tc *testContext) expand(s string) string {
	for name, value := range tc.vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}

	return s
}

// theServiceIsRunning verifies the service is reachable.
func (tc *testContext) theServiceIsRunning() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.baseURL+"/-/live", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("service is not running at %s: %w", tc.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status %d", resp.StatusCode)
	}

	return nil
}

func (tc *testContext) do(method, path string, body io.Reader) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+tc.expand(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if tc.response != nil {
		tc.response.Body.Close()
	}

	tc.response, tc.err = tc.client.Do(req)
	if tc.err != nil {
		return fmt.Errorf("request failed: %w", tc.err)
	}

	tc.responseBody, tc.err = io.ReadAll(tc.response.Body)
	if tc.err != nil {
		return fmt.Errorf("failed to read response body: %w", tc.err)
	}

	return nil
}

// iRequest makes a bodiless request to the specified path.
func (tc *testContext) iRequest(method, path string) error {
	return tc.do(method, path, nil)
}

// iPOSTWith posts the doc string as a JSON body.
func (tc *testContext) iPOSTWith(path string, body *godog.DocString) error {
	return tc.do(http.MethodPost, path, bytes.NewBufferString(tc.expand(body.Content)))
}

// theResponseStatusShouldBe asserts the response status code.
func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

// theResponseShouldContain asserts the response body contains the given text.
func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return fmt.Errorf("no response body")
	}

	body := string(tc.responseBody)
	if !strings.Contains(body, tc.expand(text)) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, body)
	}

	return nil
}

func (tc *testContext) theResponseHeaderShouldBe(name, expected string) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if got := tc.response.Header.Get(name); got != tc.expand(expected) {
		return fmt.Errorf("expected header %s=%q, got %q", name, expected, got)
	}

	return nil
}

func (tc *testContext) jsonField(field string) (string, error) {
	var obj map[string]any
	if err := json.Unmarshal(tc.responseBody, &obj); err != nil {
		return "", fmt.Errorf("response is not a JSON object: %w", err)
	}

	value, ok := obj[field].(string)
	if !ok {
		return "", fmt.Errorf("JSON field %q missing or not a string in %s", field, tc.responseBody)
	}

	return value, nil
}

func (tc *testContext) theJSONFieldShouldHaveLength(field string, length int) error {
	value, err := tc.jsonField(field)
	if err != nil {
		return err
	}

	if len(value) != length {
		return fmt.Errorf("expected %q to have length %d, got %q", field, length, value)
	}

	return nil
}

func (tc *testContext) iRememberTheJSONField(field, name string) error {
	value, err := tc.jsonField(field)
	if err != nil {
		return err
	}

	tc.vars[name] = value

	return nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	local := httptest.NewServer(newRouter(t))
	defer local.Close()

	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario(local),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
