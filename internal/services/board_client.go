package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"board-web/dto"
	"board-web/internal/helpers"

	zipkinhttp "github.com/openzipkin/zipkin-go/middleware/http"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 4 << 20

// Credentials are the browser headers forwarded on credentialed calls.
type Credentials struct {
	Cookie        string
	Authorization string
}

// BoardClient talks to the remote board API.
type BoardClient struct {
	baseURL string
	timeout time.Duration
	http    *zipkinhttp.Client
	metrics *helpers.Metrics
}

func NewBoardClient(baseURL string, timeout time.Duration, httpClient *zipkinhttp.Client, metrics *helpers.Metrics) *BoardClient {
	return &BoardClient{
		baseURL: baseURL,
		timeout: timeout,
		http:    httpClient,
		metrics: metrics,
	}
}

// ListBoards fetches one page of a category. page is 1-based; the API is 0-based.
func (b *BoardClient) ListBoards(ctx context.Context, category string, page int) (*dto.BoardPageResponse, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("page", strconv.Itoa(page-1))

	var out dto.BoardPageResponse
	if _, err := b.do(ctx, "list", http.MethodGet, "/board/list?"+q.Encode(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BoardClient) GetBoard(ctx context.Context, id string, cred Credentials) (*dto.BoardPost, error) {
	var out dto.BoardPost
	decoded, err := b.do(ctx, "detail", http.MethodGet, "/board/"+url.PathEscape(id), nil, &cred, &out)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, &Failure{Op: "detail", Reason: ReasonUpstream, Status: http.StatusOK, Err: errors.New("empty post response")}
	}
	return &out, nil
}

// GetUserEmail resolves the viewer behind cred. Anything but a 200 with an
// email is a failure; callers treat it as an anonymous viewer.
func (b *BoardClient) GetUserEmail(ctx context.Context, cred Credentials) (string, error) {
	var out dto.UserInfoResponse
	if _, err := b.do(ctx, "userinfo", http.MethodGet, "/users/userinfo", nil, &cred, &out); err != nil {
		return "", err
	}
	if out.Data.UserEmail == "" {
		return "", &Failure{Op: "userinfo", Reason: ReasonAuth, Status: http.StatusOK, Err: errors.New("no email in user info")}
	}
	return out.Data.UserEmail, nil
}

// UpdateBoard sends the edited post. The returned post is nil when the API
// answers without a body.
func (b *BoardClient) UpdateBoard(ctx context.Context, id string, in dto.UpdateBoardDTO, cred Credentials) (*dto.BoardPost, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, &Failure{Op: "update", Reason: ReasonValidation, Err: err}
	}

	var out dto.BoardPost
	decoded, err := b.do(ctx, "update", http.MethodPut, "/board/updateBoard/"+url.PathEscape(id), payload, &cred, &out)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, nil
	}
	return &out, nil
}

// do performs one call and decodes a 2xx JSON body into out. It reports
// whether a body was decoded.
func (b *BoardClient) do(ctx context.Context, op, method, path string, body []byte, cred *Credentials, out interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, rd)
	if err != nil {
		return false, &Failure{Op: op, Reason: ReasonValidation, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred != nil {
		if cred.Cookie != "" {
			req.Header.Set("Cookie", cred.Cookie)
		}
		if cred.Authorization != "" {
			req.Header.Set("Authorization", cred.Authorization)
		}
	}

	start := time.Now()
	res, err := b.http.DoWithAppSpan(req, "board-api "+op)
	if err != nil {
		b.observe(op, string(ReasonNetwork), start)
		return false, &Failure{Op: op, Reason: ReasonNetwork, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		b.observe(op, string(ReasonNetwork), start)
		return false, &Failure{Op: op, Reason: ReasonNetwork, Status: res.StatusCode, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		reason := classifyStatus(res.StatusCode)
		b.observe(op, string(reason), start)
		return false, &Failure{Op: op, Reason: reason, Status: res.StatusCode, Err: fmt.Errorf("unexpected status %s", res.Status)}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		b.observe(op, "ok", start)
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		b.observe(op, string(ReasonUpstream), start)
		return false, &Failure{Op: op, Reason: ReasonUpstream, Status: res.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	b.observe(op, "ok", start)
	return true, nil
}

func (b *BoardClient) observe(op, outcome string, start time.Time) {
	if b.metrics == nil {
		return
	}
	b.metrics.ObserveUpstream(op, outcome, time.Since(start).Seconds())
}
