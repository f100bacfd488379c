package gtts

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// rpcID is the batchexecute RPC that returns speech audio.
const rpcID = "jQ1olc"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// audioPattern extracts the base64 audio from a batchexecute response line.
var audioPattern = regexp.MustCompile(`jQ1olc","\[\\"(.*)\\"]`)

// httpClient handles HTTP communication with the translate endpoint.
type httpClient struct {
	client  *http.Client
	baseURL string
	tld     string
	logger  *slog.Logger
}

// newHTTPClient creates a new HTTP client.
func newHTTPClient(cfg *clientConfig) *httpClient {
	return &httpClient{
		client:  cfg.httpClient,
		baseURL: cfg.baseURL,
		tld:     cfg.tld,
		logger:  cfg.logger,
	}
}

// marshalCompact encodes v as JSON without HTML escaping and without the
// trailing newline added by json.Encoder.
func marshalCompact(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// packageRPC builds the f.req form value for one part.
func packageRPC(text, lang string, slow bool) (string, error) {
	var speed any
	if slow {
		speed = true
	}

	param, err := marshalCompact([]any{text, lang, speed, "null"})
	if err != nil {
		return "", fmt.Errorf("marshal rpc parameter: %w", err)
	}

	rpc, err := marshalCompact([]any{[]any{[]any{rpcID, param, nil, "generic"}}})
	if err != nil {
		return "", fmt.Errorf("marshal rpc: %w", err)
	}
	return rpc, nil
}

// synthesizePart sends one part and returns its decoded audio.
func (h *httpClient) synthesizePart(ctx context.Context, index int, text string, req *Request) ([]byte, error) {
	rpc, err := packageRPC(text, req.Lang, req.Slow)
	if err != nil {
		return nil, err
	}
	body := url.Values{"f.req": {rpc}}.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	h.setHeaders(httpReq)

	h.logger.Debug("gtts: part request", "part", index, "chars", len([]rune(text)), "url", h.baseURL)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, &Error{
			Part:      index,
			TLD:       h.tld,
			LangCheck: req.LangCheck,
			Lang:      req.Lang,
			Err:       err,
		}
	}
	defer resp.Body.Close()

	h.logger.Debug("gtts: part response", "part", index, "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, h.newError(resp, index, req)
	}

	audio, err := decodeAudio(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("part %d: %w", index, err)
	}
	if len(audio) == 0 {
		return nil, h.newError(resp, index, req)
	}

	h.logger.Debug("gtts: part decoded", "part", index, "bytes", len(audio))
	return audio, nil
}

// setHeaders sets common headers for endpoint requests.
func (h *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Referer", "http://translate.google.com/")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")
}

func (h *httpClient) newError(resp *http.Response, index int, req *Request) *Error {
	return &Error{
		HTTPStatus: resp.StatusCode,
		Reason:     http.StatusText(resp.StatusCode),
		Part:       index,
		TLD:        h.tld,
		LangCheck:  req.LangCheck,
		Lang:       req.Lang,
	}
}

// decodeAudio scans a batchexecute response for the audio payload.
// It returns nil bytes and no error when the response carries no audio.
func decodeAudio(r io.Reader) ([]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, rpcID) {
			continue
		}
		m := audioPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		audio, err := base64.StdEncoding.DecodeString(m[1])
		if err != nil {
			return nil, fmt.Errorf("decode audio: %w", err)
		}
		return audio, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return nil, nil
}
