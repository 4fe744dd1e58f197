// Package client is the Go counterpart of the browser form: it runs the
// whole-form gate before anything touches the network, encodes the
// submission as multipart form data, and surfaces transport problems as a
// single network error so callers can keep their form state for retry.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"

	"formsubmit/internal/dtos"
	"formsubmit/internal/models"
	"formsubmit/internal/validation"
)

// ErrNetwork marks transport failures: the request never completed or the
// response was not well-formed.
var ErrNetwork = errors.New("network error")

// FieldErrors reports which fields failed the whole-form gate. When Submit
// returns this, no request was sent.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name, msg := range e {
		if msg != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// Submit validates the form, then POSTs it as multipart data. The résumé
// content is read from resume and sent as a binary part; it is omitted
// entirely when values.Resume is nil. On success the new record's id is
// returned.
func (c *Client) Submit(ctx context.Context, values validation.Values, resume io.Reader) (string, error) {
	if errs, ok := validation.All(values); !ok {
		failed := FieldErrors{}
		for name, msg := range errs {
			if msg != "" {
				failed[name] = msg
			}
		}
		return "", failed
	}

	body, contentType, err := encodeForm(values, resume)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/forms", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	var out dtos.SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", ErrNetwork, err)
	}
	if resp.StatusCode != http.StatusCreated || !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "Submission failed"
		}
		return "", errors.New(msg)
	}
	return out.ID, nil
}

// ListRecent fetches the most recent submissions, newest first.
func (c *Client) ListRecent(ctx context.Context) ([]models.Submission, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/forms", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var fail dtos.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&fail); err != nil || fail.Message == "" {
			return nil, fmt.Errorf("listing failed with status %d", resp.StatusCode)
		}
		return nil, errors.New(fail.Message)
	}

	var subs []models.Submission
	if err := json.NewDecoder(resp.Body).Decode(&subs); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrNetwork, err)
	}
	return subs, nil
}

func encodeForm(values validation.Values, resume io.Reader) (*bytes.Buffer, string, error) {
	subjects := values.Subjects
	if subjects == nil {
		subjects = map[string]bool{}
	}
	subjectsJSON, err := json.Marshal(subjects)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"firstName": values.FirstName,
		"lastName":  values.LastName,
		"email":     values.Email,
		"contact":   values.Contact,
		"gender":    values.Gender,
		"subjects":  string(subjectsJSON),
		"url":       values.URL,
		"select":    values.Select,
		"about":     values.About,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if values.Resume != nil && resume != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename=%q`, values.Resume.Name))
		if values.Resume.MimeType != "" {
			h.Set("Content-Type", values.Resume.MimeType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, resume); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
