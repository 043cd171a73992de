package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lpm/internal/profile"

	"github.com/rs/zerolog"
)

// Client talks to the host-process backend over local HTTP. Each command is
// one POST to <base>/<command> with a JSON {"input": ...} body. There is no
// retry and no cancellation beyond the context: a failed call is reported
// once and leaves the profile untouched.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a backend client. A nil httpClient gets a sane default with a
// timeout, since a hung picker dialog should not hang this process forever.
func New(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Minute}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        logger,
	}
}

// errorResponse is the body of a failed command.
type errorResponse struct {
	Error string `json:"error"`
}

// invoke posts one command and decodes its response into out (which may be
// nil for commands without a meaningful result). The envelope is assembled
// by hand so the input bytes go over the wire exactly as given; running a
// json.RawMessage back through json.Marshal would compact it and break the
// promise that the review preview shows the payload byte for byte.
func (c *Client) invoke(ctx context.Context, command string, input json.RawMessage, out any) error {
	var buf bytes.Buffer
	buf.Grow(len(input) + len(`{"input":}`))
	buf.WriteString(`{"input":`)
	buf.Write(input)
	buf.WriteByte('}')
	body := buf.Bytes()

	url := c.baseURL + "/" + command
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", command, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug().Str("command", command).Int("body_bytes", len(body)).Msg("invoking backend command")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", command, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		var er errorResponse
		if json.Unmarshal(data, &er) == nil && er.Error != "" {
			return fmt.Errorf("%s failed: %s", command, er.Error)
		}
		return fmt.Errorf("%s failed: status %d", command, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", command, err)
	}
	return nil
}

// invokeString is invoke with a plain string input.
func (c *Client) invokeString(ctx context.Context, command, input string, out any) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encoding %s input: %w", command, err)
	}
	return c.invoke(ctx, command, raw, out)
}

// ImportRegistryFile parses a .reg file on the host and returns its entries
// and any parser warnings.
func (c *Client) ImportRegistryFile(ctx context.Context, path string) (*RegistryImport, error) {
	var result RegistryImport
	if err := c.invokeString(ctx, cmdImportRegistryFile, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListChildDirectories lists the child directories of a host path.
func (c *Client) ListChildDirectories(ctx context.Context, path string) (*DirectoryList, error) {
	var result DirectoryList
	if err := c.invokeString(ctx, cmdListChildDirectories, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListDirectoryEntries lists the directories and files under a host path.
func (c *Client) ListDirectoryEntries(ctx context.Context, path string) (*DirectoryEntries, error) {
	var result DirectoryEntries
	if err := c.invokeString(ctx, cmdListDirectoryEntries, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PickExecutable opens the host file picker and returns the chosen
// executable path.
func (c *Client) PickExecutable(ctx context.Context) (string, error) {
	var result pickResponse
	if err := c.invoke(ctx, cmdPickExecutable, json.RawMessage("null"), &result); err != nil {
		return "", err
	}
	return result.Path, nil
}

// PickGameRoot opens the host directory picker for the game root override.
func (c *Client) PickGameRoot(ctx context.Context) (string, error) {
	var result pickResponse
	if err := c.invoke(ctx, cmdPickGameRoot, json.RawMessage("null"), &result); err != nil {
		return "", err
	}
	return result.Path, nil
}

// ExtractIcon extracts the icon of an executable and returns the written
// icon path.
func (c *Client) ExtractIcon(ctx context.Context, exePath string) (string, error) {
	var result iconResponse
	if err := c.invokeString(ctx, cmdExtractIcon, exePath, &result); err != nil {
		return "", err
	}
	return result.IconPath, nil
}

// HashFile computes the SHA-256 of a host file.
func (c *Client) HashFile(ctx context.Context, path string) (string, error) {
	var result hashResponse
	if err := c.invokeString(ctx, cmdHashFile, path, &result); err != nil {
		return "", err
	}
	return result.SHA256, nil
}

// TestLaunch runs a test launch with the given profile. The payload is the
// profile's canonical JSON, byte for byte.
func (c *Client) TestLaunch(ctx context.Context, cfg profile.GameConfig) error {
	payload, err := cfg.EncodeJSON()
	if err != nil {
		return err
	}
	return c.invoke(ctx, cmdTestLaunch, payload, nil)
}

// CreateProfile asks the backend to persist the profile. Same payload as
// TestLaunch.
func (c *Client) CreateProfile(ctx context.Context, cfg profile.GameConfig) error {
	payload, err := cfg.EncodeJSON()
	if err != nil {
		return err
	}
	return c.invoke(ctx, cmdCreateProfile, payload, nil)
}
