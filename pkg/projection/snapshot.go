package projection

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-briefwizard/pkg/brief"
)

// DecodeError reports why a snapshot token could not be turned back into a
// brief. Callers render it as a "no data" state; the token is never partially
// trusted.
type DecodeError struct {
	Stage string // "base64", "json" or "validate"
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("projection: decode snapshot (%s): %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeSnapshot serializes the brief into a URL-safe token: standard base64
// over the canonical JSON form.
func EncodeSnapshot(b brief.Brief) (string, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("projection: encode snapshot: %w", err)
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// DecodeSnapshot reverses EncodeSnapshot and strictly validates the result.
// Any failure along the way is a *DecodeError.
func DecodeSnapshot(token string) (brief.Brief, error) {
	var b brief.Brief
	payload, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return b, &DecodeError{Stage: "base64", Err: err}
	}
	if err := json.Unmarshal(payload, &b); err != nil {
		return b, &DecodeError{Stage: "json", Err: err}
	}
	if result := b.Validate(); !result.Valid {
		return brief.Brief{}, &DecodeError{
			Stage: "validate",
			Err:   fmt.Errorf("%d issue(s), first: %s", len(result.Issues), result.Issues[0].Field),
		}
	}
	return b, nil
}

// ShareLink builds the shareable view URL for a brief: the snapshot token as
// a query parameter on the view route of the given origin.
func ShareLink(origin string, b brief.Brief) (string, error) {
	token, err := EncodeSnapshot(b)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(origin, "/") + "/brief/view?data=" + url.QueryEscape(token), nil
}
