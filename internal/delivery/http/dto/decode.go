package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrTrailingData = errors.New("unexpected data after JSON object")

// DecodeBody decodes one JSON object into out and rejects keys that out does
// not declare. An empty body decodes as {} so the request's Validate reports
// the missing fields.
func DecodeBody(body []byte, out any) (FieldErrors, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		if key, ok := unknownField(err); ok {
			return FieldErrors{key: "Unrecognized key"}, nil
		}
		return nil, err
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return nil, nil
}

// unknownField extracts the key from encoding/json's `json: unknown field "x"`.
func unknownField(err error) (string, bool) {
	rest, ok := strings.CutPrefix(err.Error(), "json: unknown field ")
	if !ok {
		return "", false
	}
	key, uerr := strconv.Unquote(rest)
	if uerr != nil {
		return rest, true
	}
	return key, true
}
