package domain

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

const (
	FieldName  = "name"
	FieldViews = "views"
	FieldLikes = "likes"
)

// DecodeFields parses a JSON object body into a field set. An empty body
// yields an empty set; explicit nulls count as absent and unknown keys
// are ignored. Fields are checked in name, views, likes order.
func DecodeFields(body []byte) (VideoFields, error) {
	var fields VideoFields

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return fields, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return fields, &ValidationError{Field: "body", Reason: "must be a JSON object"}
	}

	if v, ok := present(raw, FieldName); ok {
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			return fields, &ValidationError{Field: FieldName, Reason: "must be a string"}
		}
		fields.Name = &name
	}

	if v, ok := present(raw, FieldViews); ok {
		views, err := decodeCount(v)
		if err != nil {
			return fields, &ValidationError{Field: FieldViews, Reason: "must be an integer"}
		}
		fields.Views = &views
	}

	if v, ok := present(raw, FieldLikes); ok {
		likes, err := decodeCount(v)
		if err != nil {
			return fields, &ValidationError{Field: FieldLikes, Reason: "must be an integer"}
		}
		fields.Likes = &likes
	}

	return fields, nil
}

func present(raw map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := raw[key]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil, false
	}
	return v, true
}

func decodeCount(v json.RawMessage) (int64, error) {
	var n int64
	err := json.Unmarshal(v, &n)
	return n, err
}

// DecodeValues reads a field set from form or query values. Only the first
// value of a key is used; counts are parsed as base-10 integers.
func DecodeValues(values url.Values) (VideoFields, error) {
	var fields VideoFields

	if _, ok := values[FieldName]; ok {
		name := values.Get(FieldName)
		fields.Name = &name
	}

	for _, c := range []struct {
		key  string
		slot **int64
	}{
		{FieldViews, &fields.Views},
		{FieldLikes, &fields.Likes},
	} {
		if _, ok := values[c.key]; !ok {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(values.Get(c.key)), 10, 64)
		if err != nil {
			return fields, &ValidationError{Field: c.key, Reason: "must be an integer"}
		}
		*c.slot = &n
	}

	return fields, nil
}
