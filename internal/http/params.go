package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"videoapi/internal/core"
)

const maxBodyBytes = 1 << 20

var errMalformedBody = errors.New("malformed request body")

// argSet holds request arguments gathered from the query string, a form body
// and a JSON body, in increasing order of precedence.
type argSet map[string]any

var argNames = []string{"name", "views", "likes"}

var requiredMsg = map[string]string{
	"name":  "Name of the video is required",
	"views": "Views of video is required",
	"likes": "Likes on video is required",
}

func collectArgs(c *gin.Context) (argSet, error) {
	args := argSet{}
	for _, k := range argNames {
		if v, ok := c.GetQuery(k); ok {
			args[k] = v
		}
	}

	switch c.ContentType() {
	case gin.MIMEJSON:
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			return nil, errMalformedBody
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return args, nil
		}
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		var obj map[string]any
		if err := dec.Decode(&obj); err != nil || obj == nil {
			return nil, errMalformedBody
		}
		for _, k := range argNames {
			if v, ok := obj[k]; ok && v != nil {
				args[k] = v
			}
		}
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		for _, k := range argNames {
			if v, ok := c.GetPostForm(k); ok {
				args[k] = v
			}
		}
	}
	return args, nil
}

// str returns the argument as a string. JSON numbers keep their literal text.
func (a argSet) str(key string) (string, bool, error) {
	raw, ok := a[key]
	if !ok {
		return "", false, nil
	}
	switch v := raw.(type) {
	case string:
		return v, true, nil
	case json.Number:
		return v.String(), true, nil
	}
	return "", true, &core.FieldError{Field: key, Msg: "must be a string"}
}

// int coerces the argument to an integer. Decimal strings and integral
// JSON numbers are accepted.
func (a argSet) int(key string) (int64, bool, error) {
	raw, ok := a[key]
	if !ok {
		return 0, false, nil
	}
	bad := &core.FieldError{Field: key, Msg: "must be an integer"}
	switch v := raw.(type) {
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, true, bad
		}
		return n, true, nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true, nil
		}
		f, err := v.Float64()
		if err != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
			return 0, true, bad
		}
		return int64(f), true, nil
	}
	return 0, true, bad
}

func createRequestFrom(a argSet) (core.CreateRequest, error) {
	var in core.CreateRequest
	var ok bool
	var err error

	if in.Name, ok, err = a.str("name"); err != nil {
		return in, err
	} else if !ok {
		return in, missing("name")
	}
	if in.Views, ok, err = a.int("views"); err != nil {
		return in, err
	} else if !ok {
		return in, missing("views")
	}
	if in.Likes, ok, err = a.int("likes"); err != nil {
		return in, err
	} else if !ok {
		return in, missing("likes")
	}
	return in, nil
}

func updateRequestFrom(a argSet) (core.UpdateRequest, error) {
	var in core.UpdateRequest

	if name, ok, err := a.str("name"); err != nil {
		return in, err
	} else if ok {
		in.Name = &name
	}
	if views, ok, err := a.int("views"); err != nil {
		return in, err
	} else if ok {
		in.Views = &views
	}
	if likes, ok, err := a.int("likes"); err != nil {
		return in, err
	} else if ok {
		in.Likes = &likes
	}
	return in, nil
}

func missing(field string) error {
	return &core.FieldError{Field: field, Msg: requiredMsg[field]}
}
