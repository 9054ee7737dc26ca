package router

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/tamaliftics/backend/pkg/errorx"
)

// decodeRequest fills body from the URL query for GET requests and from the
// JSON body otherwise. Query parameters are matched by the field's json tag.
func decodeRequest(req *http.Request, method string, body any) error {
	if method == http.MethodGet {
		return bindQuery(req, body)
	}

	if err := json.NewDecoder(req.Body).Decode(body); err != nil && err != io.EOF {
		return errorx.New(errorx.BadRequest, "Cannot parse the request body")
	}

	return nil
}

func bindQuery(req *http.Request, body any) error {
	value := reflect.ValueOf(body).Elem()
	structType := value.Type()
	query := req.URL.Query()

	for i := 0; i < structType.NumField(); i++ {
		name := strings.Split(structType.Field(i).Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}

		raw := query.Get(name)
		if raw == "" {
			continue
		}

		field := value.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)

		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid number for %s", name)
			}
			field.SetInt(n)

		case reflect.Float32, reflect.Float64:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid number for %s", name)
			}
			field.SetFloat(f)

		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid boolean for %s", name)
			}
			field.SetBool(b)
		}
	}

	return nil
}
