package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// parseDocument decodes a catalog document into its records. The document must be a
// non-empty JSON array.
func parseDocument(name string, body []byte) ([]interface{}, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, loadError(name, ErrEmpty, nil)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, loadError(name, ErrMalformed, err)
	}
	switch v := doc.(type) {
	case nil:
		return nil, loadError(name, ErrEmpty, nil)
	case []interface{}:
		if len(v) == 0 {
			return nil, loadError(name, ErrEmpty, nil)
		}
		return v, nil
	case map[string]interface{}:
		if len(v) == 0 {
			return nil, loadError(name, ErrEmpty, nil)
		}
		return nil, loadError(name, ErrMalformed, fmt.Errorf("expected an array of records, got an object"))
	default:
		return nil, loadError(name, ErrMalformed, fmt.Errorf("expected an array of records, got %T", doc))
	}
}

// validProduct reports whether a raw record has an id, a name, a numeric price and a main image.
func validProduct(raw map[string]interface{}) bool {
	if catalogEntity.ParseID(raw["id"]).IsZero() || isZeroNumber(raw["id"]) {
		return false
	}
	if name, ok := raw["name"].(string); !ok || name == "" {
		return false
	}
	switch price := raw["price"].(type) {
	case json.Number:
		if _, err := price.Float64(); err != nil {
			return false
		}
	case float64:
	default:
		return false
	}
	img, ok := raw["mainImageUrl"].(string)
	return ok && img != ""
}

// isZeroNumber reports a numeric 0, which does not count as an id.
func isZeroNumber(v interface{}) bool {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return err == nil && f == 0
	case float64:
		return n == 0
	}
	return false
}

// truthy is the availability reading of a raw value. Absent and null give def.
func truthy(v interface{}, def bool) bool {
	switch val := v.(type) {
	case nil:
		return def
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	case float64:
		return val != 0 && !math.IsNaN(val)
	}
	return true
}

// optionalString reads a scalar as text. Lists and objects have no text form.
func optionalString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	}
	return "", false
}

var optionalStringFields = []string{"description", "image2Url", "image3Url"}

// coerceOptional rewrites the optional fields of a valid record into the shapes the
// entity expects.
func coerceOptional(raw map[string]interface{}) {
	raw["isAvailable"] = truthy(raw["isAvailable"], true)
	raw["categoryId"] = catalogEntity.ParseID(raw["categoryId"])
	raw["colors"] = NormalizeColors(raw["colors"])
	for _, k := range optionalStringFields {
		if str, ok := optionalString(raw[k]); ok {
			raw[k] = str
		} else {
			delete(raw, k)
		}
	}
}

// requiredOnly builds a product from the fields validProduct has checked.
func requiredOnly(raw map[string]interface{}) catalogEntity.Product {
	var price float64
	switch v := raw["price"].(type) {
	case json.Number:
		price, _ = v.Float64()
	case float64:
		price = v
	}
	name, _ := raw["name"].(string)
	img, _ := raw["mainImageUrl"].(string)
	return catalogEntity.Product{
		ID:           catalogEntity.ParseID(raw["id"]),
		Name:         name,
		Price:        price,
		MainImageURL: img,
		IsAvailable:  truthy(raw["isAvailable"], true),
		Colors:       []string{},
	}
}

var idType = reflect.TypeOf(catalogEntity.ID(""))

func idHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != idType {
			return data, nil
		}
		return catalogEntity.ParseID(data), nil
	}
}

// colorSeparators split a delimited colors string.
var colorSeparators = func(r rune) bool {
	return r == ',' || r == '،' || r == ';' || r == '|'
}

// NormalizeColors turns a delimited string or a list into trimmed, non-empty color names.
func NormalizeColors(v interface{}) []string {
	out := []string{}
	switch val := v.(type) {
	case nil:
	case string:
		for _, c := range strings.FieldsFunc(val, colorSeparators) {
			if c = strings.TrimSpace(c); c != "" {
				out = append(out, c)
			}
		}
	case []interface{}:
		for _, item := range val {
			str, ok := optionalString(item)
			if !ok {
				continue
			}
			if c := strings.TrimSpace(str); c != "" {
				out = append(out, c)
			}
		}
	case map[string]interface{}:
	case []string:
		for _, c := range val {
			if c = strings.TrimSpace(c); c != "" {
				out = append(out, c)
			}
		}
	default:
		if c := strings.TrimSpace(fmt.Sprint(val)); c != "" {
			out = append(out, c)
		}
	}
	return out
}

var stringSliceType = reflect.TypeOf([]string(nil))

func colorsHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != stringSliceType {
			return data, nil
		}
		return NormalizeColors(data), nil
	}
}

var recordDecodeHook = mapstructure.ComposeDecodeHookFunc(
	idHook(),
	colorsHook(),
)

func decodeRecord(raw map[string]interface{}, out interface{}) error {
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       recordDecodeHook,
		Result:           out,
		TagName:          "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// decodeProducts keeps the valid records, in order, normalized.
func decodeProducts(records []interface{}) []catalogEntity.Product {
	products := make([]catalogEntity.Product, 0, len(records))
	for _, r := range records {
		raw, ok := r.(map[string]interface{})
		if !ok || !validProduct(raw) {
			continue
		}
		coerceOptional(raw)
		var p catalogEntity.Product
		if err := decodeRecord(raw, &p); err != nil {
			log.Printf("catalog: product %v kept with required fields only: %v", raw["id"], err)
			p = requiredOnly(raw)
		}
		if p.Colors == nil {
			p.Colors = []string{}
		}
		products = append(products, p)
	}
	return products
}

// decodeCategories keeps the records that carry an id.
func decodeCategories(records []interface{}) []catalogEntity.Category {
	categories := make([]catalogEntity.Category, 0, len(records))
	for _, r := range records {
		raw, ok := r.(map[string]interface{})
		if !ok || catalogEntity.ParseID(raw["id"]).IsZero() {
			continue
		}
		var c catalogEntity.Category
		if err := decodeRecord(raw, &c); err != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories
}
