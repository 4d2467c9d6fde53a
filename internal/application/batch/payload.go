package batch

// Candidate payloads arrive as decoded JSON objects so that key
// presence, explicit null, and value type can each be distinguished.
// JSON numbers decode as float64; the helpers below convert.

// StringField returns the string value for key, or "" when the key is
// absent, null, or not a string.
func StringField(item map[string]any, key string) string {
	if value, ok := item[key].(string); ok {
		return value
	}
	return ""
}

// BoolField returns the bool value for key, or def when the key is
// absent, null, or not a bool.
func BoolField(item map[string]any, key string, def bool) bool {
	if value, ok := item[key].(bool); ok {
		return value
	}
	return def
}

// FloatField returns a pointer to the numeric value for key, or nil
// when the key is absent, null, or not a number.
func FloatField(item map[string]any, key string) *float64 {
	if value, ok := item[key].(float64); ok {
		return &value
	}
	return nil
}

// IntField returns a pointer to the integer value for key, or nil when
// the key is absent, null, or not a number.
func IntField(item map[string]any, key string) *int64 {
	if value, ok := item[key].(float64); ok {
		iv := int64(value)
		return &iv
	}
	return nil
}

// IDListField extracts a list of integer ids for key. It returns the
// ids, whether the value was a well-formed list, and whether the key
// was present at all. Non-numeric elements are dropped.
func IDListField(item map[string]any, key string) (ids []int64, ok bool, present bool) {
	raw, present := item[key]
	if !present {
		return nil, true, false
	}

	list, isList := raw.([]any)
	if !isList {
		return nil, false, true
	}

	for _, element := range list {
		if value, isNumber := element.(float64); isNumber {
			ids = append(ids, int64(value))
		}
	}
	return ids, true, true
}

// Has reports whether key is present in item, even with a null value.
func Has(item map[string]any, key string) bool {
	_, ok := item[key]
	return ok
}
